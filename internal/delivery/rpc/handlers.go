package rpc

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unalterable/base-fullstack-app/internal/domain"
)

type TaskService interface {
	All(ctx context.Context, token string) ([]domain.Task, error)
	ByID(ctx context.Context, token string, id int64) (*domain.Task, error)
	Create(ctx context.Context, token, title, description string) error
	Update(ctx context.Context, token string, id int64, patch domain.TaskPatch) error
	Delete(ctx context.Context, token string, id int64) error
}

type BookmarkService interface {
	All(ctx context.Context, token string, filter domain.BookmarkFilter) ([]domain.Bookmark, error)
	ByID(ctx context.Context, token string, id int64) (*domain.Bookmark, error)
	Create(ctx context.Context, token, title, url string, tags []string) error
	Update(ctx context.Context, token string, id int64, title, url string, tags []string) error
	Delete(ctx context.Context, token string, id int64) error
}

type Handler struct {
	tasks     TaskService
	bookmarks BookmarkService
}

func NewHandler(tasks TaskService, bookmarks BookmarkService) *Handler {
	return &Handler{tasks: tasks, bookmarks: bookmarks}
}

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// sentinel is the fixed value every mutation returns instead of the mutated
// entity.
var sentinel = successResponse{Success: true}

func bindInput(c echo.Context, in any) error {
	if err := c.Bind(in); err != nil {
		return err
	}
	return c.Validate(in)
}

func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthenticated"})
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "not found"})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

func invalidInput(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid input"})
}

// nonNilTags keeps an omitted tags field from reaching storage as nil, which
// would bind SQL NULL into the NOT NULL tags column. An empty tag set is valid.
func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

type idInput struct {
	ID int64 `json:"id" query:"id" validate:"required"`
}

type createTaskInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

type updateTaskInput struct {
	ID          int64   `json:"id" validate:"required"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

type bookmarkFilterInput struct {
	Tag   string `json:"tag" query:"tag"`
	Query string `json:"query" query:"query"`
}

type createBookmarkInput struct {
	Title string   `json:"title" validate:"required"`
	URL   string   `json:"url" validate:"required"`
	Tags  []string `json:"tags"`
}

type updateBookmarkInput struct {
	ID    int64    `json:"id" validate:"required"`
	Title string   `json:"title" validate:"required"`
	URL   string   `json:"url" validate:"required"`
	Tags  []string `json:"tags"`
}

func (h *Handler) AllTasks(c echo.Context) error {
	tasks, err := h.tasks.All(c.Request().Context(), token(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) TaskByID(c echo.Context) error {
	var in idInput
	if err := bindInput(c, &in); err != nil {
		return invalidInput(c)
	}
	task, err := h.tasks.ByID(c.Request().Context(), token(c), in.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var in createTaskInput
	if err := bindInput(c, &in); err != nil {
		return invalidInput(c)
	}
	if err := h.tasks.Create(c.Request().Context(), token(c), in.Title, in.Description); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, sentinel)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var in updateTaskInput
	if err := bindInput(c, &in); err != nil {
		return invalidInput(c)
	}
	patch := domain.TaskPatch{
		Title:       in.Title,
		Description: in.Description,
		Completed:   in.Completed,
	}
	if err := h.tasks.Update(c.Request().Context(), token(c), in.ID, patch); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, sentinel)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	var in idInput
	if err := bindInput(c, &in); err != nil {
		return invalidInput(c)
	}
	if err := h.tasks.Delete(c.Request().Context(), token(c), in.ID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, sentinel)
}

func (h *Handler) AllBookmarks(c echo.Context) error {
	var in bookmarkFilterInput
	if err := bindInput(c, &in); err != nil {
		return invalidInput(c)
	}
	filter := domain.BookmarkFilter{Tag: in.Tag, Query: in.Query}
	bookmarks, err := h.bookmarks.All(c.Request().Context(), token(c), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, bookmarks)
}

func (h *Handler) BookmarkByID(c echo.Context) error {
	var in idInput
	if err := bindInput(c, &in); err != nil {
		return invalidInput(c)
	}
	bookmark, err := h.bookmarks.ByID(c.Request().Context(), token(c), in.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, bookmark)
}

func (h *Handler) CreateBookmark(c echo.Context) error {
	var in createBookmarkInput
	if err := bindInput(c, &in); err != nil {
		return invalidInput(c)
	}
	if err := h.bookmarks.Create(c.Request().Context(), token(c), in.Title, in.URL, nonNilTags(in.Tags)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, sentinel)
}

func (h *Handler) UpdateBookmark(c echo.Context) error {
	var in updateBookmarkInput
	if err := bindInput(c, &in); err != nil {
		return invalidInput(c)
	}
	if err := h.bookmarks.Update(c.Request().Context(), token(c), in.ID, in.Title, in.URL, nonNilTags(in.Tags)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, sentinel)
}

func (h *Handler) DeleteBookmark(c echo.Context) error {
	var in idInput
	if err := bindInput(c, &in); err != nil {
		return invalidInput(c)
	}
	if err := h.bookmarks.Delete(c.Request().Context(), token(c), in.ID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, sentinel)
}
