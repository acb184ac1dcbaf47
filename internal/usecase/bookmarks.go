package usecase

import (
	"context"

	"github.com/unalterable/base-fullstack-app/internal/auth"
	"github.com/unalterable/base-fullstack-app/internal/domain"
	"github.com/unalterable/base-fullstack-app/internal/events"
	"github.com/unalterable/base-fullstack-app/internal/repository"
)

type BookmarkUsecase struct {
	auth   *auth.Service
	repo   repository.BookmarkRepository
	events *events.Producer
}

func NewBookmarkUsecase(auth *auth.Service, repo repository.BookmarkRepository, events *events.Producer) *BookmarkUsecase {
	return &BookmarkUsecase{auth: auth, repo: repo, events: events}
}

// All lists the caller's own bookmarks, optionally filtered by tag and by a
// case-insensitive substring of title or URL.
func (uc *BookmarkUsecase) All(ctx context.Context, token string, filter domain.BookmarkFilter) ([]domain.Bookmark, error) {
	principal, err := uc.auth.Authenticate(token)
	if err != nil {
		return nil, err
	}
	return uc.repo.List(ctx, principal.Username, filter)
}

func (uc *BookmarkUsecase) ByID(ctx context.Context, token string, id int64) (*domain.Bookmark, error) {
	principal, err := uc.auth.Authenticate(token)
	if err != nil {
		return nil, err
	}
	return uc.repo.GetByID(ctx, id, principal.Username)
}

func (uc *BookmarkUsecase) Create(ctx context.Context, token, title, url string, tags []string) error {
	principal, err := uc.auth.Authenticate(token)
	if err != nil {
		return err
	}
	bookmark := &domain.Bookmark{
		Title: title,
		URL:   url,
		Tags:  tags,
		Owner: principal.Username,
	}
	if err := uc.repo.Create(ctx, bookmark); err != nil {
		return err
	}
	uc.events.Send(ctx, "bookmark.created")
	return nil
}

func (uc *BookmarkUsecase) Update(ctx context.Context, token string, id int64, title, url string, tags []string) error {
	principal, err := uc.auth.Authenticate(token)
	if err != nil {
		return err
	}
	if err := uc.repo.Update(ctx, id, principal.Username, title, url, tags); err != nil {
		return err
	}
	uc.events.Send(ctx, "bookmark.updated")
	return nil
}

func (uc *BookmarkUsecase) Delete(ctx context.Context, token string, id int64) error {
	principal, err := uc.auth.Authenticate(token)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id, principal.Username); err != nil {
		return err
	}
	uc.events.Send(ctx, "bookmark.deleted")
	return nil
}
