// Package rpc exposes the domain operations as named procedures on a single
// HTTP mount. Queries are GET, mutations are POST; every call is stateless.
// The bearer token always comes from the Authorization header, never from
// procedure input.
package rpc

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const tokenContextKey = "auth.token"

// Register mounts every procedure under /rpc.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/rpc", BearerToken)

	// queries
	g.GET("/allTasks", h.AllTasks)
	g.GET("/taskById", h.TaskByID)
	g.GET("/allBookmarks", h.AllBookmarks)
	g.GET("/bookmarkById", h.BookmarkByID)

	// mutations
	g.POST("/createTask", h.CreateTask)
	g.POST("/updateTask", h.UpdateTask)
	g.POST("/deleteTask", h.DeleteTask)
	g.POST("/createBookmark", h.CreateBookmark)
	g.POST("/updateBookmark", h.UpdateBookmark)
	g.POST("/deleteBookmark", h.DeleteBookmark)
}

// BearerToken copies the Authorization bearer token into the request context.
// The scheme matches case-insensitively per RFC 7235. A missing or malformed
// header leaves the token empty; authentication rejects it later.
func BearerToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		var token string
		if scheme, rest, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
			token = strings.TrimSpace(rest)
		}
		c.Set(tokenContextKey, token)
		return next(c)
	}
}

func token(c echo.Context) string {
	t, _ := c.Get(tokenContextKey).(string)
	return t
}

// Validator adapts go-playground/validator to echo's Validator hook.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
