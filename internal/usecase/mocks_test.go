package usecase

import (
	"context"

	"github.com/unalterable/base-fullstack-app/internal/domain"
)

type mockTaskRepo struct {
	listFn   func(ctx context.Context) ([]domain.Task, error)
	getFn    func(ctx context.Context, id int64) (*domain.Task, error)
	createFn func(ctx context.Context, task *domain.Task) error
	updateFn func(ctx context.Context, id int64, patch domain.TaskPatch) error
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockTaskRepo) List(ctx context.Context) ([]domain.Task, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockTaskRepo) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockTaskRepo) Create(ctx context.Context, task *domain.Task) error {
	if m.createFn != nil {
		return m.createFn(ctx, task)
	}
	return nil
}

func (m *mockTaskRepo) Update(ctx context.Context, id int64, patch domain.TaskPatch) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, patch)
	}
	return nil
}

func (m *mockTaskRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockBookmarkRepo struct {
	listFn   func(ctx context.Context, owner string, filter domain.BookmarkFilter) ([]domain.Bookmark, error)
	getFn    func(ctx context.Context, id int64, owner string) (*domain.Bookmark, error)
	createFn func(ctx context.Context, bookmark *domain.Bookmark) error
	updateFn func(ctx context.Context, id int64, owner, title, url string, tags []string) error
	deleteFn func(ctx context.Context, id int64, owner string) error
}

func (m *mockBookmarkRepo) List(ctx context.Context, owner string, filter domain.BookmarkFilter) ([]domain.Bookmark, error) {
	if m.listFn != nil {
		return m.listFn(ctx, owner, filter)
	}
	return nil, nil
}

func (m *mockBookmarkRepo) GetByID(ctx context.Context, id int64, owner string) (*domain.Bookmark, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id, owner)
	}
	return nil, nil
}

func (m *mockBookmarkRepo) Create(ctx context.Context, bookmark *domain.Bookmark) error {
	if m.createFn != nil {
		return m.createFn(ctx, bookmark)
	}
	return nil
}

func (m *mockBookmarkRepo) Update(ctx context.Context, id int64, owner, title, url string, tags []string) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, owner, title, url, tags)
	}
	return nil
}

func (m *mockBookmarkRepo) Delete(ctx context.Context, id int64, owner string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, owner)
	}
	return nil
}
