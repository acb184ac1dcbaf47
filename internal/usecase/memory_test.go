package usecase

// In-memory repositories mirroring the storage semantics, used for
// end-to-end pipeline tests without a database.

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/unalterable/base-fullstack-app/internal/domain"
)

type memTaskRepo struct {
	mu     sync.Mutex
	nextID int64
	tasks  map[int64]domain.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{nextID: 1, tasks: map[int64]domain.Task{}}
}

func (r *memTaskRepo) List(ctx context.Context) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Task
	for _, t := range r.tasks {
		out = append(out, t)
	}
	return out, nil
}

func (r *memTaskRepo) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *memTaskRepo) Create(ctx context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task.ID = r.nextID
	task.CreatedAt = time.Now()
	r.nextID++
	r.tasks[task.ID] = *task
	return nil
}

func (r *memTaskRepo) Update(ctx context.Context, id int64, patch domain.TaskPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return domain.ErrNotFound
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	r.tasks[id] = t
	return nil
}

func (r *memTaskRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

type memBookmarkRepo struct {
	mu        sync.Mutex
	nextID    int64
	bookmarks map[int64]domain.Bookmark
}

func newMemBookmarkRepo() *memBookmarkRepo {
	return &memBookmarkRepo{nextID: 1, bookmarks: map[int64]domain.Bookmark{}}
}

func matchesFilter(b domain.Bookmark, filter domain.BookmarkFilter) bool {
	if filter.Tag != "" {
		found := false
		for _, tag := range b.Tags {
			if tag == filter.Tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.Query != "" {
		q := strings.ToLower(filter.Query)
		if !strings.Contains(strings.ToLower(b.Title), q) &&
			!strings.Contains(strings.ToLower(b.URL), q) {
			return false
		}
	}
	return true
}

func (r *memBookmarkRepo) List(ctx context.Context, owner string, filter domain.BookmarkFilter) ([]domain.Bookmark, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Bookmark
	for _, b := range r.bookmarks {
		if b.Owner == owner && matchesFilter(b, filter) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBookmarkRepo) GetByID(ctx context.Context, id int64, owner string) (*domain.Bookmark, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookmarks[id]
	if !ok || b.Owner != owner {
		return nil, nil
	}
	return &b, nil
}

func (r *memBookmarkRepo) Create(ctx context.Context, bookmark *domain.Bookmark) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	bookmark.ID = r.nextID
	bookmark.CreatedAt = time.Now()
	r.nextID++
	r.bookmarks[bookmark.ID] = *bookmark
	return nil
}

func (r *memBookmarkRepo) Update(ctx context.Context, id int64, owner, title, url string, tags []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookmarks[id]
	if !ok || b.Owner != owner {
		return domain.ErrNotFound
	}
	b.Title, b.URL, b.Tags = title, url, tags
	r.bookmarks[id] = b
	return nil
}

func (r *memBookmarkRepo) Delete(ctx context.Context, id int64, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookmarks[id]
	if !ok || b.Owner != owner {
		return domain.ErrNotFound
	}
	delete(r.bookmarks, id)
	return nil
}
