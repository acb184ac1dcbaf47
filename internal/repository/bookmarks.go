package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/unalterable/base-fullstack-app/internal/domain"
)

// Bookmarks are owner-scoped in the SQL predicate itself, so a caller can
// never read or touch rows created by someone else even if the application
// layer were bypassed.
type BookmarkRepository interface {
	List(ctx context.Context, owner string, filter domain.BookmarkFilter) ([]domain.Bookmark, error)
	GetByID(ctx context.Context, id int64, owner string) (*domain.Bookmark, error)
	Create(ctx context.Context, bookmark *domain.Bookmark) error
	Update(ctx context.Context, id int64, owner, title, url string, tags []string) error
	Delete(ctx context.Context, id int64, owner string) error
}

type PostgresBookmarkRepo struct {
	db *sql.DB
}

func NewPostgresBookmarkRepo(db *sql.DB) *PostgresBookmarkRepo {
	return &PostgresBookmarkRepo{db: db}
}

func (r *PostgresBookmarkRepo) List(ctx context.Context, owner string, filter domain.BookmarkFilter) ([]domain.Bookmark, error) {
	rows, err := r.db.QueryContext(ctx, listBookmarksQuery, owner, filter.Tag, filter.Query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// non-nil so an empty listing serializes as [] rather than null
	bookmarks := []domain.Bookmark{}
	for rows.Next() {
		var b domain.Bookmark
		if err := rows.Scan(&b.ID, &b.Title, &b.URL, pq.Array(&b.Tags), &b.Owner, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, rows.Err()
}

func (r *PostgresBookmarkRepo) GetByID(ctx context.Context, id int64, owner string) (*domain.Bookmark, error) {
	var b domain.Bookmark
	err := r.db.QueryRowContext(ctx, getBookmarkQuery, id, owner).
		Scan(&b.ID, &b.Title, &b.URL, pq.Array(&b.Tags), &b.Owner, &b.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create fills in the server-assigned id and creation time.
func (r *PostgresBookmarkRepo) Create(ctx context.Context, bookmark *domain.Bookmark) error {
	return r.db.QueryRowContext(ctx, insertBookmarkQuery,
		bookmark.Title, bookmark.URL, pq.Array(bookmark.Tags), bookmark.Owner).
		Scan(&bookmark.ID, &bookmark.CreatedAt)
}

func (r *PostgresBookmarkRepo) Update(ctx context.Context, id int64, owner, title, url string, tags []string) error {
	res, err := r.db.ExecContext(ctx, updateBookmarkQuery, id, owner, title, url, pq.Array(tags))
	if err != nil {
		return err
	}
	return errIfNoRows(res)
}

func (r *PostgresBookmarkRepo) Delete(ctx context.Context, id int64, owner string) error {
	res, err := r.db.ExecContext(ctx, deleteBookmarkQuery, id, owner)
	if err != nil {
		return err
	}
	return errIfNoRows(res)
}
