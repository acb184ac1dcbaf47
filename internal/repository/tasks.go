package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/unalterable/base-fullstack-app/internal/domain"
)

// Tasks are deliberately not owner-scoped: every authenticated caller sees
// the full table. Only creation records an owner.
type TaskRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	Create(ctx context.Context, task *domain.Task) error
	Update(ctx context.Context, id int64, patch domain.TaskPatch) error
	Delete(ctx context.Context, id int64) error
}

type PostgresTaskRepo struct {
	db *sql.DB
}

func NewPostgresTaskRepo(db *sql.DB) *PostgresTaskRepo {
	return &PostgresTaskRepo{db: db}
}

func (r *PostgresTaskRepo) List(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, listTasksQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// non-nil so an empty table serializes as [] rather than null
	tasks := []domain.Task{}
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.Owner, &t.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *PostgresTaskRepo) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	var t domain.Task
	err := r.db.QueryRowContext(ctx, getTaskQuery, id).
		Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.Owner, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create fills in the server-assigned id and creation time.
func (r *PostgresTaskRepo) Create(ctx context.Context, task *domain.Task) error {
	return r.db.QueryRowContext(ctx, insertTaskQuery, task.Title, task.Description, task.Owner).
		Scan(&task.ID, &task.CreatedAt)
}

func (r *PostgresTaskRepo) Update(ctx context.Context, id int64, patch domain.TaskPatch) error {
	res, err := r.db.ExecContext(ctx, updateTaskQuery,
		id, nullString(patch.Title), nullString(patch.Description), nullBool(patch.Completed))
	if err != nil {
		return err
	}
	return errIfNoRows(res)
}

func (r *PostgresTaskRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteTaskQuery, id)
	if err != nil {
		return err
	}
	return errIfNoRows(res)
}

func errIfNoRows(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
