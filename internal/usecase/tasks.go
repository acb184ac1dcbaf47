// Package usecase holds the domain layer: every operation authenticates the
// caller's bearer token before touching storage, and creations stamp the
// authenticated principal as the record owner regardless of the input.
package usecase

import (
	"context"

	"github.com/unalterable/base-fullstack-app/internal/auth"
	"github.com/unalterable/base-fullstack-app/internal/domain"
	"github.com/unalterable/base-fullstack-app/internal/events"
	"github.com/unalterable/base-fullstack-app/internal/repository"
)

type TaskUsecase struct {
	auth   *auth.Service
	repo   repository.TaskRepository
	events *events.Producer
}

func NewTaskUsecase(auth *auth.Service, repo repository.TaskRepository, events *events.Producer) *TaskUsecase {
	return &TaskUsecase{auth: auth, repo: repo, events: events}
}

// All returns every task, whoever created it. Task reads were never
// owner-scoped and that behavior is kept.
func (uc *TaskUsecase) All(ctx context.Context, token string) ([]domain.Task, error) {
	if _, err := uc.auth.Authenticate(token); err != nil {
		return nil, err
	}
	return uc.repo.List(ctx)
}

func (uc *TaskUsecase) ByID(ctx context.Context, token string, id int64) (*domain.Task, error) {
	if _, err := uc.auth.Authenticate(token); err != nil {
		return nil, err
	}
	return uc.repo.GetByID(ctx, id)
}

func (uc *TaskUsecase) Create(ctx context.Context, token, title, description string) error {
	principal, err := uc.auth.Authenticate(token)
	if err != nil {
		return err
	}
	task := &domain.Task{
		Title:       title,
		Description: description,
		Owner:       principal.Username,
	}
	if err := uc.repo.Create(ctx, task); err != nil {
		return err
	}
	uc.events.Send(ctx, "task.created")
	return nil
}

func (uc *TaskUsecase) Update(ctx context.Context, token string, id int64, patch domain.TaskPatch) error {
	if _, err := uc.auth.Authenticate(token); err != nil {
		return err
	}
	if err := uc.repo.Update(ctx, id, patch); err != nil {
		return err
	}
	uc.events.Send(ctx, "task.updated")
	return nil
}

func (uc *TaskUsecase) Delete(ctx context.Context, token string, id int64) error {
	if _, err := uc.auth.Authenticate(token); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.events.Send(ctx, "task.deleted")
	return nil
}
