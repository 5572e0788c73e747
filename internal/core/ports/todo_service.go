package ports

import (
	"context"

	"github.com/taskbox/todo-api/internal/core/domain"
)

// TodoPatch is the client-suppliable part of an update. CompletedAt is
// deliberately absent: it is derived server-side from Completed.
type TodoPatch struct {
	Text      *string
	Completed *bool
}

// TodoService defines todo use-cases, all scoped to the calling user.
type TodoService interface {
	Create(ctx context.Context, creator, text string) (*domain.Todo, error)
	List(ctx context.Context, creator string) ([]domain.Todo, error)
	Get(ctx context.Context, id, creator string) (*domain.Todo, error)
	Update(ctx context.Context, id, creator string, patch TodoPatch) (*domain.Todo, error)
	Delete(ctx context.Context, id, creator string) (*domain.Todo, error)
}
