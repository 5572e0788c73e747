package ports

import (
	"context"

	"github.com/taskbox/todo-api/internal/core/domain"
)

// TodoChanges is the write set applied by UpdateByIDForCreator. Text is set
// when non-nil; Completed and CompletedAt are set together when Completed is
// non-nil (the service computes CompletedAt, never the client).
type TodoChanges struct {
	Text        *string
	Completed   *bool
	CompletedAt *int64
}

// TodoRepository defines persistence for todo items. Every lookup and
// mutation is filtered by creator so a request can never touch another
// user's data, and update/delete are single atomic operations.
type TodoRepository interface {
	Insert(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	ListByCreator(ctx context.Context, creator string) ([]domain.Todo, error)
	FindByIDForCreator(ctx context.Context, id, creator string) (*domain.Todo, error)
	UpdateByIDForCreator(ctx context.Context, id, creator string, changes TodoChanges) (*domain.Todo, error)
	DeleteByIDForCreator(ctx context.Context, id, creator string) (*domain.Todo, error)
}
