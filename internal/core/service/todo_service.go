package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskbox/todo-api/internal/core/domain"
	"github.com/taskbox/todo-api/internal/core/ports"
)

// TodoService implements todo use-cases. Every operation is scoped to the
// calling user's identity; a wrong-owner id surfaces as the same not-found
// error as a missing one.
type TodoService struct {
	repo ports.TodoRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewTodoService(repo ports.TodoRepository, log zerolog.Logger) *TodoService {
	return &TodoService{repo: repo, log: log, now: time.Now}
}

// Create inserts a new incomplete todo owned by creator.
func (s *TodoService) Create(ctx context.Context, creator, text string) (*domain.Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyText
	}

	created, err := s.repo.Insert(ctx, &domain.Todo{Text: text, Creator: creator})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("todo_id", created.ID).Str("user_id", creator).Msg("todo created")
	return created, nil
}

// List returns a snapshot of every todo owned by creator.
func (s *TodoService) List(ctx context.Context, creator string) ([]domain.Todo, error) {
	return s.repo.ListByCreator(ctx, creator)
}

// Get fetches a single todo owned by creator.
func (s *TodoService) Get(ctx context.Context, id, creator string) (*domain.Todo, error) {
	return s.repo.FindByIDForCreator(ctx, id, creator)
}

// Update applies a text and/or completion patch. When the patch sets
// completed=true the completion timestamp is stamped server-side; false
// clears it. An empty patch reads the current document without writing.
func (s *TodoService) Update(ctx context.Context, id, creator string, patch ports.TodoPatch) (*domain.Todo, error) {
	if patch.Text == nil && patch.Completed == nil {
		return s.repo.FindByIDForCreator(ctx, id, creator)
	}

	changes := ports.TodoChanges{Completed: patch.Completed}
	if patch.Text != nil {
		text := strings.TrimSpace(*patch.Text)
		if text == "" {
			return nil, domain.ErrEmptyText
		}
		changes.Text = &text
	}
	if patch.Completed != nil && *patch.Completed {
		ms := s.now().UnixMilli()
		changes.CompletedAt = &ms
	}

	updated, err := s.repo.UpdateByIDForCreator(ctx, id, creator, changes)
	if err != nil {
		return nil, err
	}

	s.log.Debug().Str("todo_id", id).Str("user_id", creator).Msg("todo updated")
	return updated, nil
}

// Delete removes the todo and returns the removed record.
func (s *TodoService) Delete(ctx context.Context, id, creator string) (*domain.Todo, error) {
	deleted, err := s.repo.DeleteByIDForCreator(ctx, id, creator)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("todo_id", id).Str("user_id", creator).Msg("todo deleted")
	return deleted, nil
}
