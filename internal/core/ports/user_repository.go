package ports

import (
	"context"

	"github.com/taskbox/todo-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts and their session
// token lists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByToken returns the user whose token list currently contains the
	// given token string. A revoked token matches nothing.
	FindByToken(ctx context.Context, token string) (*domain.User, error)
	PushToken(ctx context.Context, userID string, pair domain.TokenPair) error
	PullToken(ctx context.Context, userID, token string) error
	// UpdatePassword replaces the stored hash and clears the token list in a
	// single write, revoking every live session.
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}
