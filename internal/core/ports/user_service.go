package ports

import (
	"context"

	"github.com/taskbox/todo-api/internal/core/domain"
)

// UserService defines account use-cases. Register and Login return the user
// together with a freshly issued session token (registration logs the user
// in).
type UserService interface {
	Register(ctx context.Context, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	// ResolveToken verifies the token's signature and access tag and returns
	// the user whose live session list contains it.
	ResolveToken(ctx context.Context, token string) (*domain.User, error)
	Logout(ctx context.Context, userID, token string) error
	// ChangePassword verifies the current password, stores a new hash, and
	// revokes every live session.
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
