package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskbox/todo-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Tokens = append([]domain.TokenPair(nil), u.Tokens...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.seq++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user-%d", r.seq)
	created.Tokens = []domain.TokenPair{}
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByToken(_ context.Context, token string) (*domain.User, error) {
	for _, u := range r.users {
		if u.HasToken(token) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) PushToken(_ context.Context, userID string, pair domain.TokenPair) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Tokens = append(u.Tokens, pair)
	return nil
}

func (r *stubUserRepo) PullToken(_ context.Context, userID, token string) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	kept := u.Tokens[:0]
	for _, t := range u.Tokens {
		if t.Token != token {
			kept = append(kept, t)
		}
	}
	u.Tokens = kept
	return nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, userID, passwordHash string) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.Tokens = []domain.TokenPair{}
	return nil
}

func newUserService(repo *stubUserRepo) *UserService {
	return NewUserService(repo, NewTokenService("secret"), nil, zerolog.Nop())
}

func TestUserService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	user, token, err := svc.Register(context.Background(), "a@test.com", "123456")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "123456" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("123456")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a session token")
	}

	stored := repo.users[user.ID]
	if stored == nil || !stored.HasToken(token) {
		t.Fatalf("issued token not persisted on the user")
	}
	if stored.Tokens[0].Access != domain.TokenAccessAuth {
		t.Fatalf("unexpected access tag: %s", stored.Tokens[0].Access)
	}
}

func TestUserService_Register_NormalizesEmail(t *testing.T) {
	svc := newUserService(newStubUserRepo())

	user, _, err := svc.Register(context.Background(), "  A@Test.COM ", "123456")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Email != "a@test.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc := newUserService(newStubUserRepo())

	if _, _, err := svc.Register(context.Background(), "a@test.com", "123456"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "a@test.com", "different"); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_Register_Validation(t *testing.T) {
	svc := newUserService(newStubUserRepo())

	if _, _, err := svc.Register(context.Background(), "a@test.com", "123"); err != domain.ErrPasswordTooShort {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
	// Malformed emails are rejected here, not just by the request schema.
	for _, email := range []string{"   ", "not-an-email", "a@", "@test.com", "a b@test.com"} {
		if _, _, err := svc.Register(context.Background(), email, "123456"); err != domain.ErrInvalidEmail {
			t.Fatalf("expected ErrInvalidEmail for %q, got %v", email, err)
		}
	}
}

func TestUserService_Login_AppendsToken(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	user, first, err := svc.Register(context.Background(), "a@test.com", "123456")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, second, err := svc.Login(context.Background(), "a@test.com", "123456")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if second == first {
		t.Fatalf("expected a distinct token per session")
	}

	stored := repo.users[user.ID]
	if len(stored.Tokens) != 2 {
		t.Fatalf("expected 2 live sessions, got %d", len(stored.Tokens))
	}
	if !stored.HasToken(first) || !stored.HasToken(second) {
		t.Fatalf("both sessions should remain live")
	}
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	user, _, err := svc.Register(context.Background(), "a@test.com", "123456")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "a@test.com", "wrongpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	// Unknown email is indistinguishable from a wrong password.
	if _, _, err := svc.Login(context.Background(), "ghost@test.com", "123456"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	// A failed login must not touch the token list.
	if got := len(repo.users[user.ID].Tokens); got != 1 {
		t.Fatalf("expected token list untouched, got %d entries", got)
	}
}

func TestUserService_ResolveToken_Lifecycle(t *testing.T) {
	svc := newUserService(newStubUserRepo())

	user, token, err := svc.Register(context.Background(), "a@test.com", "123456")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	resolved, err := svc.ResolveToken(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved.ID != user.ID {
		t.Fatalf("resolved wrong user: %s", resolved.ID)
	}

	if err := svc.Logout(context.Background(), user.ID, token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := svc.ResolveToken(context.Background(), token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken after logout, got %v", err)
	}
}

func TestUserService_ResolveToken_Unissued(t *testing.T) {
	svc := newUserService(newStubUserRepo())

	if _, _, err := svc.Register(context.Background(), "a@test.com", "123456"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Correctly signed but never pushed to any user's session list.
	stray, err := NewTokenService("secret").Issue("user-1")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := svc.ResolveToken(context.Background(), stray); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for unissued token, got %v", err)
	}

	// Signed with a different secret.
	forged, err := NewTokenService("other").Issue("user-1")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := svc.ResolveToken(context.Background(), forged); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for forged token, got %v", err)
	}
}

func TestUserService_Logout_RemovesExactlyOne(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	user, first, err := svc.Register(context.Background(), "a@test.com", "123456")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	_, second, err := svc.Login(context.Background(), "a@test.com", "123456")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), user.ID, first); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	stored := repo.users[user.ID]
	if len(stored.Tokens) != 1 {
		t.Fatalf("expected 1 remaining session, got %d", len(stored.Tokens))
	}
	if _, err := svc.ResolveToken(context.Background(), second); err != nil {
		t.Fatalf("other session should survive: %v", err)
	}
}

func TestUserService_ChangePassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	user, token, err := svc.Register(context.Background(), "a@test.com", "123456")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.ChangePassword(context.Background(), user.ID, "wrong", "newpassword"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if err := svc.ChangePassword(context.Background(), user.ID, "123456", "short"); err != domain.ErrPasswordTooShort {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}

	if err := svc.ChangePassword(context.Background(), user.ID, "123456", "newpassword"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	// Old sessions are revoked, the old password no longer works, the new one does.
	if _, err := svc.ResolveToken(context.Background(), token); err != domain.ErrInvalidToken {
		t.Fatalf("expected old session revoked, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@test.com", "123456"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected old password rejected, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@test.com", "newpassword"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}
