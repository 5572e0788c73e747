package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskbox/todo-api/internal/core/domain"
	"github.com/taskbox/todo-api/internal/core/ports"
)

// validate backs the service-level email shape check, so the account
// contract holds even for callers that bypass the HTTP request schemas.
var validate = validator.New()

// UserService implements registration, login, token resolution, logout and
// password change on top of the user repository. The session cache is best
// effort: every resolution is confirmed against the store, so cache failures
// degrade latency, never correctness.
type UserService struct {
	repo   ports.UserRepository
	tokens ports.TokenIssuer
	cache  ports.SessionCache
	log    zerolog.Logger
}

func NewUserService(repo ports.UserRepository, tokens ports.TokenIssuer, cache ports.SessionCache, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, tokens: tokens, cache: cache, log: log}
}

// Register creates an account and logs it in, returning the new user and a
// freshly issued session token.
func (s *UserService) Register(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if validate.Var(email, "required,email") != nil {
		return nil, "", domain.ErrInvalidEmail
	}
	if len(password) < domain.MinPasswordLength {
		return nil, "", domain.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	created, err := s.repo.Create(ctx, &domain.User{Email: email, PasswordHash: string(hash)})
	if err != nil {
		return nil, "", err
	}

	token, err := s.issueSession(ctx, created)
	if err != nil {
		return nil, "", err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return created, token, nil
}

// Login verifies the credentials and appends a new session token to the
// user's list. Unknown email and wrong password are indistinguishable to the
// caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, "", err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return user, token, nil
}

// ResolveToken maps a presented token back to its user. A token resolves iff
// its signature and access tag verify and it is still present in the user's
// stored token list, so logout revokes it immediately even though the
// signature stays valid.
func (s *UserService) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	if userID, ok := s.cacheGet(ctx, token); ok {
		if user, err := s.repo.FindByID(ctx, userID); err == nil && user.HasToken(token) {
			return user, nil
		}
	}

	user, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	if user.ID != claims.UserID {
		return nil, domain.ErrInvalidToken
	}

	s.cacheSet(ctx, token, user.ID)
	return user, nil
}

// Logout removes exactly the presented token from the user's session list.
func (s *UserService) Logout(ctx context.Context, userID, token string) error {
	if err := s.repo.PullToken(ctx, userID, token); err != nil {
		return err
	}
	s.cacheDelete(ctx, token)
	s.log.Info().Str("user_id", userID).Msg("session revoked")
	return nil
}

// ChangePassword verifies the current password, stores a new hash, and
// revokes every live session in the same write.
func (s *UserService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if len(newPassword) < domain.MinPasswordLength {
		return domain.ErrPasswordTooShort
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}

	revoked := make([]string, 0, len(user.Tokens))
	for _, t := range user.Tokens {
		revoked = append(revoked, t.Token)
	}
	s.cacheDelete(ctx, revoked...)

	s.log.Info().Str("user_id", userID).Int("sessions_revoked", len(revoked)).Msg("password changed")
	return nil
}

func (s *UserService) issueSession(ctx context.Context, user *domain.User) (string, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", err
	}
	pair := domain.TokenPair{Access: domain.TokenAccessAuth, Token: token}
	if err := s.repo.PushToken(ctx, user.ID, pair); err != nil {
		return "", err
	}
	user.Tokens = append(user.Tokens, pair)
	s.cacheSet(ctx, token, user.ID)
	return token, nil
}

func (s *UserService) cacheGet(ctx context.Context, token string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	userID, ok, err := s.cache.Get(ctx, token)
	if err != nil {
		s.log.Warn().Err(err).Msg("session cache read failed")
		return "", false
	}
	return userID, ok
}

func (s *UserService) cacheSet(ctx context.Context, token, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, token, userID); err != nil {
		s.log.Warn().Err(err).Msg("session cache write failed")
	}
}

func (s *UserService) cacheDelete(ctx context.Context, tokens ...string) {
	if s.cache == nil || len(tokens) == 0 {
		return
	}
	if err := s.cache.Delete(ctx, tokens...); err != nil {
		s.log.Warn().Err(err).Msg("session cache delete failed")
	}
}
