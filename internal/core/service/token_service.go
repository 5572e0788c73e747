package service

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskbox/todo-api/internal/core/domain"
	"github.com/taskbox/todo-api/internal/core/ports"
)

// TokenService signs and verifies session tokens with a process-wide HS256
// secret. Tokens carry no expiry: a session lives until it is revoked.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue produces a signed token bound to the user and the "auth" access tag.
// The random jti makes every issued token unique, so each session in the
// user's token list can be revoked independently. iat records issuance time;
// there is still no exp.
func (s *TokenService) Issue(userID string) (string, error) {
	jti := make([]byte, 16)
	if _, err := rand.Read(jti); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sub":    userID,
		"access": domain.TokenAccessAuth,
		"iat":    jwt.NewNumericDate(time.Now()),
		"jti":    hex.EncodeToString(jti),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and payload shape and returns the decoded claims.
// It does not consult the user's stored token list; revocation is enforced
// by the user service on top of this.
func (s *TokenService) Verify(token string) (ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return ports.TokenClaims{}, domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	access, _ := claims["access"].(string)
	if sub == "" || access != domain.TokenAccessAuth {
		return ports.TokenClaims{}, domain.ErrInvalidToken
	}

	return ports.TokenClaims{UserID: sub, Access: access}, nil
}
