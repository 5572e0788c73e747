package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskbox/todo-api/internal/core/domain"
)

func TestTokenService_IssueVerify_Roundtrip(t *testing.T) {
	svc := NewTokenService("secret")

	token, err := svc.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("unexpected user id: %s", claims.UserID)
	}
	if claims.Access != domain.TokenAccessAuth {
		t.Fatalf("unexpected access tag: %s", claims.Access)
	}
}

func TestTokenService_Issue_DistinctPerCall(t *testing.T) {
	svc := NewTokenService("secret")

	a, err := svc.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	b, err := svc.Issue("user-2")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if a == b {
		t.Fatalf("tokens for different users must differ")
	}
}

// Every issued token must be unique even for the same user, or pulling one
// token from the stored list would revoke every session sharing the string.
func TestTokenService_Issue_UniquePerSession(t *testing.T) {
	svc := NewTokenService("secret")

	seen := make(map[string]struct{})
	for i := 0; i < 10; i++ {
		token, err := svc.Issue("user-1")
		if err != nil {
			t.Fatalf("Issue returned error: %v", err)
		}
		if _, dup := seen[token]; dup {
			t.Fatalf("duplicate token issued on call %d", i)
		}
		seen[token] = struct{}{}

		claims, err := svc.Verify(token)
		if err != nil {
			t.Fatalf("Verify returned error: %v", err)
		}
		if claims.UserID != "user-1" {
			t.Fatalf("unexpected user id: %s", claims.UserID)
		}
	}
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a").Issue("user-1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := NewTokenService("secret-b").Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	svc := NewTokenService("secret")

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Verify(token); err != domain.ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}

func TestTokenService_Verify_WrongAccessTag(t *testing.T) {
	svc := NewTokenService("secret")

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":    "user-1",
		"access": "reset",
	})
	signed, err := forged.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_Verify_MissingSubject(t *testing.T) {
	svc := NewTokenService("secret")

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"access": domain.TokenAccessAuth,
	})
	signed, err := forged.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
