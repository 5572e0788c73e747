package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskbox/todo-api/internal/api/metrics"
	"github.com/taskbox/todo-api/internal/core/domain"
)

// HeaderAuth is the request header carrying the session token.
const HeaderAuth = "x-auth"

// TokenResolver resolves a presented session token to its owning user.
// Resolution fails for tokens with a bad signature, the wrong access tag,
// or ones no longer present in the user's stored token list.
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (*domain.User, error)
}

// Auth resolves the x-auth header and injects the caller into context under
// "user" and the raw token under "token".
func Auth(resolver TokenResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(HeaderAuth)
			if token == "" {
				metrics.AuthFailuresTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing auth token")
			}

			user, err := resolver.ResolveToken(c.Request().Context(), token)
			if err != nil {
				metrics.AuthFailuresTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("user", user)
			c.Set("token", token)

			return next(c)
		}
	}
}
