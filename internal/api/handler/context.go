package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskbox/todo-api/internal/core/domain"
)

// currentUser extracts the authenticated user injected by the Auth
// middleware. Absence means the route was registered without the middleware;
// fail closed with 401 rather than proceeding without an identity.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get("user").(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}

// currentToken returns the raw token the caller authenticated with.
func currentToken(c echo.Context) string {
	token, _ := c.Get("token").(string)
	return token
}
