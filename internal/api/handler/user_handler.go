package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskbox/todo-api/internal/api/metrics"
	"github.com/taskbox/todo-api/internal/api/middleware"
	"github.com/taskbox/todo-api/internal/core/domain"
	"github.com/taskbox/todo-api/internal/core/ports"
)

// UserHandler handles account and session routes. Freshly issued tokens are
// returned in the x-auth response header, mirroring the request header the
// auth middleware reads.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register creates a new account and logs it in.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Email and password"
// @Success      200   {object}  userResponse     "x-auth response header carries the session token"
// @Failure      400   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	// Domain failures (taken email, malformed email, short password) map to
	// 400 in the central error handler.
	user, token, err := h.service.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.Inc()
	c.Response().Header().Set(middleware.HeaderAuth, token)
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Login authenticates a user and issues a new session token.
//
// @Summary      Log in
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  userResponse  "x-auth response header carries the session token"
// @Failure      400   {object}  errorResponse
// @Router       /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, token, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid credentials"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.Response().Header().Set(middleware.HeaderAuth, token)
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Me returns the authenticated caller.
//
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Param        x-auth  header    string  true  "Session token"
// @Success      200     {object}  userResponse
// @Failure      401     {object}  errorResponse
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Logout revokes exactly the session token the caller authenticated with.
//
// @Summary      Log out the current session
// @Tags         users
// @Param        x-auth  header  string  true  "Session token"
// @Success      200
// @Failure      401  {object}  errorResponse
// @Router       /users/me/token [delete]
func (h *UserHandler) Logout(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.service.Logout(c.Request().Context(), user.ID, currentToken(c)); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// ChangePassword replaces the caller's password and revokes all sessions,
// including the one used for this request.
//
// @Summary      Change password
// @Tags         users
// @Accept       json
// @Param        x-auth  header  string                 true  "Session token"
// @Param        body    body    changePasswordRequest  true  "Current and new password"
// @Success      200
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /users/me/password [patch]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.service.ChangePassword(c.Request().Context(), user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
