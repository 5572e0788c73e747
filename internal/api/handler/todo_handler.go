package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskbox/todo-api/internal/api/metrics"
	"github.com/taskbox/todo-api/internal/core/ports"
)

// TodoHandler handles todo CRUD. Every route runs behind the Auth
// middleware; the owner is always the authenticated caller, never an input.
// Repository outcomes map through the central error handler: validation
// failures to 400, masked not-found to 404.
type TodoHandler struct {
	service ports.TodoService
}

func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// Create adds a todo owned by the caller.
//
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        x-auth  header    string             true  "Session token"
// @Param        body    body      createTodoRequest  true  "Todo text"
// @Success      200     {object}  todoResponse
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Router       /todos [post]
func (h *TodoHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	todo, err := h.service.Create(c.Request().Context(), user.ID, req.Text)
	if err != nil {
		return err
	}

	metrics.TodosCreatedTotal.Inc()
	return c.JSON(http.StatusOK, toTodoResponse(todo))
}

// List returns every todo owned by the caller.
//
// @Summary      List todos
// @Tags         todos
// @Produce      json
// @Param        x-auth  header    string  true  "Session token"
// @Success      200     {object}  todoListResponse
// @Failure      401     {object}  errorResponse
// @Router       /todos [get]
func (h *TodoHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	todos, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	resp := todoListResponse{Todos: make([]todoResponse, 0, len(todos))}
	for i := range todos {
		resp.Todos = append(resp.Todos, toTodoResponse(&todos[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get returns a single todo owned by the caller.
//
// @Summary      Get a todo
// @Tags         todos
// @Produce      json
// @Param        x-auth  header    string  true  "Session token"
// @Param        id      path      string  true  "Todo id"
// @Success      200     {object}  todoEnvelope
// @Failure      401     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /todos/{id} [get]
func (h *TodoHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	todo, err := h.service.Get(c.Request().Context(), c.Param("id"), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todoEnvelope{Todo: toTodoResponse(todo)})
}

// Update patches a todo's text and/or completion state.
//
// @Summary      Update a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        x-auth  header    string             true  "Session token"
// @Param        id      path      string             true  "Todo id"
// @Param        body    body      updateTodoRequest  true  "Fields to change"
// @Success      200     {object}  todoEnvelope
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /todos/{id} [patch]
func (h *TodoHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateTodoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	patch := ports.TodoPatch{Text: req.Text, Completed: req.Completed}
	todo, err := h.service.Update(c.Request().Context(), c.Param("id"), user.ID, patch)
	if err != nil {
		return err
	}

	if req.Completed != nil {
		state := "reopened"
		if *req.Completed {
			state = "completed"
		}
		metrics.TodoCompletionTotal.WithLabelValues(state).Inc()
	}
	return c.JSON(http.StatusOK, todoEnvelope{Todo: toTodoResponse(todo)})
}

// Delete removes a todo and returns the removed record.
//
// @Summary      Delete a todo
// @Tags         todos
// @Produce      json
// @Param        x-auth  header    string  true  "Session token"
// @Param        id      path      string  true  "Todo id"
// @Success      200     {object}  todoEnvelope
// @Failure      401     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /todos/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	todo, err := h.service.Delete(c.Request().Context(), c.Param("id"), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todoEnvelope{Todo: toTodoResponse(todo)})
}
