package handler

import "github.com/taskbox/todo-api/internal/core/domain"

type createTodoRequest struct {
	Text string `json:"text" validate:"required"`
}

// updateTodoRequest is the PATCH body. Pointer fields distinguish "absent"
// from zero values; completedAt is deliberately not accepted from clients.
type updateTodoRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

type todoResponse struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Completed   bool   `json:"completed"`
	CompletedAt *int64 `json:"completedAt"`
	Creator     string `json:"creator"`
}

// todoEnvelope wraps single-item reads, updates and deletes.
type todoEnvelope struct {
	Todo todoResponse `json:"todo"`
}

type todoListResponse struct {
	Todos []todoResponse `json:"todos"`
}

func toTodoResponse(t *domain.Todo) todoResponse {
	return todoResponse{
		ID:          t.ID,
		Text:        t.Text,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
		Creator:     t.Creator,
	}
}
