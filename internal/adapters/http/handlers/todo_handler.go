// Package handlers contains the HTTP handlers of the inbound adapter.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-api-stub/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-api-stub/internal/ports"
)

// TodoHandler exposes a [ports.TodoClient] over HTTP.
type TodoHandler struct {
	client ports.TodoClient
}

// NewTodoHandler creates a TodoHandler backed by client.
func NewTodoHandler(client ports.TodoClient) *TodoHandler {
	return &TodoHandler{client: client}
}

// ListTodos handles GET /api/v1/todos.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	items, err := h.client.List(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoListResponse(items))
}

// SaveTodos handles POST /api/v1/todos.
func (h *TodoHandler) SaveTodos(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveTodosRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.client.Save(r.Context(), req.Todos)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSaveResponse(res))
}

// DeleteTodo handles DELETE /api/v1/todos/{id}. The id is passed through as
// the raw path segment; it is never parsed.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := h.client.Delete(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDeleteResponse(res))
}
