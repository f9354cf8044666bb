// Package http is the inbound HTTP adapter: routing, the server lifecycle and
// the wiring of handlers to the todo client.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-api-stub/internal/adapters/http/handlers"
)

// NewRouter registers the todo and health routes. middlewares apply to every
// route, outermost first.
func NewRouter(
	todoHandler *handlers.TodoHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/todos", todoHandler.ListTodos)
		r.Post("/todos", todoHandler.SaveTodos)
		r.Delete("/todos/{id}", todoHandler.DeleteTodo)
	})

	return r
}
