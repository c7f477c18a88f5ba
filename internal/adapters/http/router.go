// Package http is the inbound JSON adapter: it routes requests onto the
// state container and the async workflows, and owns the server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hohin728/redux-fundamentals-example-app/internal/adapters/http/dto"
	"github.com/hohin728/redux-fundamentals-example-app/internal/adapters/http/handlers"
	"github.com/hohin728/redux-fundamentals-example-app/internal/adapters/http/middleware"
	"github.com/hohin728/redux-fundamentals-example-app/internal/domain"
)

// NewRouter registers every route. Middleware runs in the order given.
func NewRouter(
	todoHandler *handlers.TodoHandler,
	stateHandler *handlers.StateHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...middleware.Middleware,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("route %s: %w", req.URL.Path, domain.ErrNotFound))
	})

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", stateHandler.GetState)
		r.Post("/actions", stateHandler.DispatchAction)

		r.Get("/todos", todoHandler.ListTodos)
		r.Post("/todos", todoHandler.CreateTodo)
		r.Get("/todos/ids", todoHandler.ListTodoIDs)
		r.Post("/todos/batch", todoHandler.CreateTodos)
		r.Post("/todos/fetch", todoHandler.FetchTodos)
		r.Get("/todos/{id}", todoHandler.GetTodo)
	})

	return r
}
