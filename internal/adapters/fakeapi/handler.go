package fakeapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	acltodo "github.com/hohin728/redux-fundamentals-example-app/internal/adapters/clients/acl/todo"
	"github.com/hohin728/redux-fundamentals-example-app/internal/adapters/http/dto"
	"github.com/hohin728/redux-fundamentals-example-app/internal/adapters/http/middleware"
	"github.com/hohin728/redux-fundamentals-example-app/internal/domain"
	"github.com/hohin728/redux-fundamentals-example-app/internal/platform/logging"
)

// TodosPath is where the fake API serves its collection.
const TodosPath = "/fakeApi/todos"

const maxBodyBytes = 64 << 10

// Handler serves the fake to-do API.
type Handler struct {
	repo    *Repository
	latency time.Duration
}

// NewHandler creates a Handler. Every request waits latency before it is
// answered, or until its context ends.
func NewHandler(repo *Repository, latency time.Duration) *Handler {
	return &Handler{repo: repo, latency: latency}
}

// Routes mounts the API on a chi router behind mws.
func (h *Handler) Routes(mws ...middleware.Middleware) http.Handler {
	r := chi.NewRouter()
	r.Use(mws...)
	r.Get(TodosPath, h.listTodos)
	r.Post(TodosPath, h.createTodo)
	return r
}

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	if !h.wait(r.Context()) {
		dto.WriteErrorResponse(w, r, r.Context().Err())
		return
	}

	todos := h.repo.List()
	resp := acltodo.TodoListResponseDTO{Todos: make([]acltodo.TodoDTO, len(todos))}
	for i := range todos {
		resp.Todos[i] = acltodo.FromDomainTodo(&todos[i])
	}
	writeJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	var req acltodo.CreateTodoRequestDTO
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("body", "invalid JSON"))
		return
	}

	if !h.wait(r.Context()) {
		dto.WriteErrorResponse(w, r, r.Context().Err())
		return
	}

	created, err := h.repo.Create(req.Todo.Text)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	logging.FromContext(r.Context()).InfoContext(r.Context(), "todo created",
		slog.String("todo_id", created.ID),
	)
	writeJSON(w, r, http.StatusCreated, acltodo.CreateTodoResponseDTO{Todo: acltodo.FromDomainTodo(&created)})
}

// wait sleeps for the configured latency. It reports false when ctx ends
// first.
func (h *Handler) wait(ctx context.Context) bool {
	if h.latency <= 0 {
		return true
	}
	t := time.NewTimer(h.latency)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}
