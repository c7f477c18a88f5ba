package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hohin728/redux-fundamentals-example-app/internal/adapters/http/dto"
	"github.com/hohin728/redux-fundamentals-example-app/internal/domain"
	"github.com/hohin728/redux-fundamentals-example-app/internal/domain/todo"
	"github.com/hohin728/redux-fundamentals-example-app/internal/platform/logging"
	"github.com/hohin728/redux-fundamentals-example-app/internal/ports"
	"github.com/hohin728/redux-fundamentals-example-app/internal/store"
)

// TodoHandler serves the todo views and the async workflows.
//
// Reads go through a handler-owned Selectors set, so repeated requests
// against an unchanged snapshot reuse the cached views.
type TodoHandler struct {
	store     ports.StateStore
	service   ports.TodoService
	selectors *store.Selectors
}

// NewTodoHandler creates a TodoHandler.
func NewTodoHandler(st ports.StateStore, svc ports.TodoService) *TodoHandler {
	return &TodoHandler{
		store:     st,
		service:   svc,
		selectors: store.NewSelectors(),
	}
}

// ListTodos handles GET /api/v1/todos?view=all|filtered|uncompleted.
// The default view is filtered.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	view, err := dto.ParseView(r.URL.Query().Get("view"), dto.ViewFiltered,
		dto.ViewAll, dto.ViewFiltered, dto.ViewUncompleted)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	state := h.store.State()
	var todos []todo.Todo
	switch view {
	case dto.ViewAll:
		todos = h.selectors.AllTodos.Select(state)
	case dto.ViewUncompleted:
		todos = h.selectors.UncompletedTodos.Select(state)
	default:
		todos = h.selectors.FilteredTodos.Select(state)
	}
	items := dto.ToTodoResponses(todos)

	writeJSON(w, r, http.StatusOK, dto.TodoListResponse{
		View:      view,
		Todos:     items,
		Count:     len(items),
		Remaining: h.selectors.RemainingCount.Select(state),
	})
}

// ListTodoIDs handles GET /api/v1/todos/ids?view=all|filtered.
func (h *TodoHandler) ListTodoIDs(w http.ResponseWriter, r *http.Request) {
	view, err := dto.ParseView(r.URL.Query().Get("view"), dto.ViewFiltered, dto.ViewAll, dto.ViewFiltered)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	state := h.store.State()
	var ids []string
	if view == dto.ViewAll {
		ids = store.TodoIDs(state)
	} else {
		ids = h.selectors.FilteredTodoIDs.Select(state)
	}
	writeJSON(w, r, http.StatusOK, dto.NewTodoIDsResponse(view, ids))
}

// GetTodo handles GET /api/v1/todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	t, ok := store.TodoByID(h.store.State(), id)
	if !ok {
		dto.WriteErrorResponse(w, r, fmt.Errorf("todo %q: %w", id, domain.ErrNotFound))
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToTodoResponse(&t))
}

// CreateTodo handles POST /api/v1/todos by running the save workflow.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.service.SaveNewTodo(r.Context(), req.Text)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, dto.ToTodoResponse(created))
}

// CreateTodos handles POST /api/v1/todos/batch. Individual failures are
// reported in the body; the status is 200 whenever the batch itself was
// valid.
func (h *TodoHandler) CreateTodos(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchCreateTodosRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.service.SaveNewTodos(r.Context(), req.Texts)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if len(res.Errors) > 0 {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "batch save partially failed",
			slog.String("operation", "CreateTodos"),
			slog.Int("created", len(res.Created)),
			slog.Int("failed", len(res.Errors)),
		)
	}
	writeJSON(w, r, http.StatusOK, dto.ToBatchCreateTodosResponse(res))
}

// FetchTodos handles POST /api/v1/todos/fetch by running the fetch workflow
// and returning the resulting snapshot.
func (h *TodoHandler) FetchTodos(w http.ResponseWriter, r *http.Request) {
	if err := h.service.FetchTodos(r.Context()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToStateResponse(h.store.State()))
}
