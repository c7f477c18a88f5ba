package ports

import (
	"context"

	"github.com/hohin728/redux-fundamentals-example-app/internal/domain/todo"
	"github.com/hohin728/redux-fundamentals-example-app/internal/store"
)

// Dispatcher applies actions to the state container.
type Dispatcher interface {
	Dispatch(ctx context.Context, action store.Action) *store.RootState
}

// StateStore is a Dispatcher that also exposes the current snapshot.
// Implemented by *store.Store.
type StateStore interface {
	Dispatcher
	State() *store.RootState
}

// TodoService runs the async to-do workflows. Implemented by the
// application layer; called by inbound adapters.
type TodoService interface {
	// FetchTodos marks the list as loading, fetches it from the remote API,
	// and replaces the local collection with the result. On failure the
	// loading flag is left set and the error is returned.
	FetchTodos(ctx context.Context) error

	// SaveNewTodo creates a todo remotely and adds the created entity to
	// the local collection.
	// Returns domain.ErrValidation if the text is blank.
	SaveNewTodo(ctx context.Context, text string) (*todo.Todo, error)

	// SaveNewTodos saves several todos concurrently. Each save succeeds or
	// fails on its own; a hard error is returned only when the request as a
	// whole is invalid.
	SaveNewTodos(ctx context.Context, texts []string) (*BulkSaveResult, error)
}

// BulkSaveError records one failed save within a bulk operation.
type BulkSaveError struct {
	Index int
	Text  string
	Err   error
}

// BulkSaveResult holds the outcomes of a bulk save. Created is in input
// order and skips failed items.
type BulkSaveResult struct {
	Created []todo.Todo
	Errors  []BulkSaveError
}
