package ports

import (
	"context"

	"github.com/hohin728/redux-fundamentals-example-app/internal/domain/todo"
)

// TodoClient is the remote to-do API. Implemented by the ACL adapter;
// called by the application layer.
type TodoClient interface {
	// ListTodos returns every todo held by the remote API, in its order.
	ListTodos(ctx context.Context) ([]todo.Todo, error)

	// CreateTodo asks the remote API to create a todo with the given text.
	// The API assigns the ID and defaults (not completed, no color).
	CreateTodo(ctx context.Context, text string) (*todo.Todo, error)
}
