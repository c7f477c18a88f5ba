package acl

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/hohin728/redux-fundamentals-example-app/internal/adapters/clients/acl/todo"
	domtodo "github.com/hohin728/redux-fundamentals-example-app/internal/domain/todo"
	"github.com/hohin728/redux-fundamentals-example-app/internal/platform/httpclient"
	"github.com/hohin728/redux-fundamentals-example-app/internal/ports"
)

// TodosPath is the remote collection resource.
const TodosPath = "/fakeApi/todos"

// Compile-time interface checks.
var (
	_ ports.TodoClient    = (*TodoClient)(nil)
	_ ports.HealthChecker = (*TodoClient)(nil)
)

// TodoClient is the outbound adapter for the remote to-do API. It implements
// [ports.TodoClient] and [ports.HealthChecker].
//
// Wire payloads are translated by the [todo] sub-package; error responses
// become domain errors through [TranslateHTTPError]. The underlying
// [httpclient.Client] supplies the circuit breaker, rate limiter, retry
// and tracing.
type TodoClient struct {
	http   *httpclient.Client
	req    *Requester
	logger *slog.Logger
}

// NewTodoClient creates a TodoClient. The client's BaseURL should point at
// the API root, e.g. "http://localhost:8081".
func NewTodoClient(client *httpclient.Client, logger *slog.Logger) *TodoClient {
	return &TodoClient{
		http:   client,
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// ListTodos fetches GET /fakeApi/todos.
func (c *TodoClient) ListTodos(ctx context.Context) ([]domtodo.Todo, error) {
	var dto todo.TodoListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, TodosPath, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return todo.ToDomainTodoList(dto), nil
}

// CreateTodo sends POST /fakeApi/todos with {"todo":{"text":...}} and
// returns the created todo. The API answers 201 Created.
func (c *TodoClient) CreateTodo(ctx context.Context, text string) (*domtodo.Todo, error) {
	var resp todo.CreateTodoResponseDTO
	err := c.req.Do(ctx, http.MethodPost, TodosPath, http.StatusCreated, todo.ToCreateTodoRequest(text), &resp)
	if err != nil {
		return nil, err
	}
	created := todo.ToDomainTodo(&resp.Todo)
	return &created, nil
}

// Name identifies this client in the health registry.
func (c *TodoClient) Name() string {
	return c.http.Name()
}

// HealthCheck reports the circuit breaker state of the remote API without
// making a network call.
func (c *TodoClient) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}
