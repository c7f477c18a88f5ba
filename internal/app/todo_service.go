// Package app provides the async to-do workflows that sit between inbound
// adapters, the state container, and the remote to-do API.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hohin728/redux-fundamentals-example-app/internal/app/fanout"
	"github.com/hohin728/redux-fundamentals-example-app/internal/domain"
	"github.com/hohin728/redux-fundamentals-example-app/internal/domain/todo"
	"github.com/hohin728/redux-fundamentals-example-app/internal/platform/logging"
	"github.com/hohin728/redux-fundamentals-example-app/internal/platform/telemetry"
	"github.com/hohin728/redux-fundamentals-example-app/internal/ports"
	"github.com/hohin728/redux-fundamentals-example-app/internal/store"
)

// Workflow names, also used as span and metric labels.
const (
	WorkflowFetchTodos  = "todos/fetchTodos"
	WorkflowSaveNewTodo = "todos/saveNewTodo"
)

// DefaultMaxConcurrentSaves caps SaveNewTodos when no limit is configured.
const DefaultMaxConcurrentSaves = 4

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService. Each operation is a workflow
// run against the store: it talks to the remote API through the TodoClient
// port and reports results only by dispatching actions.
type TodoService struct {
	client             ports.TodoClient
	runner             *runner
	logger             *slog.Logger
	metrics            *telemetry.Metrics
	maxConcurrentSaves int
}

// TodoServiceOption configures a TodoService.
type TodoServiceOption func(*TodoService)

// WithMetrics records workflow durations on m.
func WithMetrics(m *telemetry.Metrics) TodoServiceOption {
	return func(s *TodoService) { s.metrics = m }
}

// WithMaxConcurrentSaves caps how many saves SaveNewTodos runs at once.
func WithMaxConcurrentSaves(n int) TodoServiceOption {
	return func(s *TodoService) {
		if n > 0 {
			s.maxConcurrentSaves = n
		}
	}
}

// NewTodoService creates a TodoService. A nil logger discards output.
func NewTodoService(client ports.TodoClient, dispatcher ports.Dispatcher, logger *slog.Logger, opts ...TodoServiceOption) *TodoService {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &TodoService{
		client:             client,
		logger:             logger,
		maxConcurrentSaves: DefaultMaxConcurrentSaves,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.runner = newRunner(dispatcher, logger, s.metrics)
	return s
}

func fetchTodos(client ports.TodoClient) workflow[[]todo.Todo] {
	return workflow[[]todo.Todo]{
		name:    WorkflowFetchTodos,
		pending: store.TodosLoading{},
		call:    client.ListTodos,
		resume: func(items []todo.Todo) store.Action {
			return store.TodosLoaded{Todos: items}
		},
	}
}

func saveNewTodo(client ports.TodoClient, text string) workflow[*todo.Todo] {
	return workflow[*todo.Todo]{
		name: WorkflowSaveNewTodo,
		call: func(ctx context.Context) (*todo.Todo, error) {
			created, err := client.CreateTodo(ctx, text)
			if err != nil {
				return nil, err
			}
			if created == nil {
				return nil, fmt.Errorf("empty create response: %w", domain.ErrUnavailable)
			}
			if err := created.Validate(); err != nil {
				return nil, fmt.Errorf("invalid create response: %w", err)
			}
			return created, nil
		},
		resume: func(created *todo.Todo) store.Action {
			return store.TodoAdded{Todo: *created}
		},
	}
}

// FetchTodos loads the full list from the remote API into the store.
func (s *TodoService) FetchTodos(ctx context.Context) error {
	s.logger.InfoContext(ctx, "fetching todos")

	if _, err := runWorkflow(ctx, s.runner, fetchTodos(s.client)); err != nil {
		return err
	}
	return nil
}

// SaveNewTodo creates a todo remotely and adds it to the store. Leading and
// trailing whitespace is trimmed before the text is sent; text that is blank
// after trimming fails with a *domain.ValidationError on "text" and never
// reaches the client.
func (s *TodoService) SaveNewTodo(ctx context.Context, text string) (*todo.Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.NewValidationError("text", domain.MsgRequired)
	}

	s.logger.InfoContext(ctx, "saving new todo", slog.Int("text_len", len(text)))
	return runWorkflow(ctx, s.runner, saveNewTodo(s.client, text))
}

// SaveNewTodos saves each text as its own workflow. A todo is added to the
// store as soon as its save resolves.
func (s *TodoService) SaveNewTodos(ctx context.Context, texts []string) (*ports.BulkSaveResult, error) {
	if len(texts) == 0 {
		return nil, domain.NewValidationError("texts", domain.MsgMustNotEmpty)
	}

	s.logger.InfoContext(ctx, "saving new todos",
		slog.Int("count", len(texts)),
		slog.Int("max_concurrent", s.maxConcurrentSaves),
	)

	results := fanout.Run(ctx, s.maxConcurrentSaves, texts, s.SaveNewTodo)

	out := &ports.BulkSaveResult{Created: make([]todo.Todo, 0, len(texts))}
	for i, r := range results {
		if r.Err != nil {
			out.Errors = append(out.Errors, ports.BulkSaveError{Index: i, Text: texts[i], Err: r.Err})
			continue
		}
		out.Created = append(out.Created, *r.Value)
	}

	if len(out.Errors) > 0 {
		s.logger.WarnContext(ctx, "bulk save partially failed",
			slog.String("operation", "SaveNewTodos"),
			slog.Int("failed", len(out.Errors)),
			slog.Int("created", len(out.Created)),
		)
	}
	return out, nil
}
