package app

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/hohin728/redux-fundamentals-example-app/internal/domain"
	"github.com/hohin728/redux-fundamentals-example-app/internal/domain/todo"
	"github.com/hohin728/redux-fundamentals-example-app/internal/platform/telemetry"
	"github.com/hohin728/redux-fundamentals-example-app/internal/store"
	"github.com/hohin728/redux-fundamentals-example-app/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestStore() *store.Store {
	return store.New(store.WithLogger(discardLogger()))
}

func remoteTodos() []todo.Todo {
	return []todo.Todo{
		{ID: "0", Text: "Learn React", Completed: true},
		{ID: "1", Text: "Learn Redux", Color: todo.ColorPurple},
		{ID: "2", Text: "Build something fun!", Color: todo.ColorBlue},
	}
}

// recordingDispatcher forwards to a real store and remembers action types.
type recordingDispatcher struct {
	*store.Store
	mu    sync.Mutex
	types []string
}

func (d *recordingDispatcher) Dispatch(ctx context.Context, a store.Action) *store.RootState {
	d.mu.Lock()
	d.types = append(d.types, a.Type())
	d.mu.Unlock()
	return d.Store.Dispatch(ctx, a)
}

func (d *recordingDispatcher) dispatched() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.types)
}

// --- NewTodoService ---

func TestNewTodoService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewTodoService(mocks.NewMockTodoClient(t), newTestStore(), nil)
	if svc.logger == nil {
		t.Fatal("NewTodoService(nil logger) should create a no-op logger, got nil")
	}
}

func TestNewTodoService_Options(t *testing.T) {
	t.Parallel()

	svc := NewTodoService(mocks.NewMockTodoClient(t), newTestStore(), discardLogger(), WithMaxConcurrentSaves(9))
	if svc.maxConcurrentSaves != 9 {
		t.Errorf("maxConcurrentSaves = %d, want 9", svc.maxConcurrentSaves)
	}

	svc = NewTodoService(mocks.NewMockTodoClient(t), newTestStore(), discardLogger(), WithMaxConcurrentSaves(0))
	if svc.maxConcurrentSaves != DefaultMaxConcurrentSaves {
		t.Errorf("maxConcurrentSaves = %d, want default %d", svc.maxConcurrentSaves, DefaultMaxConcurrentSaves)
	}
}

// --- FetchTodos ---

func TestTodoService_FetchTodos(t *testing.T) {
	t.Parallel()

	t.Run("loads remote todos and returns to idle", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockTodoClient(t)
		d := &recordingDispatcher{Store: newTestStore()}
		svc := NewTodoService(client, d, discardLogger())

		client.EXPECT().ListTodos(mock.Anything).
			Run(func(context.Context) {
				if got := d.State().Todos.Status; got != store.StatusLoading {
					t.Errorf("status during call = %q, want loading", got)
				}
			}).
			Return(remoteTodos(), nil)

		if err := svc.FetchTodos(context.Background()); err != nil {
			t.Fatalf("FetchTodos() error = %v", err)
		}

		if got, want := d.dispatched(), []string{store.TypeTodosLoading, store.TypeTodosLoaded}; !slices.Equal(got, want) {
			t.Errorf("dispatched = %v, want %v", got, want)
		}
		state := d.State()
		if state.Todos.Status != store.StatusIdle {
			t.Errorf("Status = %q, want idle", state.Todos.Status)
		}
		if got := state.Todos.Entities.All(); !slices.Equal(got, remoteTodos()) {
			t.Errorf("entities = %+v, want %+v", got, remoteTodos())
		}
	})

	t.Run("replaces rather than merges", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockTodoClient(t)
		s := newTestStore()
		s.Dispatch(context.Background(), store.TodoAdded{Todo: todo.Todo{ID: "local", Text: "local only"}})
		svc := NewTodoService(client, s, discardLogger())

		client.EXPECT().ListTodos(mock.Anything).Return(remoteTodos()[:1], nil)

		if err := svc.FetchTodos(context.Background()); err != nil {
			t.Fatalf("FetchTodos() error = %v", err)
		}
		if got := s.State().Todos.Entities.IDs(); !slices.Equal(got, []string{"0"}) {
			t.Errorf("IDs() = %v, want [0]", got)
		}
	})

	t.Run("failure leaves status loading and wraps error", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockTodoClient(t)
		d := &recordingDispatcher{Store: newTestStore()}
		svc := NewTodoService(client, d, discardLogger())

		client.EXPECT().ListTodos(mock.Anything).Return(nil, domain.ErrUnavailable)

		err := svc.FetchTodos(context.Background())
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Fatalf("FetchTodos() error = %v, want ErrUnavailable", err)
		}
		if !strings.Contains(err.Error(), WorkflowFetchTodos) {
			t.Errorf("error %q does not name the workflow", err)
		}
		if got := d.State().Todos.Status; got != store.StatusLoading {
			t.Errorf("Status = %q, want loading", got)
		}
		if got, want := d.dispatched(), []string{store.TypeTodosLoading}; !slices.Equal(got, want) {
			t.Errorf("dispatched = %v, want %v", got, want)
		}
	})
}

// --- SaveNewTodo ---

func TestTodoService_SaveNewTodo(t *testing.T) {
	t.Parallel()

	t.Run("adds the created todo", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockTodoClient(t)
		s := newTestStore()
		svc := NewTodoService(client, s, discardLogger())

		created := &todo.Todo{ID: "abc", Text: "Buy milk"}
		client.EXPECT().CreateTodo(mock.Anything, "Buy milk").Return(created, nil)

		got, err := svc.SaveNewTodo(context.Background(), "  Buy milk \n")
		if err != nil {
			t.Fatalf("SaveNewTodo() error = %v", err)
		}
		if got.ID != "abc" {
			t.Errorf("ID = %q, want abc", got.ID)
		}
		stored, ok := s.State().Todos.Entities.Get("abc")
		if !ok || stored != *created {
			t.Errorf("stored = %+v, %v, want %+v", stored, ok, *created)
		}
	})

	t.Run("dispatches only on success", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockTodoClient(t)
		d := mocks.NewMockDispatcher(t)
		svc := NewTodoService(client, d, discardLogger())

		client.EXPECT().CreateTodo(mock.Anything, "x").Return(nil, domain.ErrUnavailable)

		if _, err := svc.SaveNewTodo(context.Background(), "x"); !errors.Is(err, domain.ErrUnavailable) {
			t.Fatalf("SaveNewTodo() error = %v, want ErrUnavailable", err)
		}
		d.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
	})

	t.Run("dispatches todoAdded with the created entity", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockTodoClient(t)
		d := mocks.NewMockDispatcher(t)
		svc := NewTodoService(client, d, discardLogger())

		created := &todo.Todo{ID: "7", Text: "x"}
		client.EXPECT().CreateTodo(mock.Anything, "x").Return(created, nil)
		d.EXPECT().Dispatch(mock.Anything, store.TodoAdded{Todo: *created}).Return(store.InitialState()).Once()

		if _, err := svc.SaveNewTodo(context.Background(), "x"); err != nil {
			t.Fatalf("SaveNewTodo() error = %v", err)
		}
	})

	t.Run("blank text is a validation error", func(t *testing.T) {
		t.Parallel()
		svc := NewTodoService(mocks.NewMockTodoClient(t), mocks.NewMockDispatcher(t), discardLogger())

		_, err := svc.SaveNewTodo(context.Background(), "   ")
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("SaveNewTodo() error = %v, want *ValidationError", err)
		}
		if _, ok := verr.Fields["text"]; !ok {
			t.Errorf("Fields = %v, want text", verr.Fields)
		}
	})

	t.Run("sends trimmed text with inner spacing kept", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockTodoClient(t)
		svc := NewTodoService(client, newTestStore(), discardLogger())

		created := &todo.Todo{ID: "9", Text: "Call  mom"}
		client.EXPECT().CreateTodo(mock.Anything, "Call  mom").Return(created, nil).Once()

		if _, err := svc.SaveNewTodo(context.Background(), "\tCall  mom  "); err != nil {
			t.Fatalf("SaveNewTodo() error = %v", err)
		}
	})

	t.Run("empty response is rejected", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockTodoClient(t)
		svc := NewTodoService(client, mocks.NewMockDispatcher(t), discardLogger())

		client.EXPECT().CreateTodo(mock.Anything, "x").Return(nil, nil)

		if _, err := svc.SaveNewTodo(context.Background(), "x"); !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("SaveNewTodo() error = %v, want ErrUnavailable", err)
		}
	})

	t.Run("response without id is rejected", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockTodoClient(t)
		svc := NewTodoService(client, mocks.NewMockDispatcher(t), discardLogger())

		client.EXPECT().CreateTodo(mock.Anything, "x").Return(&todo.Todo{Text: "x"}, nil)

		if _, err := svc.SaveNewTodo(context.Background(), "x"); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("SaveNewTodo() error = %v, want ErrValidation", err)
		}
	})
}

// --- SaveNewTodos ---

func TestTodoService_SaveNewTodos(t *testing.T) {
	t.Parallel()

	t.Run("partial success", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockTodoClient(t)
		s := newTestStore()
		svc := NewTodoService(client, s, discardLogger(), WithMaxConcurrentSaves(2))

		client.EXPECT().CreateTodo(mock.Anything, "a").Return(&todo.Todo{ID: "1", Text: "a"}, nil)
		client.EXPECT().CreateTodo(mock.Anything, "b").Return(nil, domain.ErrUnavailable)
		client.EXPECT().CreateTodo(mock.Anything, "c").Return(&todo.Todo{ID: "3", Text: "c"}, nil)

		res, err := svc.SaveNewTodos(context.Background(), []string{"a", "b", "", "c"})
		if err != nil {
			t.Fatalf("SaveNewTodos() error = %v", err)
		}

		if len(res.Created) != 2 || res.Created[0].ID != "1" || res.Created[1].ID != "3" {
			t.Errorf("Created = %+v, want ids 1 and 3 in order", res.Created)
		}
		if len(res.Errors) != 2 {
			t.Fatalf("len(Errors) = %d, want 2", len(res.Errors))
		}
		if res.Errors[0].Index != 1 || !errors.Is(res.Errors[0].Err, domain.ErrUnavailable) {
			t.Errorf("Errors[0] = %+v, want index 1 unavailable", res.Errors[0])
		}
		if res.Errors[1].Index != 2 || !errors.Is(res.Errors[1].Err, domain.ErrValidation) {
			t.Errorf("Errors[1] = %+v, want index 2 validation", res.Errors[1])
		}
		if got := s.State().Todos.Entities.Len(); got != 2 {
			t.Errorf("store Len() = %d, want 2", got)
		}
	})

	t.Run("empty request", func(t *testing.T) {
		t.Parallel()
		svc := NewTodoService(mocks.NewMockTodoClient(t), newTestStore(), discardLogger())

		if _, err := svc.SaveNewTodos(context.Background(), nil); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("SaveNewTodos(nil) error = %v, want ErrValidation", err)
		}
	})
}

// --- workflow runner ---

func TestRunWorkflow_RecordsDuration(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	metrics, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	client := mocks.NewMockTodoClient(t)
	client.EXPECT().ListTodos(mock.Anything).Return([]todo.Todo{}, nil)
	svc := NewTodoService(client, newTestStore(), discardLogger(), WithMetrics(metrics))

	ctx := context.Background()
	if err := svc.FetchTodos(ctx); err != nil {
		t.Fatalf("FetchTodos() error = %v", err)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == telemetry.MetricWorkflowDuration {
				return
			}
		}
	}
	t.Errorf("metric %q not recorded", telemetry.MetricWorkflowDuration)
}

func TestRunWorkflow_NoPendingAction(t *testing.T) {
	t.Parallel()

	d := &recordingDispatcher{Store: newTestStore()}
	r := newRunner(d, discardLogger(), nil)

	w := workflow[string]{
		name: "test/echo",
		call: func(context.Context) (string, error) { return "1", nil },
		resume: func(id string) store.Action {
			return store.TodoAdded{Todo: todo.Todo{ID: id, Text: "echo"}}
		},
	}
	got, err := runWorkflow(context.Background(), r, w)
	if err != nil || got != "1" {
		t.Fatalf("runWorkflow() = %q, %v", got, err)
	}
	if types := d.dispatched(); !slices.Equal(types, []string{store.TypeTodoAdded}) {
		t.Errorf("dispatched = %v, want only todoAdded", types)
	}
}
