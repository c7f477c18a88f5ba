package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/hohin728/redux-fundamentals-example-app/internal/platform/health"
	"github.com/hohin728/redux-fundamentals-example-app/mocks"
)

func newChecker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

func TestCheckAll(t *testing.T) {
	t.Parallel()

	refused := errors.New("connection refused")

	tests := []struct {
		name        string
		checkers    func(t *testing.T) []*mocks.MockHealthChecker
		want        map[string]error
		wantHealthy bool
	}{
		{
			name:        "no checkers",
			checkers:    func(*testing.T) []*mocks.MockHealthChecker { return nil },
			want:        map[string]error{},
			wantHealthy: true,
		},
		{
			name: "all healthy",
			checkers: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{newChecker(t, "todo-api", nil), newChecker(t, "store", nil)}
			},
			want:        map[string]error{"todo-api": nil, "store": nil},
			wantHealthy: true,
		},
		{
			name: "one failing",
			checkers: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{newChecker(t, "store", nil), newChecker(t, "todo-api", refused)}
			},
			want: map[string]error{"store": nil, "todo-api": refused},
		},
		{
			name: "duplicate name keeps the later checker",
			checkers: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{newChecker(t, "todo-api", nil), newChecker(t, "todo-api", refused)}
			},
			want: map[string]error{"todo-api": refused},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			for _, c := range tt.checkers(t) {
				r.Register(c)
			}

			got := r.CheckAll(context.Background())
			if got == nil {
				t.Fatal("CheckAll() = nil, want non-nil map")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len(results) = %d, want %d", len(got), len(tt.want))
			}
			for name, wantErr := range tt.want {
				if !errors.Is(got[name], wantErr) {
					t.Errorf("results[%q] = %v, want %v", name, got[name], wantErr)
				}
			}
			if h := health.Healthy(got); h != tt.wantHealthy {
				t.Errorf("Healthy() = %v, want %v", h, tt.wantHealthy)
			}
		})
	}
}

func TestCheckAll_ContextPropagated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("todo-api")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(checker)

	if got := r.CheckAll(ctx)["todo-api"]; !errors.Is(got, context.Canceled) {
		t.Errorf("todo-api = %v, want context.Canceled", got)
	}
}

func TestCheckAll_CheckTimeout(t *testing.T) {
	t.Parallel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("slow")
	checker.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	r := health.New(health.WithCheckTimeout(20 * time.Millisecond))
	r.Register(checker)

	start := time.Now()
	got := r.CheckAll(context.Background())["slow"]
	if !errors.Is(got, context.DeadlineExceeded) {
		t.Errorf("slow = %v, want context.DeadlineExceeded", got)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("CheckAll took %v, want it bounded by the check timeout", elapsed)
	}
}

func TestCheckAll_RunsChecksConcurrently(t *testing.T) {
	t.Parallel()

	// Each checker waits until both have started, so a sequential run would
	// block until the per-check timeout.
	var started sync.WaitGroup
	started.Add(2)
	wait := func(ctx context.Context) error {
		started.Done()
		done := make(chan struct{})
		go func() { started.Wait(); close(done) }()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	r := health.New(health.WithCheckTimeout(time.Second))
	for _, name := range []string{"a", "b"} {
		c := mocks.NewMockHealthChecker(t)
		c.EXPECT().Name().Return(name)
		c.EXPECT().HealthCheck(mock.Anything).RunAndReturn(wait)
		r.Register(c)
	}

	if results := r.CheckAll(context.Background()); !health.Healthy(results) {
		t.Errorf("CheckAll() = %v, want all healthy", results)
	}
}

func TestCheckAll_ConcurrentRegister(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("checker").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
				return
			}
			r.CheckAll(context.Background())
		}()
	}
	wg.Wait()
}
