package fanout_test

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hohin728/redux-fundamentals-example-app/internal/app/fanout"
)

func upper(_ context.Context, s string) (string, error) {
	return strings.ToUpper(s), nil
}

func TestRun_NoItems(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 4, nil, func(context.Context, string) (string, error) {
		t.Fatal("fn called with no items")
		return "", nil
	})
	if results == nil || len(results) != 0 {
		t.Fatalf("Run(nil) = %#v, want empty non-nil slice", results)
	}
}

func TestRun_InputOrder(t *testing.T) {
	t.Parallel()

	delays := map[string]time.Duration{"a": 30 * time.Millisecond, "b": 0, "c": 15 * time.Millisecond}
	items := []string{"a", "b", "c"}

	results := fanout.Run(context.Background(), 0, items, func(ctx context.Context, s string) (string, error) {
		time.Sleep(delays[s])
		return upper(ctx, s)
	})

	got := make([]string, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			t.Fatalf("unexpected error %v", r.Err)
		}
		got = append(got, r.Value)
	}
	if want := []string{"A", "B", "C"}; !slices.Equal(got, want) {
		t.Errorf("values = %v, want %v", got, want)
	}
}

func TestRun_PartialFailure(t *testing.T) {
	t.Parallel()

	errEmpty := errors.New("empty text")
	items := []string{"buy milk", "", "walk dog", ""}

	results := fanout.Run(context.Background(), 2, items, func(ctx context.Context, s string) (string, error) {
		if s == "" {
			return "", errEmpty
		}
		return upper(ctx, s)
	})

	var failed []int
	for i, r := range results {
		if r.Err != nil {
			failed = append(failed, i)
		}
	}
	if !slices.Equal(failed, []int{1, 3}) {
		t.Errorf("failed indexes = %v, want [1 3]", failed)
	}
	for _, i := range []int{1, 3} {
		if !errors.Is(results[i].Err, errEmpty) {
			t.Errorf("results[%d].Err = %v, want %v", i, results[i].Err, errEmpty)
		}
	}
	if results[2].Value != "WALK DOG" {
		t.Errorf("results[2].Value = %q, want WALK DOG", results[2].Value)
	}
}

func TestRun_LimitIsHonored(t *testing.T) {
	t.Parallel()

	const limit = 2
	var inFlight, peak atomic.Int32

	items := make([]string, 12)
	results := fanout.Run(context.Background(), limit, items, func(context.Context, string) (string, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		return "", nil
	})

	if len(results) != len(items) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(items))
	}
	if p := peak.Load(); p > limit {
		t.Errorf("peak in-flight = %d, want <= %d", p, limit)
	}
}

func TestRun_CanceledBeforeStart(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	results := fanout.Run(ctx, 1, []string{"a", "b"}, func(ctx context.Context, s string) (string, error) {
		calls.Add(1)
		return upper(ctx, s)
	})

	if calls.Load() != 0 {
		t.Errorf("fn called %d times on a canceled context, want 0", calls.Load())
	}
	for i, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("results[%d].Err = %v, want context.Canceled", i, r.Err)
		}
	}
}

func TestRun_CanceledMidway(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := fanout.Run(ctx, 1, []string{"first", "second", "third"}, func(ctx context.Context, s string) (string, error) {
		if s == "first" {
			cancel()
		}
		return upper(ctx, s)
	})

	if results[0].Err != nil || results[0].Value != "FIRST" {
		t.Errorf("results[0] = %+v, want FIRST", results[0])
	}
	if !errors.Is(results[2].Err, context.Canceled) {
		t.Errorf("results[2].Err = %v, want context.Canceled", results[2].Err)
	}
}

func TestRun_ReturnsAfterEveryCall(t *testing.T) {
	t.Parallel()

	errSave := errors.New("save failed")
	var finished atomic.Int32

	items := []string{"a", "b", "c", "d", "e"}
	results := fanout.Run(context.Background(), 3, items, func(_ context.Context, s string) (string, error) {
		defer finished.Add(1)
		time.Sleep(10 * time.Millisecond)
		if s == "c" {
			return "", errSave
		}
		return s, nil
	})

	if n := finished.Load(); n != int32(len(items)) {
		t.Fatalf("Run returned with %d of %d calls finished", n, len(items))
	}
	for i, r := range results {
		if items[i] == "c" {
			if !errors.Is(r.Err, errSave) {
				t.Errorf("results[%d].Err = %v, want %v", i, r.Err, errSave)
			}
			continue
		}
		if r.Err != nil || r.Value != items[i] {
			t.Errorf("results[%d] = %+v, want %q", i, r, items[i])
		}
	}
}
