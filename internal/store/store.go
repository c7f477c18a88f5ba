package store

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/metric"

	"github.com/hohin728/redux-fundamentals-example-app/internal/platform/logging"
	"github.com/hohin728/redux-fundamentals-example-app/internal/platform/telemetry"
)

// Listener receives the latest snapshot after dispatches. Dispatches made
// while listeners are running are coalesced into one further call.
type Listener func(state *RootState)

type subscription struct {
	listener Listener
}

// Store holds the current root snapshot and serializes dispatches.
type Store struct {
	mu      sync.Mutex
	current atomic.Pointer[RootState]
	reducer Reducer

	subsMu sync.Mutex
	subs   []*subscription

	// notifyMu guards notifying and pending. One goroutine at a time runs
	// notification rounds; dispatches that land meanwhile set pending.
	notifyMu  sync.Mutex
	notifying bool
	pending   bool

	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithMetrics records a dispatch counter on m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// WithPreloadedState starts the store from state instead of InitialState.
func WithPreloadedState(state *RootState) Option {
	return func(s *Store) {
		if state != nil {
			s.current.Store(state)
		}
	}
}

// WithReducer replaces the root reducer.
func WithReducer(r Reducer) Option {
	return func(s *Store) { s.reducer = r }
}

// New creates a Store holding InitialState.
func New(opts ...Option) *Store {
	s := &Store{
		reducer: Reduce,
		logger:  logging.Discard(),
	}
	s.current.Store(InitialState())
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current snapshot. It never blocks.
func (s *Store) State() *RootState {
	return s.current.Load()
}

// Dispatch applies action to the current state, publishes the result, and
// then notifies every subscribed listener. It returns the new snapshot.
//
// Listeners never run concurrently and always receive the latest published
// snapshot. A dispatch made while a notification round is running (from a
// listener or another goroutine) is applied at once; its notification is
// delivered by the running round, which repeats until no dispatch is
// pending. The last snapshot a listener receives is therefore State().
func (s *Store) Dispatch(ctx context.Context, action Action) *RootState {
	if action == nil {
		s.logger.WarnContext(ctx, "dispatch of nil action ignored", slog.String("operation", "Dispatch"))
		return s.State()
	}

	s.mu.Lock()
	prev := s.current.Load()
	next := s.reducer(prev, action)
	s.current.Store(next)
	s.mu.Unlock()

	changed := next != prev
	s.logger.DebugContext(ctx, "action dispatched",
		slog.String("action", action.Type()),
		slog.Bool("changed", changed),
	)
	if s.metrics != nil && s.metrics.StoreDispatchTotal != nil {
		s.metrics.StoreDispatchTotal.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrActionType.String(action.Type()),
			telemetry.AttrChanged.Bool(changed),
		))
	}

	s.notify()
	return next
}

func (s *Store) notify() {
	s.notifyMu.Lock()
	s.pending = true
	if s.notifying {
		s.notifyMu.Unlock()
		return
	}
	s.notifying = true
	s.notifyMu.Unlock()

	// A panicking listener must not leave the store stuck in a round.
	defer func() {
		if r := recover(); r != nil {
			s.notifyMu.Lock()
			s.notifying = false
			s.notifyMu.Unlock()
			panic(r)
		}
	}()

	for {
		s.notifyMu.Lock()
		if !s.pending {
			s.notifying = false
			s.notifyMu.Unlock()
			return
		}
		s.pending = false
		s.notifyMu.Unlock()

		state := s.State()
		for _, sub := range s.subscribers() {
			sub.listener(state)
		}
	}
}

// Subscribe registers l and returns a function that removes it. Calling the
// returned function more than once is harmless.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	sub := &subscription{listener: l}

	s.subsMu.Lock()
	subs := make([]*subscription, 0, len(s.subs)+1)
	subs = append(subs, s.subs...)
	s.subs = append(subs, sub)
	s.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(sub) })
	}
}

func (s *Store) remove(sub *subscription) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	subs := make([]*subscription, 0, len(s.subs))
	for _, existing := range s.subs {
		if existing != sub {
			subs = append(subs, existing)
		}
	}
	s.subs = subs
}

// subscribers returns the current listener list. The slice is never mutated
// in place, so callers may iterate it without holding the lock.
func (s *Store) subscribers() []*subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	return s.subs
}
