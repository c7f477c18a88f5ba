package ports

import "context"

// HealthChecker is implemented by any component that can report its health,
// such as the remote to-do API client.
type HealthChecker interface {
	// Name returns a short identifier for this component (e.g. "todo-api").
	Name() string

	// HealthCheck returns nil if healthy, or an error describing the
	// failure. It must honor ctx cancellation.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs registered checkers for the readiness endpoint.
type HealthRegistry interface {
	// Register adds a HealthChecker to the registry.
	Register(checker HealthChecker)

	// CheckAll executes all registered health checks and returns results
	// keyed by checker name. Nil values indicate healthy components.
	CheckAll(ctx context.Context) map[string]error
}
