package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/hohin728/redux-fundamentals-example-app/internal/platform/telemetry"
)

// Middleware wraps an http.Handler.
type Middleware = func(http.Handler) http.Handler

// Chain composes middlewares so the first argument is the outermost:
// Chain(a, b)(h) is a(b(h)).
func Chain(middlewares ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			h = middlewares[i](h)
		}
		return h
	}
}

// Standard returns the pipeline in its documented order. A zero timeout
// leaves the Timeout layer out.
func Standard(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) []Middleware {
	mws := []Middleware{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
	}
	if timeout > 0 {
		mws = append(mws, Timeout(timeout))
	}
	return mws
}
