package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/hohin728/redux-fundamentals-example-app/internal/platform/telemetry"
	"github.com/hohin728/redux-fundamentals-example-app/internal/ports"
	"github.com/hohin728/redux-fundamentals-example-app/internal/store"
)

const tracerName = "github.com/hohin728/redux-fundamentals-example-app/internal/app"

// workflow describes an async to-do operation without running it: an
// optional action dispatched before the remote call, the single remote call,
// and the mapping from its result to the action dispatched on success.
type workflow[R any] struct {
	name    string
	pending store.Action
	call    func(ctx context.Context) (R, error)
	resume  func(R) store.Action
}

// runner performs workflows against a dispatcher.
type runner struct {
	dispatcher ports.Dispatcher
	logger     *slog.Logger
	metrics    *telemetry.Metrics
	tracer     trace.Tracer
}

func newRunner(d ports.Dispatcher, logger *slog.Logger, metrics *telemetry.Metrics) *runner {
	return &runner{
		dispatcher: d,
		logger:     logger,
		metrics:    metrics,
		tracer:     otel.Tracer(tracerName),
	}
}

// runWorkflow dispatches w.pending, awaits w.call, and on success dispatches
// w.resume(result). On failure nothing further is dispatched and the error is
// returned wrapped with the workflow name.
func runWorkflow[R any](ctx context.Context, r *runner, w workflow[R]) (R, error) {
	ctx, span := r.tracer.Start(ctx, w.name)
	defer span.End()

	start := time.Now()
	if w.pending != nil {
		r.dispatcher.Dispatch(ctx, w.pending)
	}

	result, err := w.call(ctx)
	r.record(ctx, w.name, start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.ErrorContext(ctx, "workflow failed",
			slog.String("operation", w.name),
			slog.Any("error", err),
		)
		var zero R
		return zero, fmt.Errorf("%s: %w", w.name, err)
	}

	r.dispatcher.Dispatch(ctx, w.resume(result))
	return result, nil
}

func (r *runner) record(ctx context.Context, name string, start time.Time, err error) {
	if r.metrics == nil || r.metrics.WorkflowDuration == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	r.metrics.WorkflowDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		telemetry.AttrWorkflow.String(name),
		telemetry.AttrResult.String(result),
	))
}
