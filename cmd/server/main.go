// Package main is the entry point for the to-do state service. It wires the
// store, the remote API client and the HTTP adapter with samber/do v2, then
// serves until SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/hohin728/redux-fundamentals-example-app/internal/adapters/clients/acl"
	adapthttp "github.com/hohin728/redux-fundamentals-example-app/internal/adapters/http"
	"github.com/hohin728/redux-fundamentals-example-app/internal/adapters/http/handlers"
	"github.com/hohin728/redux-fundamentals-example-app/internal/adapters/http/middleware"
	"github.com/hohin728/redux-fundamentals-example-app/internal/app"
	"github.com/hohin728/redux-fundamentals-example-app/internal/platform/config"
	"github.com/hohin728/redux-fundamentals-example-app/internal/platform/health"
	"github.com/hohin728/redux-fundamentals-example-app/internal/platform/httpclient"
	"github.com/hohin728/redux-fundamentals-example-app/internal/platform/logging"
	"github.com/hohin728/redux-fundamentals-example-app/internal/platform/telemetry"
	"github.com/hohin728/redux-fundamentals-example-app/internal/ports"
	"github.com/hohin728/redux-fundamentals-example-app/internal/store"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	remoteServiceName     = "todo-api"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.FromConfig(cfg.Log, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	registerDependencies(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*httpclient.Client](injector))

	st := do.MustInvoke[*store.Store](injector)
	unsubscribe := st.Subscribe(stateLogger(logger))
	defer unsubscribe()

	if err := server.Listen(); err != nil {
		return err
	}

	if cfg.Store.FetchOnStart {
		svc := do.MustInvoke[ports.TodoService](injector)
		go func() {
			if err := svc.FetchTodos(ctx); err != nil {
				logger.Error("initial fetch failed",
					slog.String("operation", "FetchTodos"),
					slog.Any("error", err),
				)
			}
		}()
	}

	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start() }()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-serverErr

	logger.Info("shutdown complete")
	return nil
}

// stateLogger logs a summary of every published snapshot at debug.
func stateLogger(logger *slog.Logger) store.Listener {
	return func(state *store.RootState) {
		logger.Debug("state updated",
			slog.String("status", store.Loading(state).String()),
			slog.Int("todos", state.Todos.Entities.Len()),
			slog.String("status_filter", string(state.Filters.Status)),
			slog.Int("color_filters", len(state.Filters.Colors)),
		)
	}
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.Exporter, cfg.Telemetry.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.Exporter, cfg.Telemetry.Endpoint)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{tracer: tp, meter: mp, metrics: metrics}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*store.Store, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return store.New(store.WithLogger(logger), store.WithMetrics(metrics)), nil
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, remoteServiceName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewTodoClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		client := do.MustInvoke[ports.TodoClient](i)
		st := do.MustInvoke[*store.Store](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewTodoService(client, st, logger,
			app.WithMetrics(metrics),
			app.WithMaxConcurrentSaves(cfg.Store.MaxConcurrentSaves),
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoHandler, error) {
		st := do.MustInvoke[*store.Store](i)
		svc := do.MustInvoke[ports.TodoService](i)
		return handlers.NewTodoHandler(st, svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.StateHandler, error) {
		return handlers.NewStateHandler(do.MustInvoke[*store.Store](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return adapthttp.NewRouter(
			do.MustInvoke[*handlers.TodoHandler](i),
			do.MustInvoke[*handlers.StateHandler](i),
			do.MustInvoke[*handlers.HealthHandler](i),
			middleware.Standard(logger, metrics, cfg.Server.WriteTimeout)...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}
