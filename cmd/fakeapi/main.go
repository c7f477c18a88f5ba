// Package main runs the in-memory to-do API that the service fetches from
// and saves to during local development.
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

	"github.com/samber/do/v2"

	"github.com/hohin728/redux-fundamentals-example-app/internal/adapters/fakeapi"
	adapthttp "github.com/hohin728/redux-fundamentals-example-app/internal/adapters/http"
	"github.com/hohin728/redux-fundamentals-example-app/internal/adapters/http/middleware"
	"github.com/hohin728/redux-fundamentals-example-app/internal/platform/config"
	"github.com/hohin728/redux-fundamentals-example-app/internal/platform/logging"
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
	logger := logging.FromConfig(cfg.Log, os.Stderr).With(slog.String("component", "fakeapi"))

	injector := do.New()
	do.ProvideValue(injector, cfg)

	do.Provide(injector, func(i do.Injector) (*fakeapi.Repository, error) {
		c := do.MustInvoke[*config.Config](i)
		var opts []fakeapi.RepositoryOption
		if c.FakeAPI.Seed {
			opts = append(opts, fakeapi.WithSeed(fakeapi.SeedTodos()...))
		}
		return fakeapi.NewRepository(opts...), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		c := do.MustInvoke[*config.Config](i)
		h := fakeapi.NewHandler(do.MustInvoke[*fakeapi.Repository](i), c.FakeAPI.Latency)
		return h.Routes(middleware.Standard(logger, nil, 0)...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		c := do.MustInvoke[*config.Config](i)
		srvCfg := c.Server
		srvCfg.Host = c.FakeAPI.Host
		srvCfg.Port = c.FakeAPI.Port
		return adapthttp.NewServer(srvCfg, do.MustInvoke[nethttp.Handler](i), logger), nil
	})

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	repo := do.MustInvoke[*fakeapi.Repository](injector)
	logger.Info("fake API ready",
		slog.Int("todos", repo.Len()),
		slog.Duration("latency", cfg.FakeAPI.Latency),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Listen(); err != nil {
		return err
	}
	return server.Run(ctx)
}
