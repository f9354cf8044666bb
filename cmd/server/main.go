// Package main runs the todo API stub service. One samber/do container
// builds every component, including exactly one todo client that the HTTP
// handlers and the readiness registry share.
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

	"github.com/jsamuelsen11/todo-api-stub/internal/adapters/clients/stub"
	adapthttp "github.com/jsamuelsen11/todo-api-stub/internal/adapters/http"
	"github.com/jsamuelsen11/todo-api-stub/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-api-stub/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-api-stub/internal/platform/config"
	"github.com/jsamuelsen11/todo-api-stub/internal/platform/health"
	"github.com/jsamuelsen11/todo-api-stub/internal/platform/latency"
	"github.com/jsamuelsen11/todo-api-stub/internal/platform/logging"
	"github.com/jsamuelsen11/todo-api-stub/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-api-stub/internal/ports"
)

const (
	drainTimeout = 15 * time.Second
	flushTimeout = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "todo-api-stub:", err)
		os.Exit(1)
	}
}

func run() error {
	profile, ok := os.LookupEnv("APP_PROFILE")
	if !ok || profile == "" {
		return errors.New("APP_PROFILE must name a config profile (local, dev or prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("config profile %q: %w", profile, err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tel, err := startTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}

	injector := newInjector(cfg, logger, tel.Metrics)

	client := do.MustInvoke[*stub.TodoClient](injector)
	logger.Info("todo client ready",
		slog.String("base_url", client.BaseURL()),
		slog.Duration("delay", client.Delay()),
	)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return errors.Join(fmt.Errorf("building http server: %w", err), tel.Shutdown(context.Background()))
	}

	return serve(ctx, server, tel, logger)
}

// serve runs server until ctx ends or the listener fails, then drains
// in-flight requests and flushes telemetry.
func serve(ctx context.Context, server *adapthttp.Server, tel *telemetry.Providers, logger *slog.Logger) error {
	stopped := make(chan error, 1)
	go func() { stopped <- server.Start() }()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("stop requested, draining requests")

		drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
		defer cancel()
		if err := server.Shutdown(drainCtx); err != nil {
			logger.Error("draining requests", slog.Any("error", err))
		}
		serveErr = <-stopped
	case serveErr = <-stopped:
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := tel.Shutdown(flushCtx); err != nil {
		logger.Error("flushing telemetry", slog.Any("error", err))
	}

	if serveErr != nil {
		return fmt.Errorf("serving http: %w", serveErr)
	}
	logger.Info("stopped")
	return nil
}

// startTelemetry returns zero Providers, and so nil Metrics, when telemetry
// is off.
func startTelemetry(ctx context.Context, tc config.TelemetryConfig) (*telemetry.Providers, error) {
	if !tc.Enabled {
		return &telemetry.Providers{}, nil
	}
	tel, err := telemetry.Start(ctx, tc.ServiceName, telemetry.Destination{
		Exporter: tc.Exporter,
		Endpoint: tc.Endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("starting telemetry: %w", err)
	}
	return tel, nil
}

// newInjector registers every provider. do providers are lazy singletons,
// so each component, the todo client included, is built once.
func newInjector(cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)
	do.ProvideValue(injector, latency.Timer())

	do.Provide(injector, provideTodoClient)
	do.Provide(injector, func(i do.Injector) (ports.TodoClient, error) {
		return do.MustInvoke[*stub.TodoClient](i), nil
	})
	do.Provide(injector, provideHealthRegistry)
	do.Provide(injector, provideRouter)
	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(
			do.MustInvoke[*config.Config](i).Server,
			do.MustInvoke[nethttp.Handler](i),
			do.MustInvoke[*slog.Logger](i),
		), nil
	})

	return injector
}

func provideTodoClient(i do.Injector) (*stub.TodoClient, error) {
	return stub.NewTodoClient(
		do.MustInvoke[*config.Config](i).Stub,
		do.MustInvoke[latency.Sleeper](i),
		do.MustInvoke[*telemetry.Metrics](i),
		do.MustInvoke[*slog.Logger](i),
	), nil
}

// provideHealthRegistry registers the todo client so readiness reports the
// same instance the handlers call.
func provideHealthRegistry(i do.Injector) (ports.HealthRegistry, error) {
	client, err := do.Invoke[*stub.TodoClient](i)
	if err != nil {
		return nil, err
	}
	registry := health.New()
	registry.Register(client)
	return registry, nil
}

func provideRouter(i do.Injector) (nethttp.Handler, error) {
	cfg := do.MustInvoke[*config.Config](i)
	logger := do.MustInvoke[*slog.Logger](i)

	return adapthttp.NewRouter(
		handlers.NewTodoHandler(do.MustInvoke[ports.TodoClient](i)),
		handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.OpenTelemetry(do.MustInvoke[*telemetry.Metrics](i)),
		middleware.Logging(logger),
		middleware.Timeout(cfg.Server.WriteTimeout),
	), nil
}
