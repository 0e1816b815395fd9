package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/tareas-api/internal/config"
	"github.com/phrazzld/tareas-api/internal/events"
	"github.com/phrazzld/tareas-api/internal/platform/memory"
	"github.com/phrazzld/tareas-api/internal/platform/tracing"
	"github.com/phrazzld/tareas-api/internal/store"
	"go.opentelemetry.io/otel/trace"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	taskStore      store.TaskStore
	tracerProvider trace.TracerProvider
	shutdownTracer tracing.ShutdownFunc
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	emitter := events.NewInMemoryEmitter(logger)
	emitter.RegisterHandler(events.NewLogHandler(logger))

	opts := []memory.Option{memory.WithEmitter(emitter)}
	if cfg.Store.Seed {
		opts = append(opts, memory.WithSeed(memory.DefaultSeed()))
	}

	tp, shutdownTracer := tracing.Setup(cfg.Tracing, logger)

	app := &application{
		config:         cfg,
		logger:         logger,
		taskStore:      memory.NewTaskStore(logger, opts...),
		tracerProvider: tp,
		shutdownTracer: shutdownTracer,
	}

	logger.Info("Application initialized successfully",
		"seeded", cfg.Store.Seed,
		"tracing", cfg.Tracing.Enabled)
	return app
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup flushes the tracer provider.
func (app *application) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.shutdownTracer(ctx); err != nil {
		app.logger.Error("Failed to shut down tracer provider", "error", err)
	}
}
