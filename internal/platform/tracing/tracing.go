package tracing

import (
	"context"
	"log/slog"

	"github.com/phrazzld/tareas-api/internal/config"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// ShutdownFunc flushes and stops a tracer provider.
type ShutdownFunc func(context.Context) error

// Setup returns the tracer provider described by cfg and a function that
// releases it. A disabled config yields a no-op provider.
func Setup(cfg config.TracingConfig, l *slog.Logger) (trace.TracerProvider, ShutdownFunc) {
	if !cfg.Enabled {
		return noop.NewTracerProvider(), func(context.Context) error { return nil }
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
		sdktrace.WithSyncer(NewLogExporter(l)),
	)
	return tp, tp.Shutdown
}
