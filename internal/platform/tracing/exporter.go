package tracing

import (
	"context"
	"log/slog"
	"sync/atomic"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// LogExporter is a sdktrace.SpanExporter that writes each finished span as
// a DEBUG log record.
type LogExporter struct {
	logger  *slog.Logger
	stopped atomic.Bool
}

var _ sdktrace.SpanExporter = (*LogExporter)(nil)

// NewLogExporter creates a LogExporter writing to l, or slog.Default() if l is nil.
func NewLogExporter(l *slog.Logger) *LogExporter {
	if l == nil {
		l = slog.Default()
	}
	return &LogExporter{logger: l.With(slog.String("component", "tracing"))}
}

// ExportSpans logs spans. After Shutdown it is a no-op.
func (e *LogExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	if e.stopped.Load() {
		return nil
	}

	for _, s := range spans {
		attrs := make([]any, 0, len(s.Attributes()))
		for _, kv := range s.Attributes() {
			attrs = append(attrs, slog.Any(string(kv.Key), kv.Value.AsInterface()))
		}

		e.logger.LogAttrs(ctx, slog.LevelDebug, "span finished",
			slog.String("span_name", s.Name()),
			slog.String("trace_id", s.SpanContext().TraceID().String()),
			slog.String("span_id", s.SpanContext().SpanID().String()),
			slog.String("parent_span_id", s.Parent().SpanID().String()),
			slog.String("span_kind", s.SpanKind().String()),
			slog.Duration("duration", s.EndTime().Sub(s.StartTime())),
			slog.String("status", s.Status().Code.String()),
			slog.Group("attributes", attrs...))
	}
	return nil
}

// Shutdown stops further exports.
func (e *LogExporter) Shutdown(context.Context) error {
	e.stopped.Store(true)
	return nil
}
