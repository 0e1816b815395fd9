package tracing

import (
	"context"
	"testing"

	"github.com/phrazzld/tareas-api/internal/config"
	"github.com/phrazzld/tareas-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func TestSetupDisabled(t *testing.T) {
	l, buf := logger.NewTestLogger()
	tp, shutdown := Setup(config.TracingConfig{Enabled: false}, l)

	_, span := tp.Tracer("test").Start(context.Background(), "noop")
	span.End()

	assert.False(t, span.SpanContext().IsValid(), "disabled tracing should not mint trace ids")
	assert.NoError(t, shutdown(context.Background()))
	assert.Empty(t, buf.String())
}

func TestSetupEnabledExportsToLog(t *testing.T) {
	l, buf := logger.NewTestLogger()
	tp, shutdown := Setup(config.TracingConfig{Enabled: true, SampleRatio: 1}, l)

	_, span := tp.Tracer("test").Start(context.Background(), "GET /tareas",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.Int("http.response.status_code", 200)))
	span.SetStatus(codes.Error, "boom")
	span.End()

	sc := span.SpanContext()
	require.True(t, sc.IsValid())
	assert.True(t, sc.IsSampled())

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "span finished", entry["msg"])
	assert.Equal(t, "GET /tareas", entry["span_name"])
	assert.Equal(t, sc.TraceID().String(), entry["trace_id"])
	assert.Equal(t, "server", entry["span_kind"])
	assert.Equal(t, "Error", entry["status"])

	attrs, ok := entry["attributes"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 200, attrs["http.response.status_code"])

	require.NoError(t, shutdown(context.Background()))
}

func TestSetupZeroRatioStillMintsTraceIDs(t *testing.T) {
	l, buf := logger.NewTestLogger()
	tp, shutdown := Setup(config.TracingConfig{Enabled: true, SampleRatio: 0}, l)
	defer func() { _ = shutdown(context.Background()) }()

	_, span := tp.Tracer("test").Start(context.Background(), "unsampled")
	span.End()

	assert.True(t, span.SpanContext().HasTraceID())
	assert.False(t, span.SpanContext().IsSampled())
	assert.Empty(t, buf.String(), "unsampled spans are not exported")
}

func TestLogExporterShutdown(t *testing.T) {
	l, buf := logger.NewTestLogger()
	e := NewLogExporter(l)

	require.NoError(t, e.Shutdown(context.Background()))
	assert.NoError(t, e.ExportSpans(context.Background(), nil))
	assert.Empty(t, buf.String())
}
