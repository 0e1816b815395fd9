// Package tracing configures the OpenTelemetry tracer provider used for
// HTTP request spans. Finished spans are written to the structured logger
// at DEBUG; there is no remote collector.
package tracing
