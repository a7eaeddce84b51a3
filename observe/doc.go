// Package observe bootstraps optional OpenTelemetry export for
// dataferry. Telemetry is disabled by default; when enabled, metrics
// and traces are pushed to an OTLP HTTP endpoint. Setup returns a
// shutdown function that flushes both providers, which matters for a
// short-lived batch process whose run can finish well inside a single
// export interval.
package observe
