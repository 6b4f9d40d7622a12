// Package otel provides an OpenTelemetry observer plugin for the shutdown library.
// It emits span events (trigger, complete, delay acquire/release) with low overhead.
package otel
