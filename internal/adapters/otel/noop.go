package otel

import (
	"context"
	"time"
)

// NoOpExporter is a metrics exporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) RecordFetch(context.Context, string, time.Duration, error) {}

func (e *NoOpExporter) RecordMutation(context.Context, string, string) {}

func (e *NoOpExporter) RecordStaleDiscard(context.Context, string) {}

func (e *NoOpExporter) Close(context.Context) error {
	return nil
}
