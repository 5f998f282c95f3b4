package ports

import (
	"context"
	"time"
)

// SyncMetrics records controller activity to an external observability system.
type SyncMetrics interface {
	// RecordFetch records one view fetch and whether it failed.
	RecordFetch(ctx context.Context, view string, elapsed time.Duration, err error)
	// RecordMutation records the terminal outcome of a mutating action.
	RecordMutation(ctx context.Context, kind, outcome string)
	// RecordStaleDiscard counts a response dropped because its selection changed.
	RecordStaleDiscard(ctx context.Context, view string)
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}
