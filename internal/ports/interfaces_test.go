package ports_test

import (
	"log/slog"
	"testing"

	"github.com/emiliopalmerini/hyperfocus/internal/adapters/api"
	"github.com/emiliopalmerini/hyperfocus/internal/adapters/otel"
	"github.com/emiliopalmerini/hyperfocus/internal/adapters/turso"
	"github.com/emiliopalmerini/hyperfocus/internal/logging"
	"github.com/emiliopalmerini/hyperfocus/internal/ports"
)

// Compile-time interface conformance checks.
// These verify that concrete adapters properly implement their port interfaces.

func TestResourceClientConformance(t *testing.T) {
	var _ ports.ResourceClient = (*api.Client)(nil)
}

func TestSyncMetricsConformance(t *testing.T) {
	var _ ports.SyncMetrics = (*otel.Exporter)(nil)
	var _ ports.SyncMetrics = (*otel.NoOpExporter)(nil)
}

func TestContextStoreConformance(t *testing.T) {
	var _ ports.ContextStore = (*turso.ContextRepository)(nil)
}

func TestActivityJournalConformance(t *testing.T) {
	var _ ports.ActivityJournal = (*turso.JournalRepository)(nil)
}

func TestLoggerConformance(t *testing.T) {
	var _ ports.Logger = (*slog.Logger)(nil)
	var _ ports.Logger = logging.Nop()
}
