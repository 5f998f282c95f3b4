package turso_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/emiliopalmerini/hyperfocus/internal/adapters/turso"
	"github.com/emiliopalmerini/hyperfocus/internal/ports"
)

// TestRepositories_AgainstLibsqlServer runs the repositories against a real
// libsql-server container. Set HYPERFOCUS_TEST_CONTAINERS=1 to enable.
func TestRepositories_AgainstLibsqlServer(t *testing.T) {
	if os.Getenv("HYPERFOCUS_TEST_CONTAINERS") == "" {
		t.Skip("HYPERFOCUS_TEST_CONTAINERS not set")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "ghcr.io/tursodatabase/libsql-server:latest",
		ExposedPorts: []string{"8080/tcp"},
		WaitingFor:   wait.ForHTTP("/health").WithPort("8080/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start libsql-server container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "8080")
	if err != nil {
		t.Fatalf("Failed to get mapped port: %v", err)
	}

	repos, err := turso.Open(ctx, fmt.Sprintf("http://%s:%s", host, port.Port()), "")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer repos.Close()

	if err := repos.Journal.Record(ctx, ports.JournalEntry{Kind: "seed_demo", Outcome: "applied", UserID: "1"}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	entries, err := repos.Journal.Recent(ctx, 5)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Kind != "seed_demo" {
		t.Errorf("unexpected entries %+v", entries)
	}
}
