package turso_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/emiliopalmerini/hyperfocus/internal/adapters/turso"
	"github.com/emiliopalmerini/hyperfocus/internal/ports"
)

func TestOpen_MigratesLocalFile(t *testing.T) {
	ctx := context.Background()
	url := "file:" + filepath.Join(t.TempDir(), "state", "hyperfocus.db")

	repos, err := turso.Open(ctx, url, "")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := repos.Context.Save(ctx, ports.ActiveContext{UserID: "3"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := repos.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := turso.Open(ctx, url, "")
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	ac, err := reopened.Context.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ac.UserID != "3" {
		t.Errorf("expected persisted user 3, got %q", ac.UserID)
	}
}
