package cli

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/url"
	"path/filepath"
	"testing"

	_ "github.com/tursodatabase/go-libsql"

	"github.com/emiliopalmerini/hyperfocus/internal/controller"
	"github.com/emiliopalmerini/hyperfocus/internal/domain"
	"github.com/emiliopalmerini/hyperfocus/internal/migrate"
)

var apiFixtures = map[string]string{
	"/users/7/stats/summary":               `{"user_id": 7, "range_days": 7, "total_sessions": 2, "total_interruptions": 1, "total_time_worked_seconds": 3720}`,
	"/sessions/user/7":                     `[{"id": 1, "user_id": 7, "start_time": "2026-10-14T09:00:00", "end_time": null}, {"id": 2, "user_id": 7, "start_time": "2026-10-13T09:00:00", "end_time": "2026-10-13T10:00:00"}]`,
	"/users/7/stats/interruption-types":    `{"counts": {"phone": 1}, "proportions": {"phone": 1}, "total_interruptions": 1}`,
	"/users/7/stats/productive-hours":      `{"hours": [{"hour": 9, "work_seconds": 3600, "interruptions": 1}]}`,
	"/users/7/stats/weekly-pattern":        `[{"weekday_index": 1, "weekday_name": "Tuesday", "work_seconds": 3600}]`,
	"/users/7/stats/peak-distraction-time": `{"peak_hour": 9, "peak_interruptions": 1, "total_interruptions": 1}`,
	"/interruptions/session/1":             `[{"id": 4, "session_id": 1, "type": "phone", "description": "recruiter", "start_time": "2026-10-14T09:10:00", "end_time": "2026-10-14T09:12:00", "duration": 120}]`,
	"/interruptions/session/2":             `[]`,
}

func fixtureClient() *controller.MockClient {
	return &controller.MockClient{
		FetchFunc: func(_ context.Context, path string, _ url.Values) (json.RawMessage, error) {
			if body, ok := apiFixtures[path]; ok {
				return json.RawMessage(body), nil
			}
			return nil, &domain.FetchError{Status: 404, Path: path}
		},
		SubmitFunc: func(_ context.Context, _ string, path string, _ any) (json.RawMessage, error) {
			if path == "/sessions/start" {
				return json.RawMessage(`{"id": 3, "user_id": 7, "start_time": "2026-10-14T11:00:00"}`), nil
			}
			return json.RawMessage(`{}`), nil
		},
	}
}

// testDB opens a migrated libsql database in a temp file so each test starts clean.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("libsql", "file:"+filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	if err := migrate.RunAll(context.Background(), db); err != nil {
		_ = db.Close()
		t.Fatalf("Failed to run migrations: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupCLI points the app at client and a fresh state database, with XDG
// directories and flags isolated to the test.
func setupCLI(t *testing.T, client *controller.MockClient) *sql.DB {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("HYPERFOCUS_OTEL_ENABLED", "false")

	db := testDB(t)
	testDBOverride = db
	testClientOverride = client
	resetFlags()
	t.Cleanup(func() {
		testDBOverride = nil
		testClientOverride = nil
		resetFlags()
	})
	return db
}

func resetFlags() {
	configPath = ""
	apiURLFlag = ""
	logLevelArg = "error"
	loadRange = ""
	historyLimit = 20
	interruptionType = string(domain.DefaultInterruptionType)
	interruptionDescription = ""
	interruptionStart = ""
	interruptionEnd = ""
	serveAddr = ""
	statsRange = ""
}

// runCLI executes the root command with args and returns its combined output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}
