package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emiliopalmerini/hyperfocus/internal/adapters/turso"
	"github.com/emiliopalmerini/hyperfocus/internal/controller"
	"github.com/emiliopalmerini/hyperfocus/internal/domain"
)

func TestLoad_RendersAndPersists(t *testing.T) {
	db := setupCLI(t, fixtureClient())

	out, err := runCLI(t, "load", "7", "--range", "30d")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	for _, want := range []string{"User 7, Last 30 days", "Summary", "1h 02m", "Tuesday", "09:00 (1 of 1 interruptions)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\n%s", want, out)
		}
	}

	ac, err := turso.NewRepositories(db).Context.Load(context.Background())
	if err != nil {
		t.Fatalf("Load context: %v", err)
	}
	if ac.UserID != "7" || ac.Range != domain.Range30d {
		t.Errorf("expected persisted user 7 over 30d, got %+v", ac)
	}
}

func TestCommands_RequireActiveUser(t *testing.T) {
	for _, args := range [][]string{
		{"stats"},
		{"sessions", "list"},
		{"sessions", "start"},
		{"interruption", "list"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			client := fixtureClient()
			setupCLI(t, client)

			_, err := runCLI(t, args...)
			if err == nil || !strings.Contains(err.Error(), "no active user") {
				t.Fatalf("expected a no active user error, got %v", err)
			}
			if n := len(client.Calls()); n != 0 {
				t.Errorf("expected no API calls, got %d", n)
			}
		})
	}
}

func TestSelect_SurvivesInvocations(t *testing.T) {
	setupCLI(t, fixtureClient())

	if _, err := runCLI(t, "load", "7"); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	out, err := runCLI(t, "sessions", "select", "1")
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if !strings.Contains(out, "recruiter") {
		t.Errorf("expected the detail for session 1\n%s", out)
	}

	out, err = runCLI(t, "interruption", "list")
	if err != nil {
		t.Fatalf("interruption list failed: %v", err)
	}
	if !strings.Contains(out, "Interruptions for session 1") {
		t.Errorf("expected the resumed selection\n%s", out)
	}
}

func TestSelect_UnknownSession(t *testing.T) {
	setupCLI(t, fixtureClient())
	if _, err := runCLI(t, "load", "7"); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	_, err := runCLI(t, "sessions", "select", "42")
	if err == nil || !strings.Contains(err.Error(), "not in the sessions list") {
		t.Errorf("expected an unknown session error, got %v", err)
	}
}

func TestSessionsStart_RecordsHistory(t *testing.T) {
	client := fixtureClient()
	setupCLI(t, client)
	if _, err := runCLI(t, "load", "7"); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	client.Reset()

	out, err := runCLI(t, "sessions", "start")
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if !strings.Contains(out, "Session started") {
		t.Errorf("expected confirmation\n%s", out)
	}
	if client.CallCount("/sessions/start") != 1 {
		t.Errorf("expected one start submit, got %d", client.CallCount("/sessions/start"))
	}

	out, err = runCLI(t, "history")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(out, "start_session") || !strings.Contains(out, "applied") {
		t.Errorf("expected the start in history\n%s", out)
	}
}

func TestInterruptionAdd(t *testing.T) {
	client := fixtureClient()
	setupCLI(t, client)
	if _, err := runCLI(t, "load", "7"); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if _, err := runCLI(t, "sessions", "select", "1"); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	client.Reset()

	out, err := runCLI(t, "interruption", "add", "-t", "noise", "-d", "drill",
		"--start", "2026-10-14T09:30:00Z", "--end", "2026-10-14T09:40:00Z")
	if err != nil {
		t.Fatalf("interruption add failed: %v", err)
	}
	if !strings.Contains(out, "Logged noise interruption") {
		t.Errorf("expected confirmation\n%s", out)
	}

	var submitted bool
	for _, c := range client.Calls() {
		if c.Method != http.MethodPost || c.Path != "/interruptions/" {
			continue
		}
		submitted = true
		raw, err := json.Marshal(c.Body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		body := string(raw)
		for _, want := range []string{`"type":"noise"`, `"session_id":1`, `"user_id":7`, `"description":"drill"`} {
			if !strings.Contains(body, want) {
				t.Errorf("expected body to contain %s, got %s", want, body)
			}
		}
	}
	if !submitted {
		t.Error("expected an interruption submit")
	}
}

func TestInterruptionAdd_InvalidType(t *testing.T) {
	client := fixtureClient()
	setupCLI(t, client)

	_, err := runCLI(t, "interruption", "add", "-t", "meeting", "--start", "2026-10-14T09:30", "--end", "2026-10-14T09:40")
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	if len(client.Calls()) != 0 {
		t.Errorf("expected no API calls, got %d", len(client.Calls()))
	}
}

func TestDemo_AbortReturnsError(t *testing.T) {
	client := fixtureClient()
	client.SubmitFunc = func(_ context.Context, _ string, path string, _ any) (json.RawMessage, error) {
		return nil, &domain.FetchError{Status: http.StatusServiceUnavailable, Path: path}
	}
	db := setupCLI(t, client)

	if _, err := runCLI(t, "demo"); err == nil {
		t.Fatal("expected demo to fail")
	}
	ac, err := turso.NewRepositories(db).Context.Load(context.Background())
	if err != nil {
		t.Fatalf("Load context: %v", err)
	}
	if ac.UserID != "" {
		t.Errorf("aborted demo must not adopt a user, got %q", ac.UserID)
	}
}

func TestConfigShow_RedactsToken(t *testing.T) {
	setupCLI(t, fixtureClient())
	t.Setenv("HYPERFOCUS_DATABASE_AUTH_TOKEN", "secret-token")

	out, err := runCLI(t, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if strings.Contains(out, "secret-token") {
		t.Error("token leaked into output")
	}
	if !strings.Contains(out, "<redacted>") {
		t.Errorf("expected a redacted token\n%s", out)
	}
}

func TestConfigShow_ReadsFile(t *testing.T) {
	setupCLI(t, fixtureClient())
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api_url: http://focus.internal:9000\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(out, "http://focus.internal:9000") {
		t.Errorf("expected the file's api_url\n%s", out)
	}
}

func TestSessionToEnd(t *testing.T) {
	active := domain.Session{ID: 5}
	finished := domain.Session{ID: 4, EndTime: &domain.Timestamp{}}
	sel := int64(4)

	tests := []struct {
		name    string
		snap    controller.Snapshot
		args    []string
		want    int64
		wantErr bool
	}{
		{name: "explicit id", args: []string{"9"}, want: 9},
		{name: "invalid id", args: []string{"x"}, wantErr: true},
		{name: "selection wins", snap: snapWith(&sel, finished, active), want: 4},
		{name: "newest active", snap: snapWith(nil, finished, active), want: 5},
		{name: "nothing active", snap: snapWith(nil, finished), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sessionToEnd(tt.snap, tt.args)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected an error, got %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func snapWith(selected *int64, sessions ...domain.Session) controller.Snapshot {
	var snap controller.Snapshot
	snap.SelectedSessionID = selected
	snap.Views.Sessions.Set(sessions)
	return snap
}

func TestParseSessionID(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"12", 12, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := parseSessionID(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseSessionID(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("parseSessionID(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDisplayAddr(t *testing.T) {
	if got := displayAddr(":8080"); got != "localhost:8080" {
		t.Errorf("expected localhost:8080, got %s", got)
	}
	if got := displayAddr("127.0.0.1:9000"); got != "127.0.0.1:9000" {
		t.Errorf("expected the address unchanged, got %s", got)
	}
}
