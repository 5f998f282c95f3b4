package tui

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emiliopalmerini/hyperfocus/internal/controller"
	"github.com/emiliopalmerini/hyperfocus/internal/domain"
)

var fixtures = map[string]string{
	"/users/7/stats/summary":               `{"user_id": 7, "total_sessions": 2, "total_interruptions": 1}`,
	"/sessions/user/7":                     `[{"id": 1, "user_id": 7, "start_time": "2026-10-14T09:00:00", "end_time": null}, {"id": 2, "user_id": 7, "start_time": "2026-10-13T09:00:00", "end_time": "2026-10-13T10:00:00"}]`,
	"/users/7/stats/interruption-types":    `{"counts": {"phone": 1}, "proportions": {"phone": 1}, "total_interruptions": 1}`,
	"/users/7/stats/productive-hours":      `[]`,
	"/users/7/stats/weekly-pattern":        `[]`,
	"/users/7/stats/peak-distraction-time": `{"peak_hour": null, "peak_interruptions": 0, "total_interruptions": 0}`,
	"/interruptions/session/1":             `[]`,
	"/interruptions/session/2":             `[{"id": 5, "session_id": 2, "type": "noise", "description": "drill", "start_time": "2026-10-13T09:10:00", "end_time": "2026-10-13T09:15:00", "duration": 300}]`,
}

func newClient() *controller.MockClient {
	return &controller.MockClient{
		FetchFunc: func(_ context.Context, path string, _ url.Values) (json.RawMessage, error) {
			if body, ok := fixtures[path]; ok {
				return json.RawMessage(body), nil
			}
			return nil, &domain.FetchError{Status: 404, Path: path}
		},
		SubmitFunc: func(context.Context, string, string, any) (json.RawMessage, error) {
			return json.RawMessage(`{"id": 3, "user_id": 7}`), nil
		},
	}
}

func newLoadedModel(t *testing.T, client *controller.MockClient, opts ...Option) *Model {
	t.Helper()
	ctrl := controller.New(client)
	if err := ctrl.LoadAll(context.Background(), "7", domain.Range7d); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	client.Reset()
	opts = append([]Option{WithClock(func() time.Time {
		return time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	})}, opts...)
	return NewModel(ctrl, controller.NewCoordinator(ctrl), opts...)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends msg and drains the resulting command synchronously.
func press(t *testing.T, m *Model, msg tea.Msg) *Model {
	t.Helper()
	_, cmd := m.Update(msg)
	if cmd == nil {
		return m
	}
	out := cmd()
	if done, ok := out.(opDoneMsg); ok {
		m.Update(done)
	}
	return m
}

func TestCursorMovement(t *testing.T) {
	m := newLoadedModel(t, newClient())

	tests := []struct {
		key  string
		want int
	}{
		{"k", 0},
		{"j", 1},
		{"j", 1},
		{"k", 0},
	}
	for _, tt := range tests {
		m.Update(keyRunes(tt.key))
		if m.cursor != tt.want {
			t.Errorf("after %q: expected cursor %d, got %d", tt.key, tt.want, m.cursor)
		}
	}
}

func TestEnterSelectsSessionUnderCursor(t *testing.T) {
	client := newClient()
	m := newLoadedModel(t, client)

	m.Update(keyRunes("j"))
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.snap.SelectedSessionID == nil || *m.snap.SelectedSessionID != 2 {
		t.Fatalf("expected session 2 selected, got %v", m.snap.SelectedSessionID)
	}
	if client.CallCount("/interruptions/session/2") != 1 {
		t.Errorf("expected one detail fetch, got %d", client.CallCount("/interruptions/session/2"))
	}
	if !strings.Contains(m.View(), "drill") {
		t.Error("expected the detail to render")
	}
}

func TestEndOnlyForActiveSession(t *testing.T) {
	client := newClient()
	m := newLoadedModel(t, client)

	m.Update(keyRunes("j"))
	if _, cmd := m.Update(keyRunes("e")); cmd != nil {
		t.Error("ending a finished session should be a no-op")
	}

	m.Update(keyRunes("k"))
	press(t, m, keyRunes("e"))
	if client.CallCount("/sessions/1/end") != 1 {
		t.Errorf("expected one end submit, got %d", client.CallCount("/sessions/1/end"))
	}
}

func TestRangeCycles(t *testing.T) {
	client := newClient()
	m := newLoadedModel(t, client)

	press(t, m, keyRunes("t"))
	if m.snap.Range != domain.Range30d {
		t.Errorf("expected 30d, got %s", m.snap.Range)
	}
	for _, c := range client.Calls() {
		if c.Path != "/sessions/user/7" && c.Query.Get("range") != "30d" {
			t.Errorf("%s fetched with range %q", c.Path, c.Query.Get("range"))
		}
	}
}

func TestNextRange(t *testing.T) {
	tests := []struct {
		in, want domain.Range
	}{
		{domain.Range7d, domain.Range30d},
		{domain.Range30d, domain.Range90d},
		{domain.Range90d, domain.Range7d},
		{"", domain.DefaultRange},
	}
	for _, tt := range tests {
		if got := nextRange(tt.in); got != tt.want {
			t.Errorf("nextRange(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBusyIgnoresMutations(t *testing.T) {
	m := newLoadedModel(t, newClient())

	_, first := m.Update(keyRunes("s"))
	if first == nil {
		t.Fatal("expected a start command")
	}
	if _, second := m.Update(keyRunes("s")); second != nil {
		t.Error("a second mutation while busy should be ignored")
	}
	if !strings.Contains(m.View(), "start session...") {
		t.Error("expected the busy indicator")
	}
}

func TestPersistRunsAfterOperation(t *testing.T) {
	persisted := 0
	m := newLoadedModel(t, newClient(), WithPersist(func(context.Context) error {
		persisted++
		return nil
	}))

	press(t, m, keyRunes("r"))
	if persisted != 1 {
		t.Errorf("expected one persist call, got %d", persisted)
	}
	if m.busy != "" {
		t.Errorf("expected busy cleared, got %q", m.busy)
	}
}

func TestViewWithoutUser(t *testing.T) {
	ctrl := controller.New(newClient())
	m := NewModel(ctrl, controller.NewCoordinator(ctrl))

	view := m.View()
	if !strings.Contains(view, "No active user") {
		t.Error("expected the empty-state hint")
	}
	if _, cmd := m.Update(keyRunes("r")); cmd != nil {
		t.Error("reload without a user should be a no-op")
	}
}

func TestQuit(t *testing.T) {
	m := newLoadedModel(t, newClient())
	_, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
