package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/emiliopalmerini/hyperfocus/internal/domain"
	"github.com/emiliopalmerini/hyperfocus/internal/ports"
)

const (
	sessionsFixture = `[
		{"id": 1, "user_id": 7, "start_time": "2026-10-14T09:00:00", "end_time": null},
		{"id": 2, "user_id": 7, "start_time": "2026-10-13T09:00:00", "end_time": "2026-10-13T10:30:00"}
	]`
	summaryFixture   = `{"user_id": 7, "range_days": 7, "total_sessions": 2, "total_interruptions": 3}`
	typeStatsFixture = `{"counts": {"phone": 2, "noise": 1}, "proportions": {"phone": 0.67, "noise": 0.33}, "total_interruptions": 3}`
	hoursFixture     = `{"hours": [{"hour": 9, "work_seconds": 3600, "interruptions": 2}]}`
	weeklyFixture    = `[{"weekday_index": 0, "weekday_name": "Monday", "work_seconds": 5400}]`
	peakFixture      = `{"peak_hour": 9, "peak_interruptions": 2, "total_interruptions": 3}`
	detailFixture    = `[{"id": 11, "session_id": 1, "type": "phone", "description": "call", "start_time": "2026-10-14T09:10:00", "end_time": "2026-10-14T09:12:00", "duration": 120}]`
)

var errBackend = &domain.FetchError{Status: 500, Path: "test"}

type response struct {
	body string
	err  error
}

// routedClient answers fetches and submits from fixed per-path responses.
// Unknown paths answer with a JSON null.
func routedClient(fetch, submit map[string]response) *MockClient {
	answer := func(routes map[string]response, path string) (json.RawMessage, error) {
		r, ok := routes[path]
		if !ok {
			return json.RawMessage("null"), nil
		}
		if r.err != nil {
			return nil, r.err
		}
		return json.RawMessage(r.body), nil
	}
	return &MockClient{
		FetchFunc: func(_ context.Context, path string, _ url.Values) (json.RawMessage, error) {
			return answer(fetch, path)
		},
		SubmitFunc: func(_ context.Context, _ string, path string, _ any) (json.RawMessage, error) {
			return answer(submit, path)
		},
	}
}

func userFixtures(userID string) map[string]response {
	return map[string]response{
		viewPath(ViewSummary, userID):     {body: summaryFixture},
		viewPath(ViewSessions, userID):    {body: sessionsFixture},
		viewPath(ViewTypeStats, userID):   {body: typeStatsFixture},
		viewPath(ViewHourStats, userID):   {body: hoursFixture},
		viewPath(ViewWeeklyStats, userID): {body: weeklyFixture},
		viewPath(ViewPeakStats, userID):   {body: peakFixture},
		sessionInterruptionsPath(1):       {body: detailFixture},
		sessionInterruptionsPath(2):       {body: `[]`},
	}
}

// loadedController returns a controller that has loaded user 7 and selected session 1.
func loadedController(t *testing.T, client *MockClient, opts ...Option) *Controller {
	t.Helper()
	ctrl := New(client, opts...)
	if err := ctrl.LoadAll(context.Background(), "7", domain.Range7d); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if err := ctrl.Select(context.Background(), 1); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	client.Reset()
	return ctrl
}

type recordingJournal struct {
	mu      sync.Mutex
	entries []ports.JournalEntry
	err     error
}

func (j *recordingJournal) Record(_ context.Context, e ports.JournalEntry) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, e)
	return j.err
}

func (j *recordingJournal) Recent(_ context.Context, limit int) ([]ports.JournalEntry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if limit > len(j.entries) {
		limit = len(j.entries)
	}
	return append([]ports.JournalEntry(nil), j.entries[len(j.entries)-limit:]...), nil
}

type recordingMetrics struct {
	mu        sync.Mutex
	fetches   map[string]int
	failures  map[string]int
	mutations map[string]int
	stale     int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		fetches:   map[string]int{},
		failures:  map[string]int{},
		mutations: map[string]int{},
	}
}

func (m *recordingMetrics) RecordFetch(_ context.Context, view string, _ time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetches[view]++
	if err != nil {
		m.failures[view]++
	}
}

func (m *recordingMetrics) RecordMutation(_ context.Context, kind, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mutations[kind+"/"+outcome]++
}

func (m *recordingMetrics) RecordStaleDiscard(context.Context, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stale++
}

func (m *recordingMetrics) Close(context.Context) error { return nil }

func assertEqual[T comparable](t *testing.T, name string, expected, actual T) {
	t.Helper()
	if expected != actual {
		t.Errorf("%s: expected %v, got %v", name, expected, actual)
	}
}

func assertValidation(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected a validation error, got nil")
	}
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %T: %v", err, err)
	}
}
