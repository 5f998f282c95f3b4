package templates

import (
	"bytes"
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"github.com/emiliopalmerini/hyperfocus/internal/controller"
	"github.com/emiliopalmerini/hyperfocus/internal/domain"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()

	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return buf.String()
}

func loadedData() DashboardData {
	start := domain.NewTimestamp(time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC))
	end := domain.NewTimestamp(time.Date(2026, 10, 13, 10, 0, 0, 0, time.UTC))
	peak := 9

	var snap controller.Snapshot
	snap.UserID = "7"
	snap.Range = domain.Range30d
	snap.Draft = controller.InterruptionDraft{Type: domain.InterruptionNoise}
	snap.Views.Sessions.Set([]domain.Session{
		{ID: 1, StartTime: start},
		{ID: 2, StartTime: domain.NewTimestamp(end.Add(-time.Hour)), EndTime: &end},
	})
	snap.Views.TypeStats.Set(domain.InterruptionTypeStats{
		Counts:             map[string]int64{"noise": 1, "phone": 2},
		Proportions:        map[string]float64{"noise": 0.25, "phone": 0.75},
		TotalInterruptions: 3,
	})
	snap.Views.PeakStats.Set(domain.PeakDistraction{PeakHour: &peak, PeakInterruptions: 2, TotalInterruptions: 3})
	snap.Views.HourStats.Set([]domain.ProductiveHour{})

	return DashboardData{
		Snapshot: snap,
		Now:      start.Add(30 * time.Minute),
		Location: time.UTC,
	}
}

func TestDashboard(t *testing.T) {
	selected := int64(1)

	tests := []struct {
		name    string
		data    func() DashboardData
		want    []string
		notWant []string
	}{
		{
			name:    "no user",
			data:    func() DashboardData { return DashboardData{} },
			want:    []string{`<div id="dashboard">`, "Enter a user ID or seed demo data to start."},
			notWant: []string{`id="sessions"`, "Start session"},
		},
		{
			name: "error banner escaped",
			data: func() DashboardData {
				return DashboardData{Snapshot: controller.Snapshot{Error: "<script>x</script>"}}
			},
			want:    []string{`<div class="banner" role="alert">&lt;script&gt;x&lt;/script&gt;</div>`},
			notWant: []string{"<script>x</script>"},
		},
		{
			name: "loading indicator",
			data: func() DashboardData {
				return DashboardData{Snapshot: controller.Snapshot{Loading: true}}
			},
			want: []string{`<span class="loading">Loading…</span>`},
		},
		{
			name: "loaded dashboard",
			data: loadedData,
			want: []string{
				`<option value="30d" selected>Last 30 days</option>`,
				`<option value="7d">`,
				`value="7"`,
				"Start session",
				`<td class="active">Active</td>`,
				"<td>Finished</td>",
				`action="/sessions/1/end"`,
				`action="/sessions/2/select"`,
				"<td>30m 00s</td>",
				"<td>2026-10-13 10:00</td>",
				"<td>75%</td>",
				"<strong>09:00</strong> 2 of 3 interruptions",
				"No work recorded",
				`<section id="summary"><h2>Last 30 days</h2><p class="muted">Unavailable</p></section>`,
			},
			notWant: []string{
				`action="/sessions/2/end"`,
				`<tr class="selected">`,
				`id="interruptions"`,
			},
		},
		{
			name: "selected session",
			data: func() DashboardData {
				d := loadedData()
				d.Snapshot.SelectedSessionID = &selected
				d.Snapshot.Views.Interruptions.Set([]domain.Interruption{{
					Type:        domain.InterruptionPhone,
					Description: `"urgent" & late`,
					StartTime:   domain.NewTimestamp(time.Date(2026, 10, 14, 9, 10, 0, 0, time.UTC)),
					EndTime:     domain.NewTimestamp(time.Date(2026, 10, 14, 9, 12, 0, 0, time.UTC)),
					Duration:    120,
				}})
				d.Snapshot.Draft.Description = `say "hi"`
				return d
			},
			want: []string{
				`<tr class="selected">`,
				"<h2>Interruptions for session 1</h2>",
				"<td>09:10</td><td>09:12</td><td>2m 00s</td>",
				"<td>&#34;urgent&#34; &amp; late</td>",
				`<option value="noise" selected>noise</option>`,
				`value="say &#34;hi&#34;"`,
				`action="/interruptions"`,
			},
		},
		{
			name: "selected session without interruptions",
			data: func() DashboardData {
				d := loadedData()
				d.Snapshot.SelectedSessionID = &selected
				d.Snapshot.Views.Interruptions.Set(nil)
				return d
			},
			want: []string{"None recorded", "Log interruption"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := render(t, Dashboard(tt.data()))
			for _, want := range tt.want {
				if !strings.Contains(body, want) {
					t.Errorf("expected output to contain %q\n%s", want, body)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(body, notWant) {
					t.Errorf("expected output not to contain %q", notWant)
				}
			}
		})
	}
}

func TestPage_WrapsDashboard(t *testing.T) {
	body := render(t, Page(DashboardData{}))

	for _, want := range []string{
		"<!doctype html>",
		"<title>HyperFocus</title>",
		`<script src="https://unpkg.com/htmx.org@1.9.12"></script>`,
		`<main><div id="dashboard">`,
		"</main></body></html>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected page to contain %q", want)
		}
	}
}

func TestRender_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	if err := Dashboard(loadedData()).Render(ctx, &buf); err == nil {
		t.Error("expected an error for a canceled context")
	}
}

func TestSortedByCount(t *testing.T) {
	tests := []struct {
		name   string
		counts map[string]int64
		want   []string
	}{
		{name: "empty", counts: nil, want: []string{}},
		{name: "by count", counts: map[string]int64{"noise": 1, "phone": 3, "self": 2}, want: []string{"phone", "self", "noise"}},
		{name: "ties by name", counts: map[string]int64{"self": 1, "family": 1, "phone": 4}, want: []string{"phone", "family", "self"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sortedByCount(tt.counts); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSummaryRows(t *testing.T) {
	rows := summaryRows(domain.StatsSummary{
		TotalSessions:                      4,
		TotalInterruptions:                 6,
		TotalTimeWorkedSeconds:             7200,
		TotalTimeLostSeconds:               900,
		EffectiveTimeSeconds:               6300,
		AverageInterruptionDurationSeconds: 150.6,
		InterruptionsPerHour:               3,
	})

	want := []statRow{
		{"Sessions", "4"},
		{"Interruptions", "6"},
		{"Time worked", "2h 00m"},
		{"Time lost", "15m 00s"},
		{"Effective time", "1h 45m"},
		{"Avg interruption", "2m 30s"},
		{"Interruptions/hour", "3.0"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("expected %v, got %v", want, rows)
	}
}

func TestEndTime(t *testing.T) {
	end := domain.NewTimestamp(time.Date(2026, 10, 14, 17, 5, 0, 0, time.UTC))

	tests := []struct {
		name    string
		session domain.Session
		want    string
	}{
		{name: "active", session: domain.Session{ID: 1}, want: "-"},
		{name: "finished", session: domain.Session{ID: 1, EndTime: &end}, want: "2026-10-14 17:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := endTime(tt.session, time.UTC); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
