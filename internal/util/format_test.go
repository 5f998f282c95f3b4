package util

import (
	"math"
	"testing"
	"time"

	"github.com/emiliopalmerini/hyperfocus/internal/domain"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0s"},
		{45, "45s"},
		{725, "12m 05s"},
		{3720, "1h 02m"},
		{-5, "0s"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.666); got != "67%" {
		t.Errorf("expected 67%%, got %q", got)
	}
	if got := FormatPercent(math.NaN()); got != "0%" {
		t.Errorf("expected 0%% for NaN, got %q", got)
	}
}

func TestFormatDateTime(t *testing.T) {
	ts := domain.NewTimestamp(time.Date(2026, 10, 14, 9, 5, 0, 0, time.UTC))
	if got := FormatDateTime(ts, time.UTC); got != "2026-10-14 09:05" {
		t.Errorf("unexpected %q", got)
	}
	if got := FormatDateTime(domain.Timestamp{}, time.UTC); got != "-" {
		t.Errorf("expected - for zero time, got %q", got)
	}
}

func TestSessionDuration(t *testing.T) {
	start := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	end := domain.NewTimestamp(start.Add(90 * time.Minute))
	now := start.Add(2 * time.Hour)

	finished := domain.Session{StartTime: domain.NewTimestamp(start), EndTime: &end}
	if got := SessionDuration(finished, now); got != 5400 {
		t.Errorf("finished: expected 5400, got %d", got)
	}
	active := domain.Session{StartTime: domain.NewTimestamp(start)}
	if got := SessionDuration(active, now); got != 7200 {
		t.Errorf("active: expected 7200, got %d", got)
	}
}
