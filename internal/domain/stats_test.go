package domain

import (
	"math"
	"testing"
)

func TestInterruptionTypeStats_Consistent(t *testing.T) {
	tests := []struct {
		name     string
		stats    InterruptionTypeStats
		expected bool
	}{
		{
			name: "matching keys and sum",
			stats: InterruptionTypeStats{
				Counts:             map[string]int64{"phone": 2, "noise": 1},
				Proportions:        map[string]float64{"phone": 2.0 / 3, "noise": 1.0 / 3},
				TotalInterruptions: 3,
			},
			expected: true,
		},
		{
			name:     "empty",
			stats:    InterruptionTypeStats{},
			expected: true,
		},
		{
			name: "key missing from proportions",
			stats: InterruptionTypeStats{
				Counts:             map[string]int64{"phone": 1, "self": 1},
				Proportions:        map[string]float64{"phone": 0.5, "noise": 0.5},
				TotalInterruptions: 2,
			},
			expected: false,
		},
		{
			name: "sum differs from total",
			stats: InterruptionTypeStats{
				Counts:             map[string]int64{"phone": 1},
				Proportions:        map[string]float64{"phone": 1},
				TotalInterruptions: 4,
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.Consistent(); got != tt.expected {
				t.Errorf("Consistent() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestInterruptionTypeStats_Share(t *testing.T) {
	stats := InterruptionTypeStats{
		Proportions: map[string]float64{"phone": 0.25, "self": math.NaN()},
	}
	assertFloatNear(t, "phone", 0.25, stats.Share(InterruptionPhone))
	assertFloatNear(t, "self", 0, stats.Share(InterruptionSelf))
	assertFloatNear(t, "family", 0, stats.Share(InterruptionFamily))
}

func TestPeakDistraction_HasPeak(t *testing.T) {
	hour := 14
	tests := []struct {
		name     string
		peak     PeakDistraction
		expected bool
	}{
		{"no interruptions", PeakDistraction{}, false},
		{"zero total with hour", PeakDistraction{PeakHour: &hour}, false},
		{"total without hour", PeakDistraction{TotalInterruptions: 3}, false},
		{"peak", PeakDistraction{PeakHour: &hour, PeakInterruptions: 2, TotalInterruptions: 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.peak.HasPeak(); got != tt.expected {
				t.Errorf("HasPeak() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSession_State(t *testing.T) {
	end := NewTimestamp(mustParse(t, "2024-03-01T10:00:00Z"))
	active := Session{ID: 1}
	finished := Session{ID: 2, EndTime: &end}

	if active.State() != SessionActive {
		t.Errorf("expected Active, got %s", active.State())
	}
	if finished.State() != SessionFinished {
		t.Errorf("expected Finished, got %s", finished.State())
	}
	if !ContainsSession([]Session{active, finished}, 2) {
		t.Error("expected session 2 to be found")
	}
	if ContainsSession([]Session{active}, 2) {
		t.Error("did not expect session 2 to be found")
	}
}

func assertFloatNear(t *testing.T, name string, expected, actual float64) {
	t.Helper()
	if math.Abs(expected-actual) > 0.0001 {
		t.Errorf("%s: expected %.6f, got %.6f", name, expected, actual)
	}
}
