package domain

import "math"

// StatsSummary holds aggregate counters over a range. Replaced wholesale on every fetch.
type StatsSummary struct {
	UserID                             int64   `json:"user_id"`
	RangeDays                          int64   `json:"range_days"`
	TotalSessions                      int64   `json:"total_sessions"`
	TotalInterruptions                 int64   `json:"total_interruptions"`
	TotalTimeWorkedSeconds             int64   `json:"total_time_worked_seconds"`
	TotalTimeLostSeconds               int64   `json:"total_time_lost_seconds"`
	EffectiveTimeSeconds               int64   `json:"effective_time_seconds"`
	AverageInterruptionDurationSeconds float64 `json:"average_interruption_duration_seconds"`
	InterruptionsPerHour               float64 `json:"interruptions_per_hour"`
}

// InterruptionTypeStats holds per-type counts and proportions.
type InterruptionTypeStats struct {
	Counts             map[string]int64   `json:"counts"`
	Proportions        map[string]float64 `json:"proportions"`
	TotalInterruptions int64              `json:"total_interruptions"`
}

// Consistent reports whether counts and proportions share the same keys
// and the counts sum to TotalInterruptions.
func (s InterruptionTypeStats) Consistent() bool {
	if len(s.Counts) != len(s.Proportions) {
		return false
	}
	var sum int64
	for k, v := range s.Counts {
		if _, ok := s.Proportions[k]; !ok {
			return false
		}
		sum += v
	}
	return sum == s.TotalInterruptions
}

// Share returns the proportion for t, or 0 when t has no entry.
func (s InterruptionTypeStats) Share(t InterruptionType) float64 {
	p, ok := s.Proportions[string(t)]
	if !ok || math.IsNaN(p) {
		return 0
	}
	return p
}

// ProductiveHour is one hour-of-day bucket.
type ProductiveHour struct {
	Hour                 int     `json:"hour"`
	WorkSeconds          int64   `json:"work_seconds"`
	Interruptions        int64   `json:"interruptions"`
	InterruptionsPerHour float64 `json:"interruptions_per_hour"`
}

// WeekdayPattern is one weekday bucket; 0 is Monday.
type WeekdayPattern struct {
	WeekdayIndex         int    `json:"weekday_index"`
	WeekdayName          string `json:"weekday_name"`
	WorkSeconds          int64  `json:"work_seconds"`
	TimeLostSeconds      int64  `json:"time_lost_seconds"`
	EffectiveTimeSeconds int64  `json:"effective_time_seconds"`
	Interruptions        int64  `json:"interruptions"`
}

// PeakDistraction names the hour with the most interruptions.
type PeakDistraction struct {
	PeakHour           *int  `json:"peak_hour"`
	PeakInterruptions  int64 `json:"peak_interruptions"`
	TotalInterruptions int64 `json:"total_interruptions"`
}

// HasPeak is false when there were no interruptions in the range.
func (p PeakDistraction) HasPeak() bool {
	return p.TotalInterruptions > 0 && p.PeakHour != nil
}
