package util

import (
	"fmt"
	"math"
	"time"

	"github.com/emiliopalmerini/hyperfocus/internal/domain"
)

// FormatDuration renders seconds as "1h 02m", "12m 05s" or "45s".
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %02dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm %02ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// FormatDateTime formats a timestamp in loc as 2006-01-02 15:04, or "-" when unset.
func FormatDateTime(ts domain.Timestamp, loc *time.Location) string {
	if ts.IsZero() {
		return "-"
	}
	if loc == nil {
		loc = time.Local
	}
	return ts.In(loc).Format("2006-01-02 15:04")
}

// FormatClock formats a timestamp in loc as 15:04.
func FormatClock(ts domain.Timestamp, loc *time.Location) string {
	if ts.IsZero() {
		return "-"
	}
	if loc == nil {
		loc = time.Local
	}
	return ts.In(loc).Format("15:04")
}

// FormatPercent renders a 0..1 share as "42%". NaN renders as "0%".
func FormatPercent(share float64) string {
	if math.IsNaN(share) || math.IsInf(share, 0) {
		return "0%"
	}
	return fmt.Sprintf("%.0f%%", share*100)
}

// FormatRate renders a per-hour rate with one decimal.
func FormatRate(perHour float64) string {
	if math.IsNaN(perHour) || math.IsInf(perHour, 0) {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", perHour)
}

// FormatHour renders an hour of day as "09:00".
func FormatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// SessionDuration returns the elapsed seconds of s, measured to now while it is active.
func SessionDuration(s domain.Session, now time.Time) int64 {
	end := now
	if s.EndTime != nil && !s.EndTime.IsZero() {
		end = s.EndTime.Time
	}
	if s.StartTime.IsZero() || end.Before(s.StartTime.Time) {
		return 0
	}
	return int64(end.Sub(s.StartTime.Time).Seconds())
}
