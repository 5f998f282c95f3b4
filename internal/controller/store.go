package controller

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/emiliopalmerini/hyperfocus/internal/domain"
)

// Slot holds one view's value. Present is false until a fetch succeeds and
// again after a failed fetch or reset.
type Slot[T any] struct {
	Value   T
	Present bool
}

func (s *Slot[T]) Set(v T) {
	s.Value = v
	s.Present = true
}

func (s *Slot[T]) Clear() {
	var zero T
	s.Value = zero
	s.Present = false
}

// ViewStore is the client-side mirror of remote data.
type ViewStore struct {
	Summary       Slot[domain.StatsSummary]
	Sessions      Slot[[]domain.Session]
	TypeStats     Slot[domain.InterruptionTypeStats]
	HourStats     Slot[[]domain.ProductiveHour]
	WeeklyStats   Slot[[]domain.WeekdayPattern]
	PeakStats     Slot[domain.PeakDistraction]
	Interruptions Slot[[]domain.Interruption]
}

// Has reports whether the view currently holds a value.
func (s *ViewStore) Has(v View) bool {
	switch v {
	case ViewSummary:
		return s.Summary.Present
	case ViewSessions:
		return s.Sessions.Present
	case ViewTypeStats:
		return s.TypeStats.Present
	case ViewHourStats:
		return s.HourStats.Present
	case ViewWeeklyStats:
		return s.WeeklyStats.Present
	case ViewPeakStats:
		return s.PeakStats.Present
	case ViewInterruptions:
		return s.Interruptions.Present
	}
	return false
}

func (s *ViewStore) clear(v View) {
	switch v {
	case ViewSummary:
		s.Summary.Clear()
	case ViewSessions:
		s.Sessions.Clear()
	case ViewTypeStats:
		s.TypeStats.Clear()
	case ViewHourStats:
		s.HourStats.Clear()
	case ViewWeeklyStats:
		s.WeeklyStats.Clear()
	case ViewPeakStats:
		s.PeakStats.Clear()
	case ViewInterruptions:
		s.Interruptions.Clear()
	}
}

func (s *ViewStore) reset() {
	*s = ViewStore{}
}

// clone deep-copies the store so values handed to readers never alias
// controller state.
func (s *ViewStore) clone() ViewStore {
	out := *s
	out.Sessions.Value = cloneSessions(s.Sessions.Value)
	out.TypeStats.Value.Counts = maps.Clone(s.TypeStats.Value.Counts)
	out.TypeStats.Value.Proportions = maps.Clone(s.TypeStats.Value.Proportions)
	out.HourStats.Value = slices.Clone(s.HourStats.Value)
	out.WeeklyStats.Value = slices.Clone(s.WeeklyStats.Value)
	out.PeakStats.Value.PeakHour = clonePtr(s.PeakStats.Value.PeakHour)
	out.Interruptions.Value = slices.Clone(s.Interruptions.Value)
	return out
}

func cloneSessions(in []domain.Session) []domain.Session {
	out := slices.Clone(in)
	for i := range out {
		out[i].EndTime = clonePtr(out[i].EndTime)
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// decodeView parses a payload for v and returns the closure that stores it.
// Decoding happens outside the state lock; only the returned setter runs under it.
func decodeView(v View, raw json.RawMessage) (func(*ViewStore), error) {
	switch v {
	case ViewSummary:
		var summary domain.StatsSummary
		if err := decodeObject(raw, &summary); err != nil {
			return nil, err
		}
		return func(s *ViewStore) { s.Summary.Set(summary) }, nil
	case ViewSessions:
		sessions, err := decodeSequence[domain.Session](raw)
		if err != nil {
			return nil, err
		}
		return func(s *ViewStore) { s.Sessions.Set(sessions) }, nil
	case ViewTypeStats:
		var stats domain.InterruptionTypeStats
		if err := decodeObject(raw, &stats); err != nil {
			return nil, err
		}
		return func(s *ViewStore) { s.TypeStats.Set(stats) }, nil
	case ViewHourStats:
		hours, err := decodeSequence[domain.ProductiveHour](raw, hourStatsKeys...)
		if err != nil {
			return nil, err
		}
		return func(s *ViewStore) { s.HourStats.Set(hours) }, nil
	case ViewWeeklyStats:
		days, err := decodeSequence[domain.WeekdayPattern](raw, weeklyStatsKeys...)
		if err != nil {
			return nil, err
		}
		return func(s *ViewStore) { s.WeeklyStats.Set(days) }, nil
	case ViewPeakStats:
		var peak domain.PeakDistraction
		if err := decodeObject(raw, &peak); err != nil {
			return nil, err
		}
		return func(s *ViewStore) { s.PeakStats.Set(peak) }, nil
	case ViewInterruptions:
		list, err := decodeSequence[domain.Interruption](raw)
		if err != nil {
			return nil, err
		}
		return func(s *ViewStore) { s.Interruptions.Set(list) }, nil
	}
	return nil, fmt.Errorf("unknown view %q", v)
}

func decodeObject(raw json.RawMessage, dst any) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decoding object: %w", err)
	}
	return nil
}
