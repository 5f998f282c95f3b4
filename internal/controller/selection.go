package controller

import "github.com/emiliopalmerini/hyperfocus/internal/domain"

// Selection tracks the selected session and the tag of the latest detail request.
// A detail response is only applied when its (id, tag) pair is still current.
type Selection struct {
	selected *int64
	tag      uint64
}

func (s *Selection) Current() (int64, bool) {
	if s.selected == nil {
		return 0, false
	}
	return *s.selected, true
}

// choose marks id as selected, drops the previous session's detail and returns a fresh tag.
func (s *Selection) choose(id int64, views *ViewStore) uint64 {
	s.selected = &id
	s.tag++
	views.Interruptions.Clear()
	return s.tag
}

// issue returns a fresh tag for a detail refresh without touching the view.
// Any older in-flight detail request becomes stale.
func (s *Selection) issue() uint64 {
	s.tag++
	return s.tag
}

func (s *Selection) accepts(id int64, tag uint64) bool {
	return s.selected != nil && *s.selected == id && s.tag == tag
}

func (s *Selection) clear(views *ViewStore) {
	s.selected = nil
	s.tag++
	views.Interruptions.Clear()
}

// reconcile clears the selection if it no longer names a session in the list.
// It reports whether the selection was cleared.
func (s *Selection) reconcile(sessions []domain.Session, views *ViewStore) bool {
	if s.selected == nil {
		return false
	}
	if domain.ContainsSession(sessions, *s.selected) {
		return false
	}
	s.clear(views)
	return true
}
