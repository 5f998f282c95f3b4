package domain

// SessionState is derived from whether a session has an end time.
type SessionState string

const (
	SessionActive   SessionState = "Active"
	SessionFinished SessionState = "Finished"
)

// User is created by demo seeding or external registration and never mutated here.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt Timestamp `json:"created_at"`
}

// Session is a bounded focus-work period. EndTime is nil while it is active.
type Session struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	StartTime Timestamp  `json:"start_time"`
	EndTime   *Timestamp `json:"end_time,omitempty"`
	CreatedAt Timestamp  `json:"created_at"`
}

func (s Session) State() SessionState {
	if s.EndTime == nil {
		return SessionActive
	}
	return SessionFinished
}

func (s Session) IsActive() bool {
	return s.EndTime == nil
}

// ContainsSession reports whether id belongs to an element of sessions.
func ContainsSession(sessions []Session, id int64) bool {
	for _, s := range sessions {
		if s.ID == id {
			return true
		}
	}
	return false
}
