package domain

import "fmt"

// InterruptionType classifies what broke a focus session.
type InterruptionType string

const (
	InterruptionFamily     InterruptionType = "family"
	InterruptionPhone      InterruptionType = "phone"
	InterruptionNoise      InterruptionType = "noise"
	InterruptionSelf       InterruptionType = "self"
	InterruptionUrgentTask InterruptionType = "urgent_task"
	InterruptionUnknown    InterruptionType = "unknown"
)

// DefaultInterruptionType preselected in interruption forms.
const DefaultInterruptionType = InterruptionPhone

var interruptionTypes = []InterruptionType{
	InterruptionFamily,
	InterruptionPhone,
	InterruptionNoise,
	InterruptionSelf,
	InterruptionUrgentTask,
	InterruptionUnknown,
}

// InterruptionTypes returns every accepted type in display order.
func InterruptionTypes() []InterruptionType {
	out := make([]InterruptionType, len(interruptionTypes))
	copy(out, interruptionTypes)
	return out
}

// ParseInterruptionType validates s against the fixed enumeration.
func ParseInterruptionType(s string) (InterruptionType, error) {
	for _, t := range interruptionTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", &ValidationError{
		Field:   "type",
		Message: fmt.Sprintf("unknown interruption type %q", s),
	}
}

// Interruption is a timestamped event within a session.
// Duration is computed by the server in seconds and never sent by the client.
type Interruption struct {
	ID          int64            `json:"id"`
	UserID      int64            `json:"user_id"`
	SessionID   int64            `json:"session_id"`
	Type        InterruptionType `json:"type"`
	Description string           `json:"description"`
	StartTime   Timestamp        `json:"start_time"`
	EndTime     Timestamp        `json:"end_time"`
	Duration    int64            `json:"duration"`
	CreatedAt   Timestamp        `json:"created_at"`
}
