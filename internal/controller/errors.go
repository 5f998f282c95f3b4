package controller

// ErrorAggregator keeps the single user-facing error message. The last write wins.
type ErrorAggregator struct {
	message string
}

func (a *ErrorAggregator) Set(message string) { a.message = message }

func (a *ErrorAggregator) Clear() { a.message = "" }

func (a *ErrorAggregator) Message() string { return a.message }

const (
	msgMissingUser             = "Please enter a user ID first."
	msgMissingUserForSession   = "Please enter a user ID before starting a session."
	msgInvalidUser             = "User ID must be a number."
	msgStartSessionFailed      = "Could not start session. Check backend logs."
	msgEndSessionFailed        = "Could not end session. Check backend logs."
	msgMissingSelection        = "Select a session before adding interruptions."
	msgMissingInterval         = "Please provide both start and end datetime."
	msgCreateInterruptionFail  = "Could not create interruption. Check data and backend logs."
	msgDemoFailed              = "Failed to create demo data. Check backend/API is running."
	msgInvalidInterruptionType = "Unknown interruption type."
)

var loadFailureMessages = map[View]string{
	ViewSummary:       "Failed to load summary.",
	ViewSessions:      "Failed to load sessions.",
	ViewTypeStats:     "Failed to load interruption type stats.",
	ViewHourStats:     "Failed to load productive-hours stats.",
	ViewWeeklyStats:   "Failed to load weekly pattern stats.",
	ViewPeakStats:     "Failed to load peak distraction time.",
	ViewInterruptions: "Failed to load interruptions.",
}

func loadFailureMessage(v View) string {
	if msg, ok := loadFailureMessages[v]; ok {
		return msg
	}
	return "Failed to load data."
}
