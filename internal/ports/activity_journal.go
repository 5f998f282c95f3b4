package ports

import (
	"context"
	"time"
)

// JournalEntry records the outcome of one mutating action.
type JournalEntry struct {
	ID        string
	Kind      string
	Outcome   string
	UserID    string
	SessionID *int64
	Message   string
	CreatedAt time.Time
}

// ActivityJournal stores mutation outcomes for later inspection.
type ActivityJournal interface {
	Record(ctx context.Context, e JournalEntry) error
	Recent(ctx context.Context, limit int) ([]JournalEntry, error)
}
