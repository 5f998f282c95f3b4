package turso

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/emiliopalmerini/hyperfocus/internal/ports"
)

const defaultJournalLimit = 20

// JournalRepository appends mutation outcomes to activity_journal.
type JournalRepository struct {
	db *sql.DB
}

func NewJournalRepository(db *sql.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

func (r *JournalRepository) Record(ctx context.Context, e ports.JournalEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	var sessionID sql.NullInt64
	if e.SessionID != nil {
		sessionID = sql.NullInt64{Int64: *e.SessionID, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO activity_journal (id, kind, outcome, user_id, session_id, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.Kind, e.Outcome, e.UserID, sessionID, e.Message, e.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to record journal entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (r *JournalRepository) Recent(ctx context.Context, limit int) ([]ports.JournalEntry, error) {
	if limit <= 0 {
		limit = defaultJournalLimit
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, outcome, user_id, session_id, message, created_at
		FROM activity_journal
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	var entries []ports.JournalEntry
	for rows.Next() {
		var (
			e         ports.JournalEntry
			sessionID sql.NullInt64
			createdAt string
		)
		if err := rows.Scan(&e.ID, &e.Kind, &e.Outcome, &e.UserID, &sessionID, &e.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		if sessionID.Valid {
			id := sessionID.Int64
			e.SessionID = &id
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
