package turso

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/emiliopalmerini/hyperfocus/internal/domain"
	"github.com/emiliopalmerini/hyperfocus/internal/infrastructure/database"
	"github.com/emiliopalmerini/hyperfocus/internal/ports"
)

// ContextRepository stores the single active context row.
type ContextRepository struct {
	db *sql.DB
}

func NewContextRepository(db *sql.DB) *ContextRepository {
	return &ContextRepository{db: db}
}

// Load returns the persisted context, or a default one when none was saved.
func (r *ContextRepository) Load(ctx context.Context) (ports.ActiveContext, error) {
	type row struct {
		userID   string
		rangeKey string
		selected sql.NullInt64
	}

	got, err := database.WithRetry(ctx, 2, func() (row, error) {
		var out row
		err := r.db.QueryRowContext(ctx,
			`SELECT user_id, range_key, selected_session_id FROM active_context WHERE id = 1`,
		).Scan(&out.userID, &out.rangeKey, &out.selected)
		return out, err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return ports.ActiveContext{Range: domain.DefaultRange}, nil
	}
	if err != nil {
		return ports.ActiveContext{}, fmt.Errorf("failed to load active context: %w", err)
	}

	rng, err := domain.ParseRange(got.rangeKey)
	if err != nil {
		rng = domain.DefaultRange
	}
	ac := ports.ActiveContext{UserID: got.userID, Range: rng}
	if got.selected.Valid {
		id := got.selected.Int64
		ac.SelectedSessionID = &id
	}
	return ac, nil
}

func (r *ContextRepository) Save(ctx context.Context, ac ports.ActiveContext) error {
	rng := ac.Range
	if rng == "" {
		rng = domain.DefaultRange
	}
	var selected sql.NullInt64
	if ac.SelectedSessionID != nil {
		selected = sql.NullInt64{Int64: *ac.SelectedSessionID, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO active_context (id, user_id, range_key, selected_session_id, updated_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			user_id = excluded.user_id,
			range_key = excluded.range_key,
			selected_session_id = excluded.selected_session_id,
			updated_at = excluded.updated_at
	`, ac.UserID, string(rng), selected, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save active context: %w", err)
	}
	return nil
}
