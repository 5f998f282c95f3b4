package ports

import (
	"context"

	"github.com/emiliopalmerini/hyperfocus/internal/domain"
)

// ActiveContext is the dashboard key persisted between CLI invocations.
type ActiveContext struct {
	UserID            string
	Range             domain.Range
	SelectedSessionID *int64
}

// ContextStore persists the active (user, range, selection) context.
type ContextStore interface {
	Load(ctx context.Context) (ActiveContext, error)
	Save(ctx context.Context, ac ActiveContext) error
}
