package turso

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/emiliopalmerini/hyperfocus/internal/infrastructure/database"
	"github.com/emiliopalmerini/hyperfocus/internal/migrate"
	"github.com/emiliopalmerini/hyperfocus/internal/ports"
)

// Repositories holds the local state stores as port interfaces.
type Repositories struct {
	Context ports.ContextStore
	Journal ports.ActivityJournal

	client *database.Client
}

// NewRepositories builds the repositories over an already migrated connection.
// The caller keeps ownership of db.
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Context: NewContextRepository(db),
		Journal: NewJournalRepository(db),
	}
}

// Open connects to the state database, applies pending migrations and builds the repositories.
func Open(ctx context.Context, url, authToken string) (*Repositories, error) {
	client, err := database.Open(url, database.Options{AuthToken: authToken, Ping: true})
	if err != nil {
		return nil, err
	}
	if err := migrate.RunAll(ctx, client.DB); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to migrate state database: %w", err)
	}
	repos := NewRepositories(client.DB)
	repos.client = client
	return repos, nil
}

// DB returns the owned connection, or nil when the caller supplied it.
func (r *Repositories) DB() *sql.DB {
	if r.client == nil {
		return nil
	}
	return r.client.DB
}

func (r *Repositories) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}
