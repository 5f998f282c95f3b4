// Package migrate applies the embedded schema to the local state database.
package migrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/emiliopalmerini/hyperfocus/migrations"
)

// Migration is one numbered schema step.
type Migration struct {
	Version int
	Name    string
	UpSQL   string
	DownSQL string
}

// Status describes the schema state of a database.
type Status struct {
	Current int
	Latest  int
	Dirty   bool
	Pending []Migration
}

var upPattern = regexp.MustCompile(`^(\d+)_(.+)\.up\.sql$`)

// Runner applies migrations and reports progress to Out.
type Runner struct {
	DB         *sql.DB
	Migrations []Migration
	Out        io.Writer
}

// NewRunner loads the embedded migrations. A nil out discards progress lines.
func NewRunner(db *sql.DB, out io.Writer) (*Runner, error) {
	all, err := Load(migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("loading migrations: %w", err)
	}
	if out == nil {
		out = io.Discard
	}
	return &Runner{DB: db, Migrations: all, Out: out}, nil
}

// Load reads every NNN_name.up.sql file in fsys with its optional down file.
func Load(fsys fs.FS) ([]Migration, error) {
	var result []Migration

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		matches := upPattern.FindStringSubmatch(path.Base(p))
		if matches == nil {
			return nil
		}
		version, _ := strconv.Atoi(matches[1])

		up, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}
		down, err := fs.ReadFile(fsys, path.Join(path.Dir(p), matches[1]+"_"+matches[2]+".down.sql"))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("reading down file for %s: %w", p, err)
		}

		result = append(result, Migration{
			Version: version,
			Name:    matches[2],
			UpSQL:   string(up),
			DownSQL: string(down),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Version < result[j].Version
	})
	for i := 1; i < len(result); i++ {
		if result[i].Version == result[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version %d", result[i].Version)
		}
	}
	return result, nil
}

func (r *Runner) ensureTable(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			dirty INTEGER NOT NULL DEFAULT 0
		)
	`)
	return err
}

// Version returns the applied version and whether the last step failed half-way.
func (r *Runner) Version(ctx context.Context) (int, bool, error) {
	if err := r.ensureTable(ctx); err != nil {
		return 0, false, fmt.Errorf("creating migrations table: %w", err)
	}

	var version, dirty int
	err := r.DB.QueryRowContext(ctx, `SELECT version, dirty FROM schema_migrations ORDER BY version DESC LIMIT 1`).Scan(&version, &dirty)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return version, dirty == 1, nil
}

func (r *Runner) setVersion(ctx context.Context, version int, dirty bool) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM schema_migrations`); err != nil {
		return err
	}
	if version <= 0 {
		return nil
	}
	d := 0
	if dirty {
		d = 1
	}
	_, err := r.DB.ExecContext(ctx, `INSERT INTO schema_migrations (version, dirty) VALUES (?, ?)`, version, d)
	return err
}

func (r *Runner) Status(ctx context.Context) (Status, error) {
	current, dirty, err := r.Version(ctx)
	if err != nil {
		return Status{}, err
	}
	st := Status{Current: current, Dirty: dirty}
	for _, m := range r.Migrations {
		st.Latest = max(st.Latest, m.Version)
		if m.Version > current {
			st.Pending = append(st.Pending, m)
		}
	}
	return st, nil
}

func (r *Runner) apply(ctx context.Context, m Migration, up bool) error {
	direction, content, target := "up", m.UpSQL, m.Version
	if !up {
		direction, content, target = "down", m.DownSQL, m.Version-1
	}
	fmt.Fprintf(r.Out, "  %s %03d_%s\n", direction, m.Version, m.Name)

	if err := r.setVersion(ctx, m.Version, true); err != nil {
		return fmt.Errorf("marking version %d dirty: %w", m.Version, err)
	}
	for _, stmt := range SplitSQL(content) {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d %s: %w\nSQL: %s", m.Version, direction, err, stmt)
		}
	}
	if err := r.setVersion(ctx, target, false); err != nil {
		return fmt.Errorf("clearing dirty flag: %w", err)
	}
	return nil
}

// SplitSQL splits a script on semicolons and drops empty statements.
func SplitSQL(script string) []string {
	var out []string
	for _, stmt := range strings.Split(script, ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

// Up applies every pending migration up to target. A target of 0 means latest.
func (r *Runner) Up(ctx context.Context, target int) (int, error) {
	current, dirty, err := r.Version(ctx)
	if err != nil {
		return 0, err
	}
	if dirty {
		return 0, fmt.Errorf("database is dirty at version %d", current)
	}

	applied := 0
	for _, m := range r.Migrations {
		if m.Version <= current {
			continue
		}
		if target > 0 && m.Version > target {
			break
		}
		if err := r.apply(ctx, m, true); err != nil {
			return applied, err
		}
		applied++
	}
	return applied, nil
}

// Down reverts migrations until the schema is at target.
func (r *Runner) Down(ctx context.Context, target int) (int, error) {
	current, dirty, err := r.Version(ctx)
	if err != nil {
		return 0, err
	}
	if dirty {
		return 0, fmt.Errorf("database is dirty at version %d", current)
	}

	reverted := 0
	for i := len(r.Migrations) - 1; i >= 0; i-- {
		m := r.Migrations[i]
		if m.Version > current {
			continue
		}
		if m.Version <= target {
			break
		}
		if strings.TrimSpace(m.DownSQL) == "" {
			return reverted, fmt.Errorf("no down migration for version %d", m.Version)
		}
		if err := r.apply(ctx, m, false); err != nil {
			return reverted, err
		}
		reverted++
	}
	return reverted, nil
}

// RunAll applies every pending embedded migration silently.
func RunAll(ctx context.Context, db *sql.DB) error {
	r, err := NewRunner(db, nil)
	if err != nil {
		return err
	}
	_, err = r.Up(ctx, 0)
	return err
}
