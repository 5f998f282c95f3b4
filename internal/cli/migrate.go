package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/hyperfocus/internal/infrastructure/config"
	"github.com/emiliopalmerini/hyperfocus/internal/infrastructure/database"
	"github.com/emiliopalmerini/hyperfocus/internal/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [version]",
	Short: "Run local state database migrations",
	Long: `Run local state database migrations.

Without arguments, runs all pending migrations (up).
With a version number, migrates to that specific version (up or down as needed).
Other commands apply pending migrations automatically.

Examples:
  hyperfocus migrate      # Run all pending migrations
  hyperfocus migrate 1    # Migrate to version 1
  hyperfocus migrate 0    # Rollback all migrations`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMigrate,
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current schema version and pending migrations",
	Args:  cobra.NoArgs,
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

func openRunner(cmd *cobra.Command) (*migrate.Runner, func(), error) {
	if testDBOverride != nil {
		r, err := migrate.NewRunner(testDBOverride, cmd.OutOrStdout())
		return r, func() {}, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	client, err := database.Open(cfg.DatabaseURL, database.Options{AuthToken: cfg.DatabaseAuthToken, Ping: true})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	r, err := migrate.NewRunner(client.DB, cmd.OutOrStdout())
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return r, func() { _ = client.Close() }, nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	runner, closeDB, err := openRunner(cmd)
	if err != nil {
		return err
	}
	defer closeDB()

	current, dirty, err := runner.Version(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is in dirty state at version %d, manual intervention required", current)
	}
	fmt.Fprintf(out, "Current version: %d\n", current)

	if len(args) == 0 {
		n, err := runner.Up(ctx, 0)
		if err != nil {
			return err
		}
		if n == 0 {
			fmt.Fprintln(out, "No migrations to run")
			return nil
		}
		fmt.Fprintf(out, "Applied %d migrations\n", n)
		return nil
	}

	target, err := strconv.Atoi(args[0])
	if err != nil || target < 0 {
		return fmt.Errorf("invalid version number: %s", args[0])
	}
	switch {
	case target > current:
		_, err = runner.Up(ctx, target)
	case target < current:
		_, err = runner.Down(ctx, target)
	default:
		fmt.Fprintln(out, "Already at target version")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Migrated to version %d\n", target)
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	runner, closeDB, err := openRunner(cmd)
	if err != nil {
		return err
	}
	defer closeDB()

	st, err := runner.Status(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Current version: %d\nLatest version:  %d\nDirty:           %t\n", st.Current, st.Latest, st.Dirty)
	for _, m := range st.Pending {
		fmt.Fprintf(out, "  pending %03d_%s\n", m.Version, m.Name)
	}
	return nil
}
