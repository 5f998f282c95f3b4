package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/hyperfocus/internal/domain"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the dashboard for the active user",
	Long: `Reload and print every view for the persisted user, range and selection.

Examples:
  hyperfocus stats               # Current range
  hyperfocus stats --range 90d   # Switch to the last 90 days`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

var statsRange string

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVarP(&statsRange, "range", "r", "", "Switch the active range: 7d, 30d, 90d")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withApp(ctx, func(app *AppContext) error {
		if err := app.Resume(ctx); err != nil {
			return err
		}
		if statsRange != "" {
			rng, err := domain.ParseRange(statsRange)
			if err != nil {
				return err
			}
			if err := app.Controller.LoadAll(ctx, app.Controller.UserID(), rng); err != nil {
				return err
			}
		}
		renderDashboard(cmd.OutOrStdout(), app.Controller.Snapshot(), time.Now())
		return nil
	})
}
