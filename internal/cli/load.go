package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/hyperfocus/internal/domain"
)

var loadCmd = &cobra.Command{
	Use:   "load <user-id>",
	Short: "Load the dashboard for a user",
	Long: `Make <user-id> the active user and fetch every dashboard view.

Examples:
  hyperfocus load 7              # Last 7 days for user 7
  hyperfocus load 7 --range 30d  # Last 30 days`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

var loadRange string

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().StringVarP(&loadRange, "range", "r", "", "Time range: 7d, 30d, 90d (default from config)")
}

func runLoad(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var rng domain.Range
	if loadRange != "" {
		parsed, err := domain.ParseRange(loadRange)
		if err != nil {
			return err
		}
		rng = parsed
	}

	return withApp(ctx, func(app *AppContext) error {
		if err := app.Controller.LoadAll(ctx, args[0], rng); err != nil {
			return err
		}
		renderDashboard(cmd.OutOrStdout(), app.Controller.Snapshot(), time.Now())
		return nil
	})
}
