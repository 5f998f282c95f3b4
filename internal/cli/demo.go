package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Create a demo user with sample data",
	Long: `Create a demo user, start one session for it and log three sample
interruptions, then make the demo user active and show its dashboard.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	return withApp(ctx, func(app *AppContext) error {
		if err := app.Coordinator.SeedDemoData(ctx); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Demo user %s created\n\n", app.Controller.UserID())
		renderDashboard(cmd.OutOrStdout(), app.Controller.Snapshot(), time.Now())
		return nil
	})
}
