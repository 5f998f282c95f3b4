package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/hyperfocus/internal/tui"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"tui"},
	Short:   "Open the terminal dashboard",
	Long: `Open an interactive terminal dashboard for the active user.

Keys: j/k move, enter select, s start, e end, t cycle range, r reload, d demo, q quit.`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	return withApp(ctx, func(app *AppContext) error {
		if err := resumeIfAny(ctx, app); err != nil {
			app.Logger.Error("failed to resume context", "error", err)
		}

		model := tui.NewModel(app.Controller, app.Coordinator, tui.WithPersist(app.Persist))
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("dashboard: %w", err)
		}
		return nil
	})
}
