package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/hyperfocus/internal/controller"
	"github.com/emiliopalmerini/hyperfocus/internal/domain"
)

var interruptionCmd = &cobra.Command{
	Use:     "interruption",
	Aliases: []string{"interruptions", "int"},
	Short:   "Log and list interruptions",
	Long:    `Log and list interruptions for the selected session.`,
}

var interruptionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log an interruption for the selected session",
	Long: `Log an interruption for the selected session.

Times are local wall-clock times (2006-01-02T15:04 or "2006-01-02 15:04").

Examples:
  hyperfocus interruption add --type phone --start 2026-10-14T09:10 --end 2026-10-14T09:12
  hyperfocus interruption add -t family -d "Kid needed help" --start "2026-10-14 10:00" --end "2026-10-14 10:05"`,
	Args: cobra.NoArgs,
	RunE: runInterruptionAdd,
}

var interruptionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List interruptions for the selected session",
	Args:  cobra.NoArgs,
	RunE:  runInterruptionList,
}

// Flags
var (
	interruptionType        string
	interruptionDescription string
	interruptionStart       string
	interruptionEnd         string
)

func init() {
	rootCmd.AddCommand(interruptionCmd)
	interruptionCmd.AddCommand(interruptionAddCmd, interruptionListCmd)

	interruptionAddCmd.Flags().StringVarP(&interruptionType, "type", "t", string(domain.DefaultInterruptionType), "Type: family, phone, noise, self, urgent_task, unknown")
	interruptionAddCmd.Flags().StringVarP(&interruptionDescription, "description", "d", "", "Free-text description")
	interruptionAddCmd.Flags().StringVar(&interruptionStart, "start", "", "Start time (local)")
	interruptionAddCmd.Flags().StringVar(&interruptionEnd, "end", "", "End time (local)")
}

func runInterruptionAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	typ, err := domain.ParseInterruptionType(interruptionType)
	if err != nil {
		return err
	}
	draft := controller.InterruptionDraft{
		Type:        typ,
		Description: interruptionDescription,
		Start:       interruptionStart,
		End:         interruptionEnd,
	}
	in, err := draft.Input(time.Local)
	if err != nil {
		return err
	}

	return withApp(ctx, func(app *AppContext) error {
		if err := app.Resume(ctx); err != nil {
			return err
		}
		app.Controller.SetDraft(draft)
		if err := app.Coordinator.CreateInterruption(ctx, in); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Logged %s interruption\n", typ)
		snap := app.Controller.Snapshot()
		renderInterruptions(cmd.OutOrStdout(), snap)
		renderError(cmd.OutOrStdout(), snap)
		return nil
	})
}

func runInterruptionList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	return withApp(ctx, func(app *AppContext) error {
		if err := app.Resume(ctx); err != nil {
			return err
		}
		snap := app.Controller.Snapshot()
		if snap.SelectedSessionID == nil {
			return fmt.Errorf("no session selected: run 'hyperfocus sessions select <id>' first")
		}
		renderInterruptions(cmd.OutOrStdout(), snap)
		renderError(cmd.OutOrStdout(), snap)
		return nil
	})
}
