package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/hyperfocus/internal/controller"
)

var sessionsCmd = &cobra.Command{
	Use:     "sessions",
	Aliases: []string{"session"},
	Short:   "Manage focus sessions",
	Long:    `List, start, end and select focus sessions for the active user.`,
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sessions",
	Args:  cobra.NoArgs,
	RunE:  runSessionsList,
}

var sessionsStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a focus session",
	Args:  cobra.NoArgs,
	RunE:  runSessionsStart,
}

var sessionsEndCmd = &cobra.Command{
	Use:   "end [session-id]",
	Short: "End a focus session",
	Long: `End a focus session.

Without an argument, ends the selected session, or the most recent active one.

Examples:
  hyperfocus sessions end      # End the selected or active session
  hyperfocus sessions end 12   # End session 12`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSessionsEnd,
}

var sessionsSelectCmd = &cobra.Command{
	Use:   "select <session-id>",
	Short: "Select a session and show its interruptions",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsSelect,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.AddCommand(sessionsListCmd, sessionsStartCmd, sessionsEndCmd, sessionsSelectCmd)
}

func runSessionsList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	return withApp(ctx, func(app *AppContext) error {
		if err := app.Resume(ctx); err != nil {
			return err
		}
		snap := app.Controller.Snapshot()
		renderSessions(cmd.OutOrStdout(), snap, time.Now())
		renderError(cmd.OutOrStdout(), snap)
		return nil
	})
}

func runSessionsStart(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	return withApp(ctx, func(app *AppContext) error {
		if err := app.Resume(ctx); err != nil {
			return err
		}
		if err := app.Coordinator.StartSession(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Session started")
		snap := app.Controller.Snapshot()
		renderSessions(cmd.OutOrStdout(), snap, time.Now())
		renderError(cmd.OutOrStdout(), snap)
		return nil
	})
}

func runSessionsEnd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	return withApp(ctx, func(app *AppContext) error {
		if err := app.Resume(ctx); err != nil {
			return err
		}

		id, err := sessionToEnd(app.Controller.Snapshot(), args)
		if err != nil {
			return err
		}
		if err := app.Coordinator.EndSession(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Session %d ended\n", id)
		snap := app.Controller.Snapshot()
		renderSessions(cmd.OutOrStdout(), snap, time.Now())
		renderError(cmd.OutOrStdout(), snap)
		return nil
	})
}

// sessionToEnd picks the explicit id, else the selection, else the newest active session.
func sessionToEnd(snap controller.Snapshot, args []string) (int64, error) {
	if len(args) == 1 {
		return parseSessionID(args[0])
	}
	if snap.SelectedSessionID != nil {
		return *snap.SelectedSessionID, nil
	}
	for _, s := range snap.Views.Sessions.Value {
		if s.IsActive() {
			return s.ID, nil
		}
	}
	return 0, fmt.Errorf("no active session to end")
}

func runSessionsSelect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id, err := parseSessionID(args[0])
	if err != nil {
		return err
	}

	return withApp(ctx, func(app *AppContext) error {
		if err := app.Resume(ctx); err != nil {
			return err
		}
		snap := app.Controller.Snapshot()
		if _, ok := findSession(snap, id); !ok {
			return fmt.Errorf("session %d is not in the sessions list for user %s", id, snap.UserID)
		}
		if err := app.Controller.Select(ctx, id); err != nil {
			return err
		}
		snap = app.Controller.Snapshot()
		renderInterruptions(cmd.OutOrStdout(), snap)
		renderError(cmd.OutOrStdout(), snap)
		return nil
	})
}

func parseSessionID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid session ID: %s", s)
	}
	return id, nil
}

func findSession(snap controller.Snapshot, id int64) (int, bool) {
	for i, s := range snap.Views.Sessions.Value {
		if s.ID == id {
			return i, true
		}
	}
	return 0, false
}
