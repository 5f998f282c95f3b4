package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent actions and their outcome",
	Long: `Show the activity journal: every start, end, interruption and demo
action with whether the server applied or rejected it.

Examples:
  hyperfocus history          # Last 20 actions
  hyperfocus history -n 50    # Last 50 actions`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "last", "n", 20, "Number of entries to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	return withApp(ctx, func(app *AppContext) error {
		entries, err := app.Repos.Journal.Recent(ctx, historyLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No actions recorded")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tACTION\tOUTCOME\tUSER\tSESSION\tMESSAGE")
		fmt.Fprintln(w, "----\t------\t-------\t----\t-------\t-------")
		for _, e := range entries {
			session := "-"
			if e.SessionID != nil {
				session = fmt.Sprintf("%d", *e.SessionID)
			}
			user := e.UserID
			if user == "" {
				user = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				e.CreatedAt.In(time.Local).Format("2006-01-02 15:04:05"), e.Kind, e.Outcome, user, session, e.Message)
		}
		return w.Flush()
	})
}
