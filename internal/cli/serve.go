package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/hyperfocus/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web dashboard",
	Long: `Start the local web dashboard server.

The dashboard resumes the persisted user, range and selection when there is one.

Examples:
  hyperfocus serve                  # Listen on the configured address
  hyperfocus serve --addr :3000     # Listen on port 3000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	return withApp(ctx, func(app *AppContext) error {
		if err := resumeIfAny(ctx, app); err != nil {
			app.Logger.Error("failed to resume context", "error", err)
		}

		addr := serveAddr
		if addr == "" {
			addr = app.Config.Addr
		}
		server := web.NewServer(
			web.Config{Addr: addr, Location: time.Local},
			app.Controller,
			app.Coordinator,
			app.Repos.Context,
			app.Logger,
		)
		fmt.Fprintf(cmd.OutOrStdout(), "Dashboard at http://%s\n", displayAddr(addr))
		return server.Start(ctx)
	})
}

// displayAddr turns ":8080" into "localhost:8080".
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
