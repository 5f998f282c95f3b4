package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hyperfocus",
	Short: "Focus session tracker client",
	Long: `hyperfocus is a client for the focus-tracking API.

Start and end focus sessions, log interruptions, and review how much effective
time you kept over the last 7, 30 or 90 days. The active user, range and
selected session persist between invocations.`,
	SilenceUsage: true,
}

// Persistent flags
var (
	configPath  string
	apiURLFlag  string
	logLevelArg string
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/hyperfocus/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "Focus-tracking API base URL")
	rootCmd.PersistentFlags().StringVar(&logLevelArg, "log-level", "", "Log level: debug, info, warn, error")
}
