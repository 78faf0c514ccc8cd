package ntrition

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	dbPath     string
	configPath string
	offline    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:           "ntrition",
	Short:         "ntrition logs food and body metrics from your terminal",
	Long:          "ntrition is a local-first nutrition log: search a bundled food table and Open Food Facts, scan barcodes, and track daily macros and body metrics against your goals.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false, "Skip Open Food Facts and use the bundled food table only")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print machine-readable JSON")
}
