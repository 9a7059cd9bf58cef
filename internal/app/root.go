// Package app contains the Cobra command tree for folio.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

// logger is replaced in PersistentPreRunE once flags are parsed.
var logger = slog.New(slog.DiscardHandler)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Developer portfolio aggregator",
	Long: `folio aggregates a developer's public GitHub profile and LeetCode
statistics with a curated catalog of technologies, projects, certificates
and timeline entries. It renders them in the terminal, serves them as a JSON
API and exposes them to MCP clients.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "folio", appVersion)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Use a subcommand:")
		fmt.Fprintln(w, "  stats     GitHub and LeetCode dashboards")
		fmt.Fprintln(w, "  tech      Technology grid with proficiency scores")
		fmt.Fprintln(w, "  projects  Project showcase")
		fmt.Fprintln(w, "  certs     Certificates")
		fmt.Fprintln(w, "  timeline  Education, project and achievement timeline")
		fmt.Fprintln(w, "  track     Record and compare profile history")
		fmt.Fprintln(w, "  serve     Run the JSON API")
		fmt.Fprintln(w, "  mcp       Run the MCP stdio server")
		fmt.Fprintln(w, "  inbox     List contact-form submissions")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/folio/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
