// Package cmd implements the zeittui CLI entry point.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zeittui/zeittui/internal/config"
	"github.com/zeittui/zeittui/internal/tracker"
	"github.com/zeittui/zeittui/internal/tui"
	"github.com/zeittui/zeittui/internal/ui"
	"github.com/zeittui/zeittui/pkg/shell"
)

var (
	version  = "dev"
	cfgFile  string
	noColor  bool
	zeitBin  string
	interval time.Duration
)

// SetVersion sets the version string (called from main).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// rootCmd starts the interactive screen; there are no subcommands.
var rootCmd = &cobra.Command{
	Use:   "zeittui",
	Short: "Interactive terminal front-end for the zeit time tracker",
	Long: `zeittui wraps the zeit command-line time tracker in a full-screen
terminal interface. It shows the current tracking status, refreshed every
second, and forwards start/finish/list/stats operations to zeit.

Keys on the main screen:
  s   start tracking (prompts for project, task, and begin time)
  f   finish tracking (prompts for optional adjustments)
  l   show tracked activities
  d   show statistics
  q   quit

Requires zeit to be installed: https://github.com/mrusme/zeit`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initColor)

	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is .zeittui.yaml)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().StringVar(&zeitBin, "zeit", "", "zeit binary to invoke (overrides config)")
	rootCmd.Flags().DurationVar(&interval, "interval", 0, "status refresh interval (overrides config)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("zeittui version {{.Version}}\n")
}

func initColor() {
	if noColor {
		os.Setenv("NO_COLOR", "1")
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if zeitBin != "" {
		cfg.Zeit.Command = zeitBin
	}

	pollInterval := cfg.RefreshInterval()
	if interval > 0 {
		pollInterval = interval
	}

	if !shell.CommandExists(cfg.Zeit.Command) {
		ui.Errorf("%s is not installed or not on PATH", cfg.Zeit.Command)
		ui.Info("Install zeit from https://github.com/mrusme/zeit")
		return fmt.Errorf("%s not found", cfg.Zeit.Command)
	}

	client := tracker.NewClient(cfg.Zeit.Command, shell.NewRunner())
	return tui.Run(client, pollInterval)
}
