// Package cli implements the aura command-line interface using Cobra.
// Each subcommand maps to an engine capability (add, done, mark, etc.).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "aura",
	Short: "Aura — habit streaks and activity rewards",
	Long: `Aura is a local-first habit and reward engine.
Track a daily habit streak, log activities for points, take on daily
challenges, and build your aura — all on your machine, no accounts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
