// Package cli implements the loadbar command line.
package cli

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for loadbar
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loadbar",
		Short: "Terminal progress bars driven one step at a time",
		Long: `loadbar draws a progress bar on the terminal and advances it step by step.

Two styles are available: a single-line filled bar (standard) and a
five-row animated sine wave (wave).`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.AddCommand(NewRunCommand())

	return cmd
}
