// Package cli wires up the lintlens command tree.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lintlens",
	Short: "Run a project's lint command and report issues by file",
	Long: `lintlens runs your project's lint command, captures its output, and
produces per-file reports: a summary with rule breakdowns on the
console and a detailed listing written to a log file.

Configuration is read from the nearest lintlens.toml (lint command,
project path prefix, header extensions); flags override it.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
