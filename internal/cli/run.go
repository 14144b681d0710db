package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sprite-ai/lintlens/internal/config"
	"github.com/sprite-ai/lintlens/internal/lint"
	"github.com/sprite-ai/lintlens/internal/logfile"
	"github.com/sprite-ai/lintlens/internal/report"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the lint command and report issues",
	Long: `Run the configured lint command, save its raw output under the log
directory (raw, timestamped snapshot, and "latest" copies), print the
per-file summary, and write the detailed listing to a log file.

A non-zero exit from the linter is expected and not an error; only a
lint command that cannot be started fails the run.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringP("command", "c", "", "lint command (overrides lintlens.toml)")
	runCmd.Flags().StringSlice("arg", nil, "lint command argument (repeatable)")
	runCmd.Flags().StringP("prefix", "p", "", "project path prefix for attributing files")
	runCmd.Flags().String("log-dir", "", "directory for log files (default: OS temp dir)")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("Running %s...\n", strings.Join(append([]string{cfg.Lint.Command}, cfg.Lint.Args...), " "))

	output, err := lint.Run(cfg.Lint.Command, cfg.Lint.Args...)
	if err != nil {
		return err
	}

	logs := logfile.New(cfg.Logs.Dir)

	rawPath, err := logs.WriteRaw(output)
	if err != nil {
		return err
	}
	snapPath, err := logs.WriteTimestamped(output, time.Now())
	if err != nil {
		return err
	}
	latestPath, err := logs.WriteLatest(output)
	if err != nil {
		return err
	}

	fmt.Printf("\nLogs saved to:\n")
	fmt.Printf("  - Raw: %s\n", rawPath)
	fmt.Printf("  - Current: %s\n", snapPath)
	fmt.Printf("  - Latest: %s\n", latestPath)

	rs := lint.Parse(output, lint.Options{
		Prefix:     cfg.Project.Prefix,
		Extensions: cfg.Project.Extensions,
	})

	if rs.Empty() {
		fmt.Println("\nNo errors found!")
		return nil
	}

	if err := report.Summary(cmd.OutOrStdout(), rs, cfg.Project.Prefix); err != nil {
		return err
	}

	var detailed strings.Builder
	if err := report.Detailed(&detailed, rs, cfg.Project.Prefix); err != nil {
		return err
	}
	detailedPath, err := logs.WriteDetailed(detailed.String())
	if err != nil {
		return err
	}

	fmt.Printf("\nDetailed output saved to: %s\n", detailedPath)
	return nil
}

// loadConfig discovers lintlens.toml from the working directory and
// applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Discover(".")
	if err != nil {
		return config.Config{}, err
	}

	if command, _ := cmd.Flags().GetString("command"); command != "" {
		cfg.Lint.Command = command
		cfg.Lint.Args, _ = cmd.Flags().GetStringSlice("arg")
	}
	if prefix, _ := cmd.Flags().GetString("prefix"); prefix != "" {
		cfg.Project.Prefix = prefix
	}
	if dir, _ := cmd.Flags().GetString("log-dir"); dir != "" {
		cfg.Logs.Dir = dir
	}

	return cfg, nil
}
