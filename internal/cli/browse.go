package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sprite-ai/lintlens/internal/lint"
	"github.com/sprite-ai/lintlens/internal/logfile"
	"github.com/sprite-ai/lintlens/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [file]",
	Short: "Browse captured lint results interactively",
	Long: `Open an interactive browser over a captured lint log. With no
argument, the "latest" log from the last run is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringP("prefix", "p", "", "project path prefix for attributing files")
	browseCmd.Flags().String("log-dir", "", "directory to look up the latest log in")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		latest := logfile.New(cfg.Logs.Dir).LatestPath()
		if _, err := os.Stat(latest); err != nil {
			return fmt.Errorf("no captured output found; run `lintlens run` first or pass a log file: %w", err)
		}
		args = []string{latest}
	}

	input, err := readInput(args)
	if err != nil {
		return err
	}

	rs := lint.Parse(input, lint.Options{
		Prefix:     cfg.Project.Prefix,
		Extensions: cfg.Project.Extensions,
	})

	if rs.Empty() {
		fmt.Println("No errors found!")
		return nil
	}

	return tui.Run(rs, cfg.Project.Prefix)
}
