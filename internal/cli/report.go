package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sprite-ai/lintlens/internal/lint"
	"github.com/sprite-ai/lintlens/internal/model"
	"github.com/sprite-ai/lintlens/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Render reports from previously captured lint output",
	Long: `Parse a captured lint log (or stdin) and render a report without
re-running the linter. Useful for piping and for re-examining an
earlier run.

Examples:
  lintlens report /tmp/lint-latest.log
  lintlens report /tmp/lint-latest.log --format detailed
  cat lint.log | lintlens report -
  npx eslint . --format json | lintlens report - --from-json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringP("format", "f", "summary", "output format: summary, detailed, json")
	reportCmd.Flags().StringP("prefix", "p", "", "project path prefix for attributing files")
	reportCmd.Flags().Bool("from-json", false, "input is ESLint --format json output")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	input, err := readInput(args)
	if err != nil {
		return err
	}

	opts := lint.Options{
		Prefix:     cfg.Project.Prefix,
		Extensions: cfg.Project.Extensions,
	}

	var rs *model.ResultSet
	fromJSON, _ := cmd.Flags().GetBool("from-json")
	if fromJSON {
		rs, err = lint.ParseESLintJSON(strings.NewReader(input), opts)
		if err != nil {
			return err
		}
	} else {
		rs = lint.Parse(input, opts)
	}

	if rs.Empty() {
		fmt.Fprintln(cmd.OutOrStdout(), "No errors found!")
		return nil
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "detailed":
		return report.Detailed(cmd.OutOrStdout(), rs, cfg.Project.Prefix)
	case "json":
		return outputJSON(cmd.OutOrStdout(), rs, cfg.Project.Prefix)
	default:
		return report.Summary(cmd.OutOrStdout(), rs, cfg.Project.Prefix)
	}
}

// readInput returns the content of the named file, or stdin for "-"
// or no argument.
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

func outputJSON(w io.Writer, rs *model.ResultSet, prefix string) error {
	type jsonDiagnostic struct {
		Line     int    `json:"line"`
		Column   int    `json:"column"`
		Severity string `json:"severity"`
		Message  string `json:"message"`
		Rule     string `json:"rule"`
	}

	type jsonFile struct {
		Path        string           `json:"path"`
		Errors      int              `json:"errors"`
		Warnings    int              `json:"warnings"`
		Total       int              `json:"total"`
		Diagnostics []jsonDiagnostic `json:"diagnostics"`
	}

	type jsonOutput struct {
		Files         []jsonFile `json:"files"`
		TotalErrors   int        `json:"total_errors"`
		TotalWarnings int        `json:"total_warnings"`
		TotalFiles    int        `json:"total_files"`
	}

	out := jsonOutput{TotalFiles: len(rs.Files)}
	out.TotalErrors, out.TotalWarnings, _ = rs.Totals()

	for _, fd := range rs.Files {
		errCount, warnCount := fd.Counts()
		jf := jsonFile{
			Path:     fd.DisplayPath(prefix),
			Errors:   errCount,
			Warnings: warnCount,
			Total:    fd.Total(),
		}
		for _, d := range fd.Diagnostics {
			jf.Diagnostics = append(jf.Diagnostics, jsonDiagnostic{
				Line:     d.Line,
				Column:   d.Column,
				Severity: d.Severity.String(),
				Message:  d.Message,
				Rule:     d.Rule,
			})
		}
		out.Files = append(out.Files, jf)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
