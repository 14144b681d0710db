// Package report renders aggregate views over parsed lint results.
// Both views write to an injected writer and never mutate the result
// set, so rendering twice produces identical bytes.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sprite-ai/lintlens/internal/model"
)

const (
	wideWidth   = 100
	narrowWidth = 80
	// Rule histograms show the top entries per file; the rest collapse
	// into one synthetic line.
	topRules = 10
)

// printer accumulates the first write error so render code stays flat.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) line(s string) {
	p.printf("%s\n", s)
}

// Detailed writes the per-file listing: files in descending order of
// total diagnostics, each diagnostic sorted ascending by line number.
func Detailed(w io.Writer, rs *model.ResultSet, prefix string) error {
	p := &printer{w: w}

	p.line(strings.Repeat("=", wideWidth))
	p.line("DETAILED LINT ERRORS BY FILE")
	p.line(strings.Repeat("=", wideWidth))
	p.line("")

	for _, fd := range byTotalDescending(rs.Files) {
		errCount, warnCount := fd.Counts()

		p.line("")
		p.line(strings.Repeat("=", narrowWidth))
		p.printf("FILE: %s\n", fd.DisplayPath(prefix))
		p.printf("ERRORS: %d, WARNINGS: %d, TOTAL: %d\n", errCount, warnCount, fd.Total())
		p.line(strings.Repeat("=", narrowWidth))

		for _, d := range byLineAscending(fd.Diagnostics) {
			p.printf("  %s\n", d.Render())
		}
	}

	return p.err
}

// Summary writes one block per file (descending by total diagnostics)
// with error/warning/total counts and a per-rule histogram, followed by
// a grand-total line across all files.
func Summary(w io.Writer, rs *model.ResultSet, prefix string) error {
	p := &printer{w: w}

	p.line("")
	p.line(strings.Repeat("=", wideWidth))
	p.line("SUMMARY BY FILE (sorted by total issues)")
	p.line(strings.Repeat("=", wideWidth))
	p.line("")

	for _, fd := range byTotalDescending(rs.Files) {
		errCount, warnCount := fd.Counts()

		p.line("")
		p.line(strings.Repeat("=", wideWidth))
		p.printf("%-60s Errors: %5d Warnings: %5d Total: %5d\n",
			fd.DisplayPath(prefix), errCount, warnCount, fd.Total())
		p.line(strings.Repeat("-", wideWidth))

		rules := ruleHistogram(fd)
		shown := rules
		if len(shown) > topRules {
			shown = shown[:topRules]
		}
		for _, rc := range shown {
			p.printf("  %-70s %5d\n", rc.rule, rc.count)
		}
		if len(rules) > topRules {
			remaining := 0
			for _, rc := range rules[topRules:] {
				remaining += rc.count
			}
			label := fmt.Sprintf("... and %d more rules", len(rules)-topRules)
			p.printf("  %-70s %5d\n", label, remaining)
		}
	}

	totalErrors, totalWarnings, _ := rs.Totals()
	p.line("")
	p.line(strings.Repeat("=", wideWidth))
	p.printf("%-60s %10d %10d %10d\n", "TOTAL", totalErrors, totalWarnings, totalErrors+totalWarnings)
	p.line(strings.Repeat("=", wideWidth))
	p.line("")
	p.printf("Total files with issues: %d\n", len(rs.Files))

	return p.err
}

type ruleCount struct {
	rule  string
	count int
}

// ruleHistogram counts diagnostics per rule, keyed by the trailing
// whitespace-delimited token of each rendered diagnostic. Entries come
// back sorted by descending count, ties in first-occurrence order.
func ruleHistogram(fd *model.FileDiagnostics) []ruleCount {
	counts := make(map[string]int)
	var order []string

	for _, d := range fd.Diagnostics {
		parts := strings.Fields(d.Render())
		if len(parts) == 0 {
			continue
		}
		rule := parts[len(parts)-1]
		if _, seen := counts[rule]; !seen {
			order = append(order, rule)
		}
		counts[rule]++
	}

	rules := make([]ruleCount, 0, len(order))
	for _, rule := range order {
		rules = append(rules, ruleCount{rule: rule, count: counts[rule]})
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].count > rules[j].count
	})
	return rules
}

func byTotalDescending(files []*model.FileDiagnostics) []*model.FileDiagnostics {
	sorted := make([]*model.FileDiagnostics, len(files))
	copy(sorted, files)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Total() > sorted[j].Total()
	})
	return sorted
}

func byLineAscending(diags []model.Diagnostic) []model.Diagnostic {
	sorted := make([]model.Diagnostic, len(diags))
	copy(sorted, diags)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Line < sorted[j].Line
	})
	return sorted
}
