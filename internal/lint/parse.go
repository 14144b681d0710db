package lint

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sprite-ai/lintlens/internal/model"
)

// Options configure which output lines the parser attributes to the
// project.
type Options struct {
	// Prefix is the absolute-path substring identifying in-project
	// file header lines.
	Prefix string

	// Extensions mark header lines as source files (default .ts, .tsx).
	Extensions []string
}

// DefaultExtensions are the header extension markers used when none
// are configured.
var DefaultExtensions = []string{".ts", ".tsx"}

// ESLint-style stylish output:
//
//	/path/to/file.ts
//	  12:34  error    Error message    rule-name
var (
	diagLineRe  = regexp.MustCompile(`^\s+\d+:\d+\s+(error|warning)`)
	diagPartsRe = regexp.MustCompile(`^\s+(\d+):(\d+)\s+(error|warning)\s+(.+?)\s+(@?\S+)$`)
)

// Parse scans lint output line by line and groups diagnostics by file.
//
// A header line (non-empty, no leading whitespace, containing a source
// extension marker) sets the current file, but only when it contains
// the project prefix. A header outside the prefix does not clear the
// current file: diagnostics that follow keep attributing to the last
// matched file. Diagnostic lines that classify but fail to decompose
// into message and rule are dropped silently.
func Parse(output string, opts Options) *model.ResultSet {
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	rs := model.NewResultSet()
	currentFile := ""

	for _, line := range strings.Split(output, "\n") {
		if isHeaderLine(line, exts) {
			if opts.Prefix != "" && strings.Contains(line, opts.Prefix) {
				currentFile = strings.TrimSpace(line)
			}
			continue
		}

		if currentFile == "" || strings.TrimSpace(line) == "" {
			continue
		}
		if !diagLineRe.MatchString(line) {
			continue
		}

		m := diagPartsRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		lineNum, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		colNum, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		sev, ok := model.ParseSeverity(m[3])
		if !ok {
			continue
		}

		rs.Add(currentFile, model.Diagnostic{
			Line:     lineNum,
			Column:   colNum,
			Severity: sev,
			Message:  strings.TrimSpace(m[4]),
			Rule:     m[5],
		})
	}

	return rs
}

func isHeaderLine(line string, exts []string) bool {
	if line == "" || line[0] == ' ' || line[0] == '\t' {
		return false
	}
	if strings.TrimSpace(line) == "" {
		return false
	}
	for _, ext := range exts {
		if strings.Contains(line, ext) {
			return true
		}
	}
	return false
}
