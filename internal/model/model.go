// Package model defines the core data types shared across lintlens.
package model

import (
	"fmt"
	"strings"
)

// Severity classifies a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// ParseSeverity maps a severity token from lint output to a Severity.
func ParseSeverity(tok string) (Severity, bool) {
	switch tok {
	case "error":
		return SeverityError, true
	case "warning":
		return SeverityWarning, true
	default:
		return 0, false
	}
}

// Diagnostic is a single lint finding. Produced once per matched output
// line and never mutated.
type Diagnostic struct {
	Line     int // 1-based
	Column   int // 1-based
	Severity Severity
	Message  string
	Rule     string
}

// Render returns the canonical one-line form used in reports.
func (d Diagnostic) Render() string {
	return fmt.Sprintf("%d:%d %s %s %s", d.Line, d.Column, d.Severity, d.Message, d.Rule)
}

// FileDiagnostics groups the diagnostics attributed to one source file,
// in encounter order. All diagnostics in a group were parsed under the
// same current-file context.
type FileDiagnostics struct {
	Path        string // absolute, as it appeared in the header line
	Diagnostics []Diagnostic
}

// Counts returns the number of errors and warnings.
func (fd *FileDiagnostics) Counts() (errors, warnings int) {
	for _, d := range fd.Diagnostics {
		switch d.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return
}

// Total returns the number of diagnostics.
func (fd *FileDiagnostics) Total() int {
	return len(fd.Diagnostics)
}

// DisplayPath strips the project prefix for report output.
func (fd *FileDiagnostics) DisplayPath(prefix string) string {
	return strings.Replace(fd.Path, prefix, "", 1)
}

// ResultSet holds all parsed diagnostics, grouped by file in
// first-occurrence order.
type ResultSet struct {
	Files []*FileDiagnostics

	index map[string]*FileDiagnostics
}

// NewResultSet returns an empty ResultSet.
func NewResultSet() *ResultSet {
	return &ResultSet{index: make(map[string]*FileDiagnostics)}
}

// Add appends a diagnostic to the group for path, creating the group on
// first use. Group order follows first insertion.
func (rs *ResultSet) Add(path string, d Diagnostic) {
	fd, ok := rs.index[path]
	if !ok {
		fd = &FileDiagnostics{Path: path}
		rs.index[path] = fd
		rs.Files = append(rs.Files, fd)
	}
	fd.Diagnostics = append(fd.Diagnostics, d)
}

// File returns the group for path, or nil if path has no diagnostics.
func (rs *ResultSet) File(path string) *FileDiagnostics {
	return rs.index[path]
}

// Empty reports whether no diagnostics were recorded.
func (rs *ResultSet) Empty() bool {
	return len(rs.Files) == 0
}

// Totals returns the error, warning, and combined counts summed over
// all files.
func (rs *ResultSet) Totals() (errors, warnings, total int) {
	for _, fd := range rs.Files {
		e, w := fd.Counts()
		errors += e
		warnings += w
		total += fd.Total()
	}
	return
}
