package tui

import (
	"os"
	"strings"

	"github.com/sprite-ai/lintlens/internal/lint"
)

// Lines of source shown above and below the diagnostic.
const contextRadius = 3

// sourceContext is a highlighted window of the source file around a
// diagnostic.
type sourceContext struct {
	startLine int // 1-based line number of lines[0]
	lines     []string
	tokens    [][]lint.Token
	err       string // human-readable load failure, empty on success
}

// loadContext reads the source file and extracts the window around
// line. The file may have changed or vanished since the lint run, so
// failures are reported in-pane rather than aborting the browser.
func loadContext(path string, line int) *sourceContext {
	data, err := os.ReadFile(path)
	if err != nil {
		return &sourceContext{err: "source not readable: " + err.Error()}
	}

	all := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if line < 1 || line > len(all) {
		return &sourceContext{err: "line out of range (file changed since lint run?)"}
	}

	start := line - contextRadius
	if start < 1 {
		start = 1
	}
	end := line + contextRadius
	if end > len(all) {
		end = len(all)
	}

	window := all[start-1 : end]
	return &sourceContext{
		startLine: start,
		lines:     window,
		tokens:    lint.Highlight(path, window),
	}
}
