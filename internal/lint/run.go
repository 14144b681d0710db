// Package lint runs the project's lint command and parses its output
// into structured diagnostics.
package lint

import (
	"errors"
	"fmt"
	"os/exec"
)

// Run invokes the lint command and returns its combined stdout and
// stderr. A non-zero exit from the linter is expected (that is what a
// lint failure looks like) and is not an error; only a command that
// cannot be located or started fails.
func Run(command string, args ...string) (string, error) {
	cmd := exec.Command(command, args...)

	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return string(out), nil
		}
		return "", fmt.Errorf("running %s: %w", command, err)
	}

	return string(out), nil
}
