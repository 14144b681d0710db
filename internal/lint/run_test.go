package lint

import (
	"runtime"
	"strings"
	"testing"
)

func TestRunCapturesCombinedOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	out, err := Run("sh", "-c", "echo to-stdout; echo to-stderr 1>&2")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out, "to-stdout") {
		t.Error("expected stdout in combined output")
	}
	if !strings.Contains(out, "to-stderr") {
		t.Error("expected stderr in combined output")
	}
}

func TestRunNonZeroExitIsNotAnError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	out, err := Run("sh", "-c", "echo findings; exit 1")
	if err != nil {
		t.Fatalf("non-zero lint exit must not be an error, got: %v", err)
	}
	if !strings.Contains(out, "findings") {
		t.Error("expected output to be captured despite non-zero exit")
	}
}

func TestRunMissingExecutable(t *testing.T) {
	_, err := Run("lintlens-no-such-binary-xyz")
	if err == nil {
		t.Fatal("expected an error for a missing executable")
	}
}
