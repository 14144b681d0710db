package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const reportFixture = `/root/project/src/a.ts
  12:34  error    Something bad    some-rule
  3:1    warning  Prefer const     prefer-const
`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lint.log")
	if err := os.WriteFile(path, []byte(reportFixture), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute %v failed: %v", args, err)
	}
	return buf.String()
}

func TestReportSummary(t *testing.T) {
	path := writeFixture(t)

	out := execute(t, "report", path, "--prefix", "/root/project/", "--format", "summary")

	if !strings.Contains(out, "SUMMARY BY FILE (sorted by total issues)") {
		t.Error("expected summary title")
	}
	if !strings.Contains(out, "src/a.ts") {
		t.Error("expected prefix-stripped path")
	}
	if !strings.Contains(out, "Total files with issues: 1") {
		t.Errorf("expected file count line, got:\n%s", out)
	}
}

func TestReportDetailed(t *testing.T) {
	path := writeFixture(t)

	out := execute(t, "report", path, "--prefix", "/root/project/", "--format", "detailed")

	if !strings.Contains(out, "DETAILED LINT ERRORS BY FILE") {
		t.Error("expected detailed title")
	}
	if !strings.Contains(out, "  12:34 error Something bad some-rule") {
		t.Errorf("expected rendered diagnostic, got:\n%s", out)
	}
}

func TestReportJSON(t *testing.T) {
	path := writeFixture(t)

	out := execute(t, "report", path, "--prefix", "/root/project/", "--format", "json")

	for _, want := range []string{`"some-rule"`, `"total_errors": 1`, `"total_warnings": 1`, `"src/a.ts"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected JSON output to contain %s, got:\n%s", want, out)
		}
	}
}

func TestReportNoFindings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clean.log")
	if err := os.WriteFile(path, []byte("all clean\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out := execute(t, "report", path, "--prefix", "/root/project/", "--format", "summary")

	if !strings.Contains(out, "No errors found!") {
		t.Errorf("expected no-errors message, got:\n%s", out)
	}
}
