package model

import (
	"testing"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SeverityError, "error"},
		{SeverityWarning, "warning"},
		{Severity(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.sev, got, tt.want)
		}
	}
}

func TestDiagnosticRender(t *testing.T) {
	d := Diagnostic{Line: 12, Column: 34, Severity: SeverityError, Message: "Something bad", Rule: "some-rule"}
	want := "12:34 error Something bad some-rule"
	if got := d.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestResultSetOrderAndCounts(t *testing.T) {
	rs := NewResultSet()
	rs.Add("/p/a.ts", Diagnostic{Line: 3, Column: 1, Severity: SeverityError, Message: "m", Rule: "r1"})
	rs.Add("/p/b.ts", Diagnostic{Line: 1, Column: 1, Severity: SeverityWarning, Message: "m", Rule: "r2"})
	rs.Add("/p/a.ts", Diagnostic{Line: 9, Column: 2, Severity: SeverityWarning, Message: "m", Rule: "r1"})

	if len(rs.Files) != 2 {
		t.Fatalf("expected 2 file groups, got %d", len(rs.Files))
	}
	if rs.Files[0].Path != "/p/a.ts" || rs.Files[1].Path != "/p/b.ts" {
		t.Errorf("file groups out of first-occurrence order: %q, %q", rs.Files[0].Path, rs.Files[1].Path)
	}

	e, w := rs.File("/p/a.ts").Counts()
	if e != 1 || w != 1 {
		t.Errorf("a.ts counts = %d errors, %d warnings, want 1, 1", e, w)
	}

	te, tw, total := rs.Totals()
	if te != 1 || tw != 2 || total != 3 {
		t.Errorf("Totals() = %d, %d, %d, want 1, 2, 3", te, tw, total)
	}
	if te+tw != total {
		t.Errorf("errors+warnings = %d, want total %d", te+tw, total)
	}
}

func TestDisplayPath(t *testing.T) {
	fd := &FileDiagnostics{Path: "/root/project/src/a.ts"}
	if got := fd.DisplayPath("/root/project/"); got != "src/a.ts" {
		t.Errorf("DisplayPath = %q, want %q", got, "src/a.ts")
	}
}
