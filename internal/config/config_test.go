package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleManifest = `
[lint]
command = "yarn"
args = ["lint", "--no-color"]

[project]
prefix = "/home/dev/app/"
extensions = [".ts", ".tsx", ".vue"]

[logs]
dir = "/var/tmp/lint"
`

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	if cfg.Lint.Command != "npm" {
		t.Errorf("default command = %q, want npm", cfg.Lint.Command)
	}
	if len(cfg.Lint.Args) != 2 || cfg.Lint.Args[0] != "run" || cfg.Lint.Args[1] != "lint" {
		t.Errorf("default args = %v, want [run lint]", cfg.Lint.Args)
	}
	if !strings.HasSuffix(cfg.Project.Prefix, string(filepath.Separator)) {
		t.Errorf("default prefix %q must end with a separator", cfg.Project.Prefix)
	}
	if len(cfg.Project.Extensions) != 2 {
		t.Errorf("default extensions = %v", cfg.Project.Extensions)
	}
	if cfg.Logs.Dir != "" {
		t.Errorf("default log dir must be empty (os temp), got %q", cfg.Logs.Dir)
	}
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, t.TempDir(), sampleManifest)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Lint.Command != "yarn" {
		t.Errorf("command = %q, want yarn", cfg.Lint.Command)
	}
	if len(cfg.Lint.Args) != 2 || cfg.Lint.Args[1] != "--no-color" {
		t.Errorf("args = %v", cfg.Lint.Args)
	}
	if cfg.Project.Prefix != "/home/dev/app/" {
		t.Errorf("prefix = %q", cfg.Project.Prefix)
	}
	if len(cfg.Project.Extensions) != 3 {
		t.Errorf("extensions = %v", cfg.Project.Extensions)
	}
	if cfg.Logs.Dir != "/var/tmp/lint" {
		t.Errorf("log dir = %q", cfg.Logs.Dir)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[project]\nprefix = \"/srv/app/\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Lint.Command != "npm" {
		t.Errorf("unset command must keep default, got %q", cfg.Lint.Command)
	}
	if cfg.Project.Prefix != "/srv/app/" {
		t.Errorf("prefix = %q", cfg.Project.Prefix)
	}
	if len(cfg.Project.Extensions) != 2 {
		t.Errorf("unset extensions must keep defaults, got %v", cfg.Project.Extensions)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "not [valid toml")
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for invalid TOML")
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, sampleManifest)

	nested := filepath.Join(root, "src", "components")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := Find(nested)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if !ok {
		t.Fatal("expected manifest to be found from nested dir")
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %q, want manifest in %q", path, root)
	}
}

func TestFindMissing(t *testing.T) {
	_, ok, err := Find(t.TempDir())
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if ok {
		t.Error("expected no manifest in an empty temp dir")
	}
}
