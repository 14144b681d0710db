// Package config loads lintlens project configuration from a
// lintlens.toml manifest.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file looked up when discovering configuration.
const ManifestName = "lintlens.toml"

// Config is the merged project configuration.
type Config struct {
	Lint    LintConfig    `toml:"lint"`
	Project ProjectConfig `toml:"project"`
	Logs    LogsConfig    `toml:"logs"`
}

// LintConfig describes the external lint command.
type LintConfig struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}

// ProjectConfig scopes which output lines belong to this project.
type ProjectConfig struct {
	// Prefix is the absolute-path substring identifying in-project
	// files in lint output.
	Prefix string `toml:"prefix"`

	// Extensions mark file-header lines in lint output.
	Extensions []string `toml:"extensions"`
}

// LogsConfig controls where logs are written. An empty Dir means the
// OS temp directory.
type LogsConfig struct {
	Dir string `toml:"dir"`
}

// Default returns the configuration used when no manifest exists: run
// `npm run lint`, attribute files under the working directory, log to
// the OS temp directory.
func Default() (Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("resolving working directory: %w", err)
	}
	return Config{
		Lint: LintConfig{Command: "npm", Args: []string{"run", "lint"}},
		Project: ProjectConfig{
			Prefix:     cwd + string(filepath.Separator),
			Extensions: []string{".ts", ".tsx"},
		},
	}, nil
}

// Find walks up from startDir looking for a manifest. Returns the
// manifest path and whether one was found.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("resolving start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes the manifest at path, filling unset fields from the
// defaults.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	var fileCfg Config
	if _, err := toml.DecodeFile(path, &fileCfg); err != nil {
		return Config{}, fmt.Errorf("%s: parsing TOML: %w", path, err)
	}

	if fileCfg.Lint.Command != "" {
		cfg.Lint.Command = fileCfg.Lint.Command
		cfg.Lint.Args = fileCfg.Lint.Args
	}
	if fileCfg.Project.Prefix != "" {
		cfg.Project.Prefix = fileCfg.Project.Prefix
	}
	if len(fileCfg.Project.Extensions) > 0 {
		cfg.Project.Extensions = fileCfg.Project.Extensions
	}
	if fileCfg.Logs.Dir != "" {
		cfg.Logs.Dir = fileCfg.Logs.Dir
	}

	return cfg, nil
}

// Discover finds and loads the nearest manifest above startDir,
// falling back to defaults when none exists.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default()
	}
	return Load(path)
}
