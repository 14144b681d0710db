// Package logfile persists captured lint output and rendered reports
// as flat text files.
package logfile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	rawName      = "lint-raw.log"
	latestName   = "lint-latest.log"
	detailedName = "lint-detailed.log"
)

// Dir is the directory lint logs are written into.
type Dir struct {
	path string
}

// New returns a Dir rooted at path, defaulting to the OS temp
// directory when path is empty.
func New(path string) Dir {
	if path == "" {
		path = os.TempDir()
	}
	return Dir{path: path}
}

// Path returns the directory path.
func (d Dir) Path() string {
	return d.path
}

// LatestPath returns where the "latest" log lives, whether or not it
// has been written yet.
func (d Dir) LatestPath() string {
	return filepath.Join(d.path, latestName)
}

// WriteRaw writes the captured output to the fixed raw log and returns
// its path.
func (d Dir) WriteRaw(output string) (string, error) {
	return d.write(rawName, output)
}

// WriteTimestamped writes the captured output to a snapshot log named
// after the given time and returns its path.
func (d Dir) WriteTimestamped(output string, now time.Time) (string, error) {
	name := fmt.Sprintf("lint-current-%s.log", now.Format("20060102_150405"))
	return d.write(name, output)
}

// WriteLatest writes the captured output to the fixed "latest" log and
// returns its path.
func (d Dir) WriteLatest(output string) (string, error) {
	return d.write(latestName, output)
}

// WriteDetailed writes the rendered detailed report and returns its
// path.
func (d Dir) WriteDetailed(rendered string) (string, error) {
	return d.write(detailedName, rendered)
}

func (d Dir) write(name, content string) (string, error) {
	path := filepath.Join(d.path, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return path, nil
}
