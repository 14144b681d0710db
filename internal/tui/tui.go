// Package tui implements the Bubble Tea browser over parsed lint
// results.
package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sprite-ai/lintlens/internal/model"
)

// Model is the top-level Bubble Tea model for lintlens browse.
type Model struct {
	files  []*model.FileDiagnostics // descending by diagnostic count
	prefix string

	// UI state
	width  int
	height int

	fileIndex int // currently selected file
	diagIndex int // currently selected diagnostic within the file

	// Source context overlay for the selected diagnostic
	showContext bool
	context     *sourceContext

	showHelp bool
}

// New creates a browser model over a result set. Files are presented
// in the same order the reports use: most diagnostics first.
func New(rs *model.ResultSet, prefix string) Model {
	files := make([]*model.FileDiagnostics, len(rs.Files))
	copy(files, rs.Files)
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Total() > files[j].Total()
	})

	return Model{files: files, prefix: prefix}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Down):
			if fd := m.currentFile(); fd != nil && m.diagIndex < fd.Total()-1 {
				m.diagIndex++
				m.refreshContext()
			}

		case key.Matches(msg, keys.Up):
			if m.diagIndex > 0 {
				m.diagIndex--
				m.refreshContext()
			}

		case key.Matches(msg, keys.NextFile):
			if m.fileIndex < len(m.files)-1 {
				m.fileIndex++
				m.diagIndex = 0
				m.refreshContext()
			}

		case key.Matches(msg, keys.PrevFile):
			if m.fileIndex > 0 {
				m.fileIndex--
				m.diagIndex = 0
				m.refreshContext()
			}

		case key.Matches(msg, keys.Context):
			m.showContext = !m.showContext
			m.refreshContext()

		case key.Matches(msg, keys.Help):
			m.showHelp = !m.showHelp
		}
	}

	return m, nil
}

func (m *Model) currentFile() *model.FileDiagnostics {
	if len(m.files) == 0 {
		return nil
	}
	return m.files[m.fileIndex]
}

func (m *Model) currentDiagnostic() (model.Diagnostic, bool) {
	fd := m.currentFile()
	if fd == nil || m.diagIndex >= fd.Total() {
		return model.Diagnostic{}, false
	}
	return fd.Diagnostics[m.diagIndex], true
}

func (m *Model) refreshContext() {
	m.context = nil
	if !m.showContext {
		return
	}
	fd := m.currentFile()
	d, ok := m.currentDiagnostic()
	if fd == nil || !ok {
		return
	}
	m.context = loadContext(fd.Path, d.Line)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// Run starts the browser and blocks until the user quits.
func Run(rs *model.ResultSet, prefix string) error {
	p := tea.NewProgram(New(rs, prefix), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
