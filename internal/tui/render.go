package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sprite-ai/lintlens/internal/lint"
	"github.com/sprite-ai/lintlens/internal/model"
)

func (m Model) renderMain() string {
	fileListWidth := m.fileListWidth()
	diagWidth := m.width - fileListWidth - 1 // -1 for gap

	bodyHeight := m.height - 2 // status bar
	if m.showContext {
		bodyHeight -= contextRadius*2 + 4 // context pane + borders
		if bodyHeight < 5 {
			bodyHeight = 5
		}
	}

	fileList := m.renderFileList(fileListWidth, bodyHeight)
	diagView := m.renderDiagView(diagWidth, bodyHeight)

	main := lipgloss.JoinHorizontal(lipgloss.Top, fileList, " ", diagView)

	sections := []string{main}
	if m.showContext {
		sections = append(sections, m.renderContext(m.width-2))
	}
	sections = append(sections, m.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) fileListWidth() int {
	maxLen := 20
	for _, fd := range m.files {
		if n := len(fd.DisplayPath(m.prefix)); n > maxLen {
			maxLen = n
		}
	}
	w := maxLen + 10 // padding + counts
	if w > m.width/3 {
		w = m.width / 3
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) renderFileList(width, height int) string {
	var b strings.Builder

	for i, fd := range m.files {
		name := fd.DisplayPath(m.prefix)

		maxName := width - 10
		if maxName > 0 && len(name) > maxName {
			name = "…" + name[len(name)-maxName+1:]
		}

		errCount, warnCount := fd.Counts()
		counts := fmt.Sprintf("%dE %dW", errCount, warnCount)
		line := fmt.Sprintf("%-*s %s", maxName, name, counts)

		style := fileItemStyle
		if i == m.fileIndex {
			style = fileItemSelectedStyle
		}

		b.WriteString(style.Width(width - 4).Render(line))
		if i < len(m.files)-1 {
			b.WriteByte('\n')
		}
	}

	return fileListStyle.Width(width).Height(height - 2).Render(b.String())
}

func (m Model) renderDiagView(width, height int) string {
	innerHeight := height - 2

	fd := m.currentFile()
	if fd == nil {
		return diagViewStyle.Width(width).Height(innerHeight).Render("No issues")
	}

	errCount, warnCount := fd.Counts()
	header := fileHeaderStyle.Render(fmt.Sprintf("%s — %d errors, %d warnings",
		fd.DisplayPath(m.prefix), errCount, warnCount))

	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')

	visible := innerHeight - 2 // header
	if visible < 1 {
		visible = 1
	}

	// Keep the selected diagnostic in view.
	start := 0
	if m.diagIndex >= visible {
		start = m.diagIndex - visible + 1
	}
	end := start + visible
	if end > fd.Total() {
		end = fd.Total()
	}

	for i := start; i < end; i++ {
		b.WriteString(m.renderDiagLine(fd.Diagnostics[i], i == m.diagIndex, width-4))
		if i < end-1 {
			b.WriteByte('\n')
		}
	}

	return diagViewStyle.Width(width).Height(innerHeight).Render(b.String())
}

func (m Model) renderDiagLine(d model.Diagnostic, selected bool, width int) string {
	pos := positionStyle.Render(fmt.Sprintf("%d:%d", d.Line, d.Column))

	var sev string
	if d.Severity == model.SeverityError {
		sev = errorStyle.Render("error  ")
	} else {
		sev = warningStyle.Render("warning")
	}

	msgStyle := messageStyle
	if selected {
		msgStyle = messageSelectedStyle
	}

	maxMsg := width - 30
	msg := msgStyle.Render(truncate(d.Message, maxMsg))
	rule := ruleStyle.Render(d.Rule)

	return pos + " " + sev + " " + msg + " " + rule
}

func (m Model) renderContext(width int) string {
	d, ok := m.currentDiagnostic()
	if !ok || m.context == nil {
		return contextViewStyle.Width(width).Render("No source context")
	}

	var b strings.Builder
	b.WriteString(contextHeaderStyle.Render(fmt.Sprintf("source around %d:%d", d.Line, d.Column)))
	b.WriteByte('\n')

	if m.context.err != "" {
		b.WriteString(m.context.err)
		return contextViewStyle.Width(width).Render(b.String())
	}

	for i, line := range m.context.lines {
		lineNum := m.context.startLine + i
		num := contextLineNumStyle.Render(fmt.Sprintf("%d", lineNum))

		mark := "  "
		if lineNum == d.Line {
			mark = contextMarkStyle.Render("> ")
		}

		content := renderTokens(m.context.tokens[i], line, width-12)
		b.WriteString(num + " " + mark + content)
		if i < len(m.context.lines)-1 {
			b.WriteByte('\n')
		}
	}

	return contextViewStyle.Width(width).Render(b.String())
}

// renderTokens renders a highlighted source line, falling back to the
// raw line when no tokens are present.
func renderTokens(tokens []lint.Token, raw string, maxWidth int) string {
	if len(tokens) == 0 {
		return truncate(raw, maxWidth)
	}

	var b strings.Builder
	written := 0
	for _, tok := range tokens {
		text := tok.Text
		if written+len(text) > maxWidth {
			text = truncate(text, maxWidth-written)
		}
		if text == "" {
			break
		}
		if tok.Color != "" {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(tok.Color)).Render(text))
		} else {
			b.WriteString(text)
		}
		written += len(text)
		if written >= maxWidth {
			break
		}
	}
	return b.String()
}

func (m Model) renderStatusBar() string {
	fd := m.currentFile()

	var left string
	if fd == nil {
		left = "no issues"
	} else {
		left = fmt.Sprintf("file %d/%d · issue %d/%d",
			m.fileIndex+1, len(m.files), m.diagIndex+1, fd.Total())
	}

	help := statusKeyStyle.Render("?") + statusBarStyle.Render(" help · ") +
		statusKeyStyle.Render("q") + statusBarStyle.Render(" quit")

	return statusBarStyle.Width(m.width).Render(left) + "\n" + help
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(helpHeaderStyle.Render("Keyboard Shortcuts"))
	b.WriteByte('\n')

	bindings := []struct {
		keys string
		desc string
	}{
		{"↑/k, ↓/j", "move between diagnostics"},
		{"n/tab, N/S-tab", "next / previous file"},
		{"enter/o", "toggle source context"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}
	for _, bind := range bindings {
		b.WriteString(fmt.Sprintf("  %s  %s\n", helpKeyStyle.Width(16).Render(bind.keys), bind.desc))
	}

	return b.String()
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) > max {
		return s[:max-1] + "…"
	}
	return s
}
