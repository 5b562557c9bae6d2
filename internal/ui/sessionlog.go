package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/backyard/internal/logtail"
)

const sessionLogDisabledText = "Debug logging is off. Start backyard with -debug <file> to record a session log."

// refreshLogViewport sizes the overlay and fills it with highlighted lines.
func (m *Model) refreshLogViewport() {
	if !m.ready {
		return
	}
	w, h := max(m.width-4, 10), max(m.height-4, 3)
	if m.logViewport.Width == 0 && m.logViewport.Height == 0 {
		m.logViewport = viewport.New(w, h)
	} else {
		m.logViewport.Width = w
		m.logViewport.Height = h
	}

	styles := m.theme.Styles()
	var content string
	switch {
	case m.logPath == "":
		content = styles.MutedText.Render(sessionLogDisabledText)
	case m.logErr != nil:
		content = styles.DangerText.Render("Could not read log: " + m.logErr.Error())
	case len(m.logLines) == 0:
		content = styles.MutedText.Render("No log entries yet.")
	default:
		content = strings.Join(logtail.HighlightLines(m.logLines, m.theme.LogPalette()), "\n")
	}
	m.logViewport.SetContent(content)
	m.logViewport.GotoBottom()
}

func (m Model) handleSessionLogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.SessionLog), key.Matches(msg, m.keys.Quit):
		m.showLog = false
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m, readSessionLogCmd(m.logPath)
	case key.Matches(msg, m.keys.ScrollTop):
		m.logViewport.GotoTop()
		return m, nil
	}
	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

// renderSessionLog draws the log overlay.
func (m Model) renderSessionLog() string {
	styles := m.theme.Styles()
	title := styles.Heading.Render("Session Log") + "  " +
		styles.FaintText.Render("r reload · esc close")
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Width(max(m.width-2, 10))
	return title + "\n" + box.Render(m.logViewport.View())
}
