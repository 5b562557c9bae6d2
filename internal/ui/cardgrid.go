package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/backyard/internal/cards"
)

// renderCardGrid lays cards out left to right, top to bottom. It returns the
// rendered grid and the line on which the selected card's row starts, so the
// page viewport can keep the selection visible. selected < 0 highlights nothing.
func renderCardGrid(list []cards.Card, selected int, style cards.Style, width int) (string, int) {
	if len(list) == 0 {
		return "", 0
	}
	cardWidth := min(CardWidth, max(width, 1))
	columns := cards.Columns(width, cardWidth)

	rendered := make([]string, len(list))
	for i, c := range list {
		s := style
		s.Selected = i == selected
		rendered[i] = c.Render(s, cardWidth)
	}

	selectedLine := 0
	if selected >= columns && selected < len(list) {
		rowStart := selected - selected%columns
		selectedLine = lipgloss.Height(cards.Grid(rendered[:rowStart], columns))
	}
	return cards.Grid(rendered, columns), selectedLine
}
