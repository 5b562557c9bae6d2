package cards

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/backyard/internal/ebird"
)

// Variant selects the card layout.
type Variant int

const (
	VariantPlain Variant = iota
	VariantNotable
)

// NotableBadge is the badge text shown on notable cards.
const NotableBadge = "Notable"

// countUnknown is shown on plain cards when no count was reported.
const countUnknown = "Not specified"

// Card is the display model for one observation.
type Card struct {
	Variant  Variant
	Title    string
	Subtitle string
	Lines    []string
	Badge    string
}

// Key returns the stable identity of a card within one rendered list.
// The index keeps duplicate species codes distinct.
func Key(speciesCode string, index int) string {
	return speciesCode + "-" + strconv.Itoa(index)
}

// Plain builds a recent-sightings card.
func Plain(obs ebird.Observation, f DateFormatter) Card {
	count := countUnknown
	if n, ok := obs.Count(); ok {
		count = strconv.Itoa(n)
	}
	return Card{
		Variant:  VariantPlain,
		Title:    obs.ComName,
		Subtitle: "(" + obs.SciName + ")",
		Lines: []string{
			"Location: " + obs.LocName,
			"Date: " + f.Date(obs.ObsDt),
			"Count: " + count,
		},
	}
}

// Notable builds a notable-birds card. Count and submitter lines are only
// present when the observation carries them.
func Notable(obs ebird.Observation, f DateFormatter) Card {
	lines := []string{obs.LocName, f.Date(obs.ObsDt)}
	if n, ok := obs.Count(); ok {
		lines = append(lines, "Count: "+strconv.Itoa(n))
	}
	if by := obs.Submitter(); by != "" {
		lines = append(lines, "By: "+by)
	}
	return Card{
		Variant:  VariantNotable,
		Title:    obs.ComName,
		Subtitle: obs.SciName,
		Lines:    lines,
		Badge:    NotableBadge,
	}
}

// Text returns the card as plain text, one field per line.
func (c Card) Text() string {
	var b strings.Builder
	b.WriteString(c.Title)
	if c.Subtitle != "" {
		b.WriteString(" ")
		b.WriteString(c.Subtitle)
	}
	if c.Badge != "" {
		b.WriteString(" [" + c.Badge + "]")
	}
	for _, line := range c.Lines {
		b.WriteString("\n")
		b.WriteString(line)
	}
	return b.String()
}

// Style holds the lipgloss styles used to draw a card.
type Style struct {
	Border         lipgloss.Style
	SelectedBorder lipgloss.Style
	Title          lipgloss.Style
	Subtitle       lipgloss.Style
	Line           lipgloss.Style
	Badge          lipgloss.Style
	Selected       bool
}

// DefaultStyle is a colorless style for tests and plain terminals.
func DefaultStyle() Style {
	border := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	return Style{
		Border:         border,
		SelectedBorder: border.BorderStyle(lipgloss.ThickBorder()),
		Title:          lipgloss.NewStyle().Bold(true),
		Subtitle:       lipgloss.NewStyle().Italic(true),
		Line:           lipgloss.NewStyle(),
		Badge:          lipgloss.NewStyle().Bold(true).Padding(0, 1),
	}
}

// minCardWidth keeps very narrow terminals from collapsing a card to nothing.
const minCardWidth = 16

// Render draws the card at the given outer width.
func (c Card) Render(s Style, width int) string {
	if width < minCardWidth {
		width = minCardWidth
	}
	frame := s.Border
	if s.Selected {
		frame = s.SelectedBorder
	}
	inner := width - frame.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	rows := make([]string, 0, len(c.Lines)+3)
	title := s.Title.Render(c.Title)
	if c.Badge != "" {
		badge := s.Badge.Render(c.Badge)
		gap := inner - lipgloss.Width(title) - lipgloss.Width(badge)
		if gap >= 1 {
			title = title + strings.Repeat(" ", gap) + badge
		} else {
			rows = append(rows, badge)
		}
	}
	rows = append(rows, title)
	if c.Subtitle != "" {
		rows = append(rows, s.Subtitle.Render(c.Subtitle))
	}
	for _, line := range c.Lines {
		rows = append(rows, s.Line.Render(line))
	}

	body := lipgloss.NewStyle().Width(inner).Render(strings.Join(rows, "\n"))
	return frame.Render(body)
}

// Grid lays rendered cards out in rows of columns cards each.
func Grid(rendered []string, columns int) string {
	if len(rendered) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}
	rows := make([]string, 0, (len(rendered)+columns-1)/columns)
	for start := 0; start < len(rendered); start += columns {
		end := min(start+columns, len(rendered))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Columns returns how many cards of cardWidth fit in width.
func Columns(width, cardWidth int) int {
	if cardWidth <= 0 {
		return 1
	}
	return max(1, width/cardWidth)
}
