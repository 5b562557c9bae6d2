package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Page identifies a top-level page.
type Page int

const (
	PageHome Page = iota
	PageSightings
	PageNotable
	PageContact
	pageCount
)

var pageTitles = [pageCount]string{"Home", "Sightings", "Notable", "Contact"}

func (p Page) String() string {
	if p < 0 || p >= pageCount {
		return "Unknown"
	}
	return pageTitles[p]
}

// compact reports whether the nav collapses into a menu toggle.
func (m Model) compact() bool {
	return m.width < LayoutCompactWidth
}

// renderNav draws the page tabs. On compact terminals it shows a menu
// toggle, expanded into a vertical list while menuOpen is set.
func (m Model) renderNav() string {
	styles := m.theme.Styles()
	brand := styles.Logo.Background(lipgloss.Color(m.theme.Surface)).Padding(0, 1).Render("Backyard Birds")

	if m.compact() {
		current := styles.NavActive.Render(m.page.String())
		toggle := styles.NavItem.Render("☰ Menu")
		bar := lipgloss.JoinHorizontal(lipgloss.Top, brand, current, toggle)
		bar = styles.NavBar.Width(m.width).Render(bar)
		if !m.menuOpen {
			return bar
		}
		items := make([]string, 0, pageCount)
		for p := Page(0); p < pageCount; p++ {
			items = append(items, m.navItem(p, styles, m.width))
		}
		return bar + "\n" + strings.Join(items, "\n")
	}

	tabs := make([]string, 0, pageCount+1)
	tabs = append(tabs, brand)
	for p := Page(0); p < pageCount; p++ {
		tabs = append(tabs, m.navItem(p, styles, 0))
	}
	return styles.NavBar.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m Model) navItem(p Page, styles Styles, width int) string {
	label := string(rune('1'+int(p))) + " " + p.String()
	style := styles.NavItem
	if p == m.page {
		style = styles.NavActive
	}
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(label)
}

// navHeight returns the number of lines the nav occupies.
func (m Model) navHeight() int {
	return lipgloss.Height(m.renderNav())
}
