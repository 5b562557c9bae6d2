package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/backyard/internal/cards"
	"github.com/five82/backyard/internal/logtail"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Nav bar and footer
	SurfaceAlt string // Card fill

	// Selection
	SelectionBg   string
	SelectionText string

	// Borders
	Border      string
	BorderFocus string

	// Text
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Card accents
	PlainCard   string // Recent sightings border
	NotableCard string // Notable birds border
	Badge       string // Notable badge fill
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Heading: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		NavBar: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)),

		NavActive: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true).
			Padding(0, 1),

		NavItem: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Field: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		FieldFocus: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 2),

		ButtonFocus: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Accent)).
			Foreground(lipgloss.Color(t.Background)).
			Bold(true).
			Padding(0, 2),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style
	Heading     lipgloss.Style

	// Chrome
	NavBar    lipgloss.Style
	NavActive lipgloss.Style
	NavItem   lipgloss.Style
	Footer    lipgloss.Style
	Logo      lipgloss.Style

	// Form
	Field       lipgloss.Style
	FieldFocus  lipgloss.Style
	Button      lipgloss.Style
	ButtonFocus lipgloss.Style
}

// CardStyle returns the card style for a variant.
func (t Theme) CardStyle(v cards.Variant) cards.Style {
	borderColor := t.PlainCard
	titleColor := t.Warning
	if v == cards.VariantNotable {
		borderColor = t.NotableCard
		titleColor = t.Accent
	}
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(0, 1)
	return cards.Style{
		Border: border,
		SelectedBorder: border.
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(titleColor)).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Italic(true),
		Line: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),
		Badge: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Badge)).
			Foreground(lipgloss.Color(t.Background)).
			Bold(true).
			Padding(0, 1),
	}
}

// LogPalette returns the palette for the session log overlay.
func (t Theme) LogPalette() logtail.Palette {
	return logtail.Palette{
		Time:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		Source:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Component: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Info)),
		Message:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		Failure:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)),
	}
}

// Theme definitions

var themes = map[string]Theme{
	"Meadow": meadowTheme(),
	"Dusk":   duskTheme(),
	"Slate":  slateTheme(),
}

var themeOrder = []string{"Meadow", "Dusk", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return meadowTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func meadowTheme() Theme {
	// Greens and warm yellows, after the amber/orange sighting cards.
	return Theme{
		Name: "Meadow",

		Background: "#10170f",
		Surface:    "#1a2418",
		SurfaceAlt: "#243222",

		SelectionBg:   "#3b5d2e",
		SelectionText: "#f4f1de",

		Border:      "#4a6340",
		BorderFocus: "#e9c46a",

		Text:    "#ecebd8",
		Muted:   "#a3ad8f",
		Faint:   "#6f7a62",
		Accent:  "#8ecae6",
		Success: "#95d5b2",
		Warning: "#f4a261",
		Danger:  "#e76f51",
		Info:    "#90be6d",

		PlainCard:   "#e9c46a", // yellow-200 on the page
		NotableCard: "#8ecae6", // blue-200 on the page
		Badge:       "#f6e27f",
	}
}

func duskTheme() Theme {
	// Evening palette, muted violets with a warm highlight.
	return Theme{
		Name: "Dusk",

		Background: "#15131f",
		Surface:    "#1e1b2e",
		SurfaceAlt: "#2a2640",

		SelectionBg:   "#433c66",
		SelectionText: "#f2e9e4",

		Border:      "#4a4468",
		BorderFocus: "#f2cc8f",

		Text:    "#e8e3f0",
		Muted:   "#b0a8c8",
		Faint:   "#736b8f",
		Accent:  "#a8c5ff",
		Success: "#9ad1a4",
		Warning: "#f2cc8f",
		Danger:  "#f07178",
		Info:    "#89ddff",

		PlainCard:   "#f2cc8f",
		NotableCard: "#a8c5ff",
		Badge:       "#f2cc8f",
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800

		SelectionBg:   "#0284c7", // sky-600
		SelectionText: "#f8fafc", // slate-50

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500

		PlainCard:   "#fbbf24", // amber-400
		NotableCard: "#60a5fa", // blue-400
		Badge:       "#fde68a", // amber-200
	}
}
