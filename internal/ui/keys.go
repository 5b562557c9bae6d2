package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	SessionLog key.Binding
	Escape     key.Binding

	// Pages
	NextPage      key.Binding
	PrevPage      key.Binding
	PageHome      key.Binding
	PageSightings key.Binding
	PageNotable   key.Binding
	PageContact   key.Binding
	ToggleMenu    key.Binding

	// Scrolling
	ScrollTop    key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding

	// Cards
	Up         key.Binding
	Down       key.Binding
	Refresh    key.Binding
	Copy       key.Binding
	NextResult key.Binding
	PrevResult key.Binding

	// Forms
	Focus     key.Binding
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Confirm   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		SessionLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Session log"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Leave field / close"),
		),

		// Pages
		NextPage: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous page"),
		),
		PageHome: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Home"),
		),
		PageSightings: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Sightings"),
		),
		PageNotable: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Notable"),
		),
		PageContact: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Contact"),
		),
		ToggleMenu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Toggle menu"),
		),

		// Scrolling
		ScrollTop: key.NewBinding(
			key.WithKeys("t", "home"),
			key.WithHelp("t", "Scroll to top"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " "),
			key.WithHelp("pgdown", "Page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Half page down"),
		),

		// Cards
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Previous card"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Next card"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Refresh sightings"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy card"),
		),
		NextResult: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Next notable bird"),
		),
		PrevResult: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Previous notable bird"),
		),

		// Forms
		Focus: key.NewBinding(
			key.WithKeys("enter", "i"),
			key.WithHelp("enter", "Edit form"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "Send message"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPage, k.ScrollTop, k.CycleTheme, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Pages
		{k.NextPage, k.PrevPage, k.PageHome, k.PageSightings, k.PageNotable, k.PageContact, k.ToggleMenu},
		// Scrolling
		{k.ScrollTop, k.PageUp, k.PageDown, k.HalfPageUp, k.HalfPageDown},
		// Cards
		{k.Up, k.Down, k.Refresh, k.Copy, k.NextResult, k.PrevResult},
		// Contact form
		{k.Focus, k.NextField, k.PrevField, k.Submit, k.Escape},
		// General
		{k.CycleTheme, k.SessionLog, k.Help, k.Quit},
	}
}
