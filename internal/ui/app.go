package ui

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"

	"github.com/five82/backyard/internal/cards"
	"github.com/five82/backyard/internal/clipboard"
	"github.com/five82/backyard/internal/ebird"
	"github.com/five82/backyard/internal/emailrelay"
	"github.com/five82/backyard/internal/prefs"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Fetcher   ebird.Fetcher
	Sender    emailrelay.Sender
	Clipboard clipboard.Copier
	Clock     clockwork.Clock
	Formatter cards.DateFormatter

	Lat       float64
	Lng       float64
	PlaceName string

	// Regions overrides the notable-bird picker entries.
	Regions    []ebird.Region
	LastRegion string

	ThemeName string
	PrefsPath string
	LogPath   string

	NoticeDelay time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	prefsPath string
	logPath   string
	clipboard clipboard.Copier
	keys      keyMap
	help      help.Model

	// UI state
	theme    Theme
	page     Page
	width    int
	height   int
	ready    bool
	menuOpen bool
	status   string

	// Page body
	viewport     viewport.Model
	selectedLine int
	followSel    bool

	// Pages
	sightings sightingsView
	notable   regionSearchView
	contact   contactForm

	// Overlays
	showHelp    bool
	showLog     bool
	logViewport viewport.Model
	logLines    []string
	logErr      error

	startup tea.Cmd
}

// New creates a new Bubble Tea model. All page components are mounted
// immediately, so the recent sightings fetch starts with the program.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Meadow"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:       ctx,
		prefsPath: prefsPath,
		logPath:   opts.LogPath,
		clipboard: opts.Clipboard,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     GetTheme(themeName),
		page:      PageHome,
	}

	m.sightings = newSightingsView(sightingsOptions{
		Context:   ctx,
		Fetcher:   opts.Fetcher,
		Lat:       opts.Lat,
		Lng:       opts.Lng,
		PlaceName: opts.PlaceName,
		Formatter: opts.Formatter,
		Clock:     opts.Clock,
	})
	m.notable = newRegionSearchView(regionSearchOptions{
		Context:    ctx,
		Fetcher:    opts.Fetcher,
		Formatter:  opts.Formatter,
		Regions:    opts.Regions,
		LastRegion: opts.LastRegion,
		OnSubmit:   rememberRegion(prefsPath),
	})
	m.contact = newContactForm(contactOptions{
		Context:     ctx,
		Sender:      opts.Sender,
		NoticeDelay: opts.NoticeDelay,
	})
	m.notable.picker.applyTheme(m.theme)

	m.startup = tea.Batch(m.sightings.Mount(), m.notable.Mount())
	return m
}

func rememberRegion(path string) func(ebird.Region) {
	return func(r ebird.Region) {
		if path == "" {
			return
		}
		if err := prefs.Update(path, func(p *prefs.Prefs) { p.LastRegion = r.Code }); err != nil {
			log.Printf("prefs: save last region: %v", err)
		}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.startup,
		clockTickCmd(ClockRefresh),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case sightingsLoadedMsg:
		cmd = m.sightings.Update(msg)

	case notableLoadedMsg, regionSubmittedMsg:
		cmd = m.notable.Update(msg)

	case spinner.TickMsg:
		cmd = tea.Batch(m.sightings.Update(msg), m.notable.Update(msg))

	case contactSentMsg, noticeExpiredMsg:
		cmd = m.contact.Update(msg)

	case clockTickMsg:
		cmd = clockTickCmd(ClockRefresh)

	case sessionLogMsg:
		m.logLines, m.logErr = msg.lines, msg.err
		m.refreshLogViewport()
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			log.Printf("clipboard: copy failed: %v", msg.err)
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Copied " + msg.what
		}

	default:
		// List filtering and cursor blinks arrive as their own messages.
		cmd = tea.Batch(m.notable.picker.Update(msg), m.contact.Update(msg))
	}

	m.refreshContent()
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showLog {
		return m.renderSessionLog()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderNav(),
		m.viewport.View(),
		m.renderFooter(),
	)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}
	m.status = ""

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.showLog {
		return m.handleSessionLogKey(msg)
	}

	// Focused fields and the picker filter get every key but ctrl+c.
	if m.capturing() {
		cmd := m.pageKey(msg)
		m.refreshContent()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.notable.picker.applyTheme(m.theme)
		if m.prefsPath != "" {
			name := m.theme.Name
			if err := prefs.Update(m.prefsPath, func(p *prefs.Prefs) { p.Theme = name }); err != nil {
				log.Printf("prefs: save theme: %v", err)
			}
		}
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.SessionLog):
		m.showLog = true
		m.refreshLogViewport()
		return m, readSessionLogCmd(m.logPath)

	case key.Matches(msg, m.keys.NextPage):
		return m.switchPage(Page(wrapIndex(int(m.page)+1, int(pageCount))))

	case key.Matches(msg, m.keys.PrevPage):
		return m.switchPage(Page(wrapIndex(int(m.page)-1, int(pageCount))))

	case key.Matches(msg, m.keys.PageHome):
		return m.switchPage(PageHome)
	case key.Matches(msg, m.keys.PageSightings):
		return m.switchPage(PageSightings)
	case key.Matches(msg, m.keys.PageNotable):
		return m.switchPage(PageNotable)
	case key.Matches(msg, m.keys.PageContact):
		return m.switchPage(PageContact)

	case key.Matches(msg, m.keys.ToggleMenu):
		if m.compact() {
			m.menuOpen = !m.menuOpen
			m.layout()
		}
		return m, nil

	case key.Matches(msg, m.keys.ScrollTop):
		m.viewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
		return m, nil
	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfPageDown()
		return m, nil
	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfPageUp()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if card, ok := m.selectedCard(); ok {
			return m, copyCardCmd(m.clipboard, card)
		}
		return m, nil
	}

	cmd := m.pageKey(msg)
	m.refreshContent()
	return m, cmd
}

// capturing reports whether the current page owns the keyboard.
func (m Model) capturing() bool {
	switch m.page {
	case PageNotable:
		return m.notable.capturing()
	case PageContact:
		return m.contact.capturing()
	}
	return false
}

func (m *Model) pageKey(msg tea.KeyMsg) tea.Cmd {
	var (
		cmd     tea.Cmd
		handled bool
	)
	switch m.page {
	case PageSightings:
		cmd, handled = m.sightings.handleKey(msg, m.keys)
		m.followSel = handled
	case PageNotable:
		cmd, handled = m.notable.handleKey(msg, m.keys)
		m.followSel = handled && (key.Matches(msg, m.keys.NextResult) || key.Matches(msg, m.keys.PrevResult))
	case PageContact:
		cmd, _ = m.contact.handleKey(msg, m.keys)
	}
	return cmd
}

func (m Model) switchPage(p Page) (tea.Model, tea.Cmd) {
	if m.page == PageContact && p != PageContact {
		m.contact.Deactivate()
	}
	m.page = p
	m.menuOpen = false
	m.layout()
	m.viewport.GotoTop()

	var cmd tea.Cmd
	switch p {
	case PageSightings:
		cmd = m.sightings.Mount()
	case PageNotable:
		cmd = m.notable.Mount()
	}
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.notable.Unmount()
	return m, tea.Quit
}

func (m Model) selectedCard() (cards.Card, bool) {
	switch m.page {
	case PageSightings:
		return m.sightings.SelectedCard()
	case PageNotable:
		return m.notable.SelectedCard()
	}
	return cards.Card{}, false
}

// layout resizes the page viewport and components for the terminal size.
func (m *Model) layout() {
	if !m.ready {
		return
	}
	bodyHeight := max(m.height-m.navHeight()-1, 1)
	if m.viewport.Width == 0 && m.viewport.Height == 0 {
		m.viewport = viewport.New(m.width, bodyHeight)
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = bodyHeight
	}
	m.contact.setWidth(m.width)
	m.notable.picker.SetHeight(min(pickerHeight, bodyHeight-2))
	m.refreshContent()
}

// refreshContent re-renders the current page into the viewport and keeps the
// selected card visible after a selection move.
func (m *Model) refreshContent() {
	if !m.ready || m.viewport.Width == 0 {
		return
	}
	content, line := m.renderPage(m.width)
	m.viewport.SetContent(content)
	m.selectedLine = line

	if m.followSel {
		m.followSel = false
		switch {
		case line < m.viewport.YOffset:
			m.viewport.SetYOffset(line)
		case line >= m.viewport.YOffset+m.viewport.Height:
			m.viewport.SetYOffset(line)
		}
	}
}

// renderPage draws the current page body.
func (m Model) renderPage(width int) (string, int) {
	switch m.page {
	case PageSightings:
		return m.sightings.Render(m.theme, width)
	case PageNotable:
		return m.notable.Render(m.theme, width)
	case PageContact:
		return m.contact.Render(m.theme, width), 0
	default:
		return renderHome(m.theme, width), 0
	}
}

const statusMinWidth = 12

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	left := m.help.ShortHelpView(m.keys.ShortHelp())
	right := ""
	switch {
	case m.status != "":
		right = styles.InfoText.Render(truncate(m.status, max(m.width/2, statusMinWidth)))
	case m.viewport.YOffset > 0:
		right = styles.AccentText.Render("↑ top")
	}
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	line := left + lipgloss.NewStyle().Width(gap).Render("") + right
	return styles.Footer.Width(m.width).MaxHeight(1).Render(line)
}

// Run starts the program and blocks until the user quits or ctx is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
		opts.Context = ctx
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
