package ui

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/five82/backyard/internal/cards"
	"github.com/five82/backyard/internal/ebird"
	"github.com/five82/backyard/internal/state"
)

// Recent sightings texts.
const (
	sightingsLoadingText = "Loading recent bird sightings..."
	sightingsErrorPrefix = "Error loading bird sightings: "
	sightingsEmptyText   = "No recent sightings found."
)

// sightingsView shows the most recent observations near a fixed point.
type sightingsView struct {
	ctx       context.Context
	fetcher   ebird.Fetcher
	lat       float64
	lng       float64
	placeName string
	formatter cards.DateFormatter
	clock     clockwork.Clock

	state     state.View
	mounted   bool
	updatedAt time.Time
	spinner   spinner.Model

	selected    int
	selectedKey string
}

type sightingsOptions struct {
	Context   context.Context
	Fetcher   ebird.Fetcher
	Lat       float64
	Lng       float64
	PlaceName string
	Formatter cards.DateFormatter
	Clock     clockwork.Clock
}

func newSightingsView(opts sightingsOptions) sightingsView {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return sightingsView{
		ctx:       ctx,
		fetcher:   opts.Fetcher,
		lat:       opts.Lat,
		lng:       opts.Lng,
		placeName: opts.PlaceName,
		formatter: opts.Formatter,
		clock:     clock,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Mount starts the initial fetch the first time the page is shown.
func (v *sightingsView) Mount() tea.Cmd {
	if v.mounted {
		return nil
	}
	v.mounted = true
	return v.Refresh()
}

// Refresh re-enters Loading from any state and issues a new fetch.
func (v *sightingsView) Refresh() tea.Cmd {
	wasLoading := v.state.Loading()
	v.state.Begin()
	fetch := fetchSightingsCmd(v.ctx, v.fetcher, v.lat, v.lng)
	if wasLoading {
		return fetch
	}
	return tea.Batch(fetch, v.spinner.Tick)
}

// Update applies fetch results and spinner ticks.
func (v *sightingsView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case sightingsLoadedMsg:
		if msg.err != nil {
			logFetchFailure("sightings", "fetch", msg.err)
			v.state.Fail(msg.err)
		} else {
			v.state.Succeed(msg.records, RecentSightingsLimit)
			log.Printf("sightings: showing %d of %d records", v.state.Len(), len(msg.records))
		}
		v.updatedAt = v.clock.Now()
		v.restoreSelection()
		return nil

	case spinner.TickMsg:
		if !v.state.Loading() {
			return nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return cmd
	}
	return nil
}

// handleKey processes page-local keys. The bool reports whether the key was used.
func (v *sightingsView) handleKey(msg tea.KeyMsg, keys keyMap) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Refresh):
		return v.Refresh(), true
	case key.Matches(msg, keys.Down):
		v.moveSelection(1)
		return nil, true
	case key.Matches(msg, keys.Up):
		v.moveSelection(-1)
		return nil, true
	}
	return nil, false
}

func (v *sightingsView) moveSelection(delta int) {
	n := v.state.Len()
	if n == 0 {
		return
	}
	v.selected = wrapIndex(v.selected+delta, n)
	v.selectedKey = v.keyAt(v.selected)
}

// restoreSelection keeps the highlighted card across refreshes when its key
// still exists, otherwise clamps the index into range.
func (v *sightingsView) restoreSelection() {
	records := v.state.Records()
	if v.selectedKey != "" {
		for i, obs := range records {
			if cards.Key(obs.SpeciesCode, i) == v.selectedKey {
				v.selected = i
				return
			}
		}
	}
	v.selected = clamp(v.selected, 0, len(records)-1)
	v.selectedKey = v.keyAt(v.selected)
}

func (v sightingsView) keyAt(i int) string {
	records := v.state.Records()
	if i < 0 || i >= len(records) {
		return ""
	}
	return cards.Key(records[i].SpeciesCode, i)
}

// Cards builds the plain cards for the current records, in order.
func (v sightingsView) Cards() []cards.Card {
	records := v.state.Records()
	out := make([]cards.Card, len(records))
	for i, obs := range records {
		out[i] = cards.Plain(obs, v.formatter)
	}
	return out
}

// Keys returns the card keys in display order.
func (v sightingsView) Keys() []string {
	records := v.state.Records()
	out := make([]string, len(records))
	for i, obs := range records {
		out[i] = cards.Key(obs.SpeciesCode, i)
	}
	return out
}

// SelectedCard returns the highlighted card, if any.
func (v sightingsView) SelectedCard() (cards.Card, bool) {
	list := v.Cards()
	if v.selected < 0 || v.selected >= len(list) {
		return cards.Card{}, false
	}
	return list[v.selected], true
}

// Render draws the page body and returns the line of the selected card row.
func (v sightingsView) Render(th Theme, width int) (string, int) {
	styles := th.Styles()
	var b strings.Builder

	b.WriteString(styles.Heading.Render("Recent Sightings in " + v.placeName))
	b.WriteString("\n")
	if v.state.Settled() && !v.updatedAt.IsZero() {
		b.WriteString(styles.FaintText.Render(updatedLabel(v.updatedAt, v.clock.Now()) + " · r to refresh"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch v.state.Phase() {
	case state.PhaseLoading:
		b.WriteString(v.spinner.View() + " " + styles.MutedText.Render(sightingsLoadingText))
	case state.PhaseFailed:
		b.WriteString(styles.DangerText.Render(sightingsErrorPrefix + v.state.Err()))
	case state.PhasePopulated:
		if v.state.Len() == 0 {
			b.WriteString(styles.MutedText.Render(sightingsEmptyText))
			break
		}
		header := strings.Count(b.String(), "\n")
		grid, line := renderCardGrid(v.Cards(), v.selected, th.CardStyle(cards.VariantPlain), width)
		b.WriteString(grid)
		return b.String(), header + line
	}
	return b.String(), 0
}
