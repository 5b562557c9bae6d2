package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/backyard/internal/cards"
	"github.com/five82/backyard/internal/ebird"
	"github.com/five82/backyard/internal/state"
)

const notableLoadingText = "Loading notable birds for your state..."

var subscriptionSeq atomic.Int64

func nextSubscription() int {
	return int(subscriptionSeq.Add(1))
}

// regionSearchView fetches notable birds for the region chosen in its picker.
type regionSearchView struct {
	ctx       context.Context
	fetcher   ebird.Fetcher
	formatter cards.DateFormatter
	onSubmit  func(ebird.Region)

	picker  regionPicker
	id      int
	bound   bool
	state   state.View
	label   string
	spinner spinner.Model

	selected int
}

type regionSearchOptions struct {
	Context    context.Context
	Fetcher    ebird.Fetcher
	Formatter  cards.DateFormatter
	Regions    []ebird.Region
	LastRegion string
	// OnSubmit is called with every accepted submission, e.g. to persist it.
	OnSubmit func(ebird.Region)
}

func newRegionSearchView(opts regionSearchOptions) regionSearchView {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	regions := opts.Regions
	if regions == nil {
		regions = usRegions
	}
	return regionSearchView{
		ctx:       ctx,
		fetcher:   opts.Fetcher,
		formatter: opts.Formatter,
		onSubmit:  opts.OnSubmit,
		picker:    newRegionPicker(regions, opts.LastRegion),
		id:        nextSubscription(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Mount binds the picker to this view. Repeated mounts keep one binding.
func (v *regionSearchView) Mount() tea.Cmd {
	if v.bound {
		return nil
	}
	v.bound = true
	v.picker.subscription = v.id
	return nil
}

// Unmount releases the picker binding; later submissions are ignored.
func (v *regionSearchView) Unmount() {
	v.bound = false
	v.picker.subscription = 0
}

// Update handles submissions, fetch results and spinner ticks.
func (v *regionSearchView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case regionSubmittedMsg:
		if !v.bound || msg.subscription != v.id {
			return nil
		}
		return v.trigger(ebird.Region{Code: msg.Code, Label: msg.Label})

	case notableLoadedMsg:
		if msg.err != nil {
			logFetchFailure("notable", "fetch for "+msg.region.Code, msg.err)
			v.state.Fail(msg.err)
		} else {
			v.state.Succeed(msg.records, state.NoLimit)
			log.Printf("notable: %d records for %s", v.state.Len(), msg.region.Code)
		}
		v.selected = clamp(v.selected, 0, v.state.Len()-1)
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

// trigger starts a search. Blank codes are ignored.
func (v *regionSearchView) trigger(region ebird.Region) tea.Cmd {
	region.Code = strings.ToUpper(strings.TrimSpace(region.Code))
	if region.Code == "" {
		return nil
	}
	if strings.TrimSpace(region.Label) == "" {
		region.Label = region.Code
	}

	wasLoading := v.state.Loading()
	v.state.Begin()
	v.label = region.Label
	v.selected = 0
	if v.onSubmit != nil {
		v.onSubmit(region)
	}

	fetch := fetchNotableCmd(v.ctx, v.fetcher, region)
	if wasLoading {
		return fetch
	}
	return tea.Batch(fetch, v.spinner.Tick)
}

// capturing reports whether the picker filter owns the keyboard.
func (v regionSearchView) capturing() bool {
	return v.picker.Filtering()
}

// handleKey routes page keys to the picker and the results selection.
func (v *regionSearchView) handleKey(msg tea.KeyMsg, keys keyMap) (tea.Cmd, bool) {
	if v.capturing() {
		return v.picker.Update(msg), true
	}
	switch {
	case key.Matches(msg, keys.Confirm):
		return v.picker.Submit(), true
	case key.Matches(msg, keys.NextResult):
		if n := v.state.Len(); n > 0 {
			v.selected = wrapIndex(v.selected+1, n)
		}
		return nil, true
	case key.Matches(msg, keys.PrevResult):
		if n := v.state.Len(); n > 0 {
			v.selected = wrapIndex(v.selected-1, n)
		}
		return nil, true
	}
	return v.picker.Update(msg), true
}

// Cards builds notable cards for every record.
func (v regionSearchView) Cards() []cards.Card {
	records := v.state.Records()
	out := make([]cards.Card, len(records))
	for i, obs := range records {
		out[i] = cards.Notable(obs, v.formatter)
	}
	return out
}

// Keys returns the card keys in display order.
func (v regionSearchView) Keys() []string {
	records := v.state.Records()
	out := make([]string, len(records))
	for i, obs := range records {
		out[i] = cards.Key(obs.SpeciesCode, i)
	}
	return out
}

// SelectedCard returns the highlighted result, if any.
func (v regionSearchView) SelectedCard() (cards.Card, bool) {
	list := v.Cards()
	if v.selected < 0 || v.selected >= len(list) {
		return cards.Card{}, false
	}
	return list[v.selected], true
}

// Results renders the results section alone. Idle views and settled
// searches with no records render nothing.
func (v regionSearchView) Results(th Theme, width int) (string, int) {
	styles := th.Styles()
	switch v.state.Phase() {
	case state.PhaseLoading:
		return v.spinner.View() + " " + styles.InfoText.Render(notableLoadingText), 0
	case state.PhaseFailed:
		return styles.DangerText.Render(v.state.Err()), 0
	case state.PhasePopulated:
		if v.state.Len() == 0 {
			return "", 0
		}
		header := styles.Heading.Render(fmt.Sprintf("Notable Birds in %s (%d found)", v.label, v.state.Len()))
		grid, line := renderCardGrid(v.Cards(), v.selected, th.CardStyle(cards.VariantNotable), width)
		return header + "\n\n" + grid, line + 2
	}
	return "", 0
}

// Render draws the picker and the results, side by side on wide terminals.
func (v regionSearchView) Render(th Theme, width int) (string, int) {
	picker := v.picker.View()
	if width >= LayoutSplitWidth {
		resultsWidth := width - pickerWidth - 2
		results, line := v.Results(th, resultsWidth)
		return lipgloss.JoinHorizontal(lipgloss.Top, picker, "  ", results), line
	}
	results, line := v.Results(th, width)
	if results == "" {
		return picker, 0
	}
	top := picker + "\n\n"
	return top + results, lipgloss.Height(top) - 1 + line
}
