package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/backyard/internal/ebird"
)

// regionItem adapts a Region to the list component.
type regionItem ebird.Region

func (i regionItem) Title() string       { return i.Label }
func (i regionItem) Description() string { return i.Code }
func (i regionItem) FilterValue() string { return i.Label + " " + i.Code }

const (
	pickerWidth  = 32
	pickerHeight = 16
)

// regionPicker is the filterable state list that emits regionSubmittedMsg.
// Submissions carry the subscription of whichever view is bound to it; zero
// means nobody is listening.
type regionPicker struct {
	list         list.Model
	subscription int
}

func newRegionPicker(regions []ebird.Region, preselect string) regionPicker {
	items := make([]list.Item, len(regions))
	for i, r := range regions {
		items[i] = regionItem(r)
	}

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)

	l := list.New(items, delegate, pickerWidth, pickerHeight)
	l.Title = "Find Notable Birds by State"
	l.SetShowHelp(false)
	l.SetStatusBarItemName("state", "states")
	l.DisableQuitKeybindings()
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)
	if idx := regionIndex(regions, preselect); idx >= 0 {
		l.Select(idx)
	}
	return regionPicker{list: l}
}

// applyTheme recolors the list chrome.
func (p *regionPicker) applyTheme(th Theme) {
	p.list.Styles.Title = lipgloss.NewStyle().
		Background(lipgloss.Color(th.Accent)).
		Foreground(lipgloss.Color(th.Background)).
		Bold(true).
		Padding(0, 1)

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color(th.BorderFocus)).
		BorderForeground(lipgloss.Color(th.BorderFocus))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color(th.Muted)).
		BorderForeground(lipgloss.Color(th.BorderFocus))
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.
		Foreground(lipgloss.Color(th.Text))
	delegate.Styles.NormalDesc = delegate.Styles.NormalDesc.
		Foreground(lipgloss.Color(th.Faint))
	p.list.SetDelegate(delegate)
}

// Filtering reports whether the filter prompt is capturing keys.
func (p regionPicker) Filtering() bool {
	return p.list.FilterState() == list.Filtering
}

// Selected returns the highlighted region.
func (p regionPicker) Selected() (ebird.Region, bool) {
	item, ok := p.list.SelectedItem().(regionItem)
	if !ok {
		return ebird.Region{}, false
	}
	return ebird.Region(item), true
}

// Submit emits the highlighted region. Blank selections produce nothing.
func (p regionPicker) Submit() tea.Cmd {
	region, ok := p.Selected()
	if !ok || strings.TrimSpace(region.Code) == "" {
		return nil
	}
	return submitRegion(region, p.subscription)
}

func submitRegion(region ebird.Region, subscription int) tea.Cmd {
	return func() tea.Msg {
		return regionSubmittedMsg{Code: region.Code, Label: region.Label, subscription: subscription}
	}
}

func (p *regionPicker) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return cmd
}

func (p *regionPicker) SetHeight(h int) {
	p.list.SetSize(pickerWidth, max(h, 6))
}

func (p regionPicker) View() string {
	return p.list.View()
}
