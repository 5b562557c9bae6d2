package ui

import (
	"context"
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/backyard/internal/cards"
	"github.com/five82/backyard/internal/ebird"
	"github.com/five82/backyard/internal/emailrelay"
)

// fakeFetcher is an in-memory ebird.Fetcher.
type fakeFetcher struct {
	mu           sync.Mutex
	recent       []ebird.Observation
	recentErr    error
	notable      []ebird.Observation
	notableErr   error
	panicRecent  bool
	recentCalls  int
	notableCalls int
	lastRegion   string
}

func (f *fakeFetcher) FetchRecentNearby(ctx context.Context, lat, lng float64) ([]ebird.Observation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recentCalls++
	if f.panicRecent {
		panic("boom")
	}
	return f.recent, f.recentErr
}

func (f *fakeFetcher) FetchNotableByRegion(ctx context.Context, code string) ([]ebird.Observation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notableCalls++
	f.lastRegion = code
	return f.notable, f.notableErr
}

// fakeSender records messages and returns err.
type fakeSender struct {
	mu   sync.Mutex
	sent []emailrelay.Message
	err  error
}

func (s *fakeSender) Send(ctx context.Context, msg emailrelay.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return s.err
}

// collect runs cmd and flattens batches into the produced messages. Ticks
// that would sleep are skipped.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(200 * time.Millisecond):
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// findMsg returns the first message of type T.
func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func observations(n int) []ebird.Observation {
	out := make([]ebird.Observation, n)
	for i := range out {
		count := i + 1
		out[i] = ebird.Observation{
			SpeciesCode: fmt.Sprintf("sp%02d", i+1),
			ComName:     fmt.Sprintf("Bird %02d", i+1),
			SciName:     fmt.Sprintf("Avis %02d", i+1),
			LocName:     fmt.Sprintf("Yard %02d", i+1),
			ObsDt:       "2024-03-05 07:30",
			HowMany:     &count,
		}
	}
	return out
}

func testFormatter() cards.DateFormatter {
	return cards.NewDateFormatter("en-US", time.UTC)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyEnter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}
