package ui

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/backyard/internal/cards"
	"github.com/five82/backyard/internal/clipboard"
	"github.com/five82/backyard/internal/ebird"
	"github.com/five82/backyard/internal/emailrelay"
	"github.com/five82/backyard/internal/logtail"
)

// sightingsLoadedMsg carries the result of a recent-sightings fetch.
type sightingsLoadedMsg struct {
	records []ebird.Observation
	err     error
}

// notableLoadedMsg carries the result of a notable-by-region fetch.
type notableLoadedMsg struct {
	region  ebird.Region
	records []ebird.Observation
	err     error
}

// regionSubmittedMsg is emitted by the region picker. Only the view bound to
// the same subscription acts on it.
type regionSubmittedMsg struct {
	Code         string
	Label        string
	subscription int
}

// contactSentMsg reports the outcome of one relay send.
type contactSentMsg struct {
	err error
}

// noticeExpiredMsg clears a contact notice if it is still the current one.
type noticeExpiredMsg struct {
	id int
}

// sessionLogMsg carries the tail of the debug log.
type sessionLogMsg struct {
	lines []string
	err   error
}

// clockTickMsg refreshes relative timestamps.
type clockTickMsg time.Time

// clipboardMsg reports the outcome of a copy.
type clipboardMsg struct {
	what string
	err  error
}

// logFetchFailure records a failed observation fetch. Rejected tokens get a
// hint since the page itself only shows the status.
func logFetchFailure(component, what string, err error) {
	switch ebird.StatusCode(err) {
	case http.StatusUnauthorized, http.StatusForbidden:
		log.Printf("%s: %s failed: %v (check api_token or %s)", component, what, err, tokenEnvHint)
	default:
		log.Printf("%s: %s failed: %v", component, what, err)
	}
}

const tokenEnvHint = "BACKYARD_API_TOKEN"

// guard runs fn, converting a panic into the message built by onPanic so a
// view never stays in Loading.
func guard(component string, fn func() tea.Msg, onPanic func(error) tea.Msg) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				err := fmt.Errorf("%v", r)
				log.Printf("%s: recovered panic: %v", component, err)
				msg = onPanic(err)
			}
		}()
		return fn()
	}
}

func fetchSightingsCmd(ctx context.Context, f ebird.Fetcher, lat, lng float64) tea.Cmd {
	return guard("sightings", func() tea.Msg {
		if f == nil {
			return sightingsLoadedMsg{err: fmt.Errorf("observation client not configured")}
		}
		log.Printf("sightings: fetching recent observations near %v,%v", lat, lng)
		records, err := f.FetchRecentNearby(ctx, lat, lng)
		return sightingsLoadedMsg{records: records, err: err}
	}, func(err error) tea.Msg {
		return sightingsLoadedMsg{err: err}
	})
}

func fetchNotableCmd(ctx context.Context, f ebird.Fetcher, region ebird.Region) tea.Cmd {
	return guard("notable", func() tea.Msg {
		if f == nil {
			return notableLoadedMsg{region: region, err: fmt.Errorf("observation client not configured")}
		}
		log.Printf("notable: fetching notable birds for %s", region.Code)
		records, err := f.FetchNotableByRegion(ctx, region.Code)
		return notableLoadedMsg{region: region, records: records, err: err}
	}, func(err error) tea.Msg {
		return notableLoadedMsg{region: region, err: err}
	})
}

func sendContactCmd(ctx context.Context, s emailrelay.Sender, msg emailrelay.Message) tea.Cmd {
	return guard("contact", func() tea.Msg {
		if s == nil {
			return contactSentMsg{err: emailrelay.ErrNotConfigured}
		}
		sendCtx, cancel := context.WithTimeout(ctx, SendTimeout)
		defer cancel()
		return contactSentMsg{err: s.Send(sendCtx, msg)}
	}, func(err error) tea.Msg {
		return contactSentMsg{err: err}
	})
}

func noticeTimerCmd(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}

func clockTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func readSessionLogCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return sessionLogMsg{}
		}
		lines, err := logtail.Read(path, SessionLogLines)
		return sessionLogMsg{lines: lines, err: err}
	}
}

func copyCardCmd(c clipboard.Copier, card cards.Card) tea.Cmd {
	return guard("clipboard", func() tea.Msg {
		if c == nil {
			return clipboardMsg{what: card.Title, err: clipboard.ErrUnavailable}
		}
		return clipboardMsg{what: card.Title, err: c.Copy(card.Text())}
	}, func(err error) tea.Msg {
		return clipboardMsg{what: card.Title, err: err}
	})
}
