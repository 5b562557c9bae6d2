// Package clipboard copies text to the system clipboard, falling back to an
// OSC52 escape sequence when no native clipboard tool is available (for
// example over SSH).
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	native "github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Copier writes text to a clipboard.
type Copier interface {
	Copy(text string) error
}

// System copies through the platform clipboard, then OSC52.
type System struct {
	// Term receives the OSC52 sequence; nil means os.Stdout.
	Term io.Writer
	// TermName overrides $TERM; empty reads the environment.
	TermName string

	writeNative func(string) error
	unsupported bool
}

// NewSystem returns a System bound to the real clipboard and terminal.
func NewSystem() *System {
	return &System{
		writeNative: native.WriteAll,
		unsupported: native.Unsupported,
	}
}

// ErrUnavailable is returned when neither the native clipboard nor OSC52 can be used.
var ErrUnavailable = errors.New("clipboard unavailable")

// Copy places text on the clipboard.
func (s *System) Copy(text string) error {
	if s.writeNative != nil && !s.unsupported {
		err := s.writeNative(text)
		if err == nil {
			log.Printf("clipboard: copied %d bytes natively", len(text))
			return nil
		}
		log.Printf("clipboard: native copy failed: %v", err)
	}
	return s.copyOSC52(text)
}

func (s *System) copyOSC52(text string) error {
	term := s.TermName
	if term == "" {
		term = os.Getenv("TERM")
	}
	if term == "" || strings.EqualFold(term, "dumb") {
		return ErrUnavailable
	}

	w := s.Term
	if w == nil {
		w = os.Stdout
	}
	seq := osc52.New(text)
	if strings.HasPrefix(term, "screen") {
		seq = seq.Screen()
	} else if os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(w); err != nil {
		return fmt.Errorf("write osc52: %w", err)
	}
	log.Printf("clipboard: copied %d bytes via osc52", len(text))
	return nil
}
