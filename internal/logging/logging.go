// Package logging routes the standard logger for a full-screen TUI.
//
// The terminal belongs to Bubble Tea while the program runs, so log output
// either goes to a debug file or nowhere.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

// Setup configures the standard logger.
// If path is empty, logging is disabled (except log.Fatal/panic).
// If path is set, logs are appended to that file, creating parent
// directories as needed. The returned cleanup closes the file.
func Setup(path string) (cleanup func(), err error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	f, err := tea.LogToFile(path, "")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return func() {
		log.SetOutput(io.Discard)
		_ = f.Close()
	}, nil
}
