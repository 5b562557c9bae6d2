package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if maxLines > 0 && len(lines) > maxLines {
			// Drop from the front; append reallocates, so the backing array
			// stays near 2*maxLines.
			lines = lines[len(lines)-maxLines:]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return lines, nil
}

// Palette styles the parts of a session log line.
type Palette struct {
	Time      lipgloss.Style
	Source    lipgloss.Style
	Component lipgloss.Style
	Message   lipgloss.Style
	Failure   lipgloss.Style
}

// lineRe matches the standard logger layout with Lshortfile:
//
//	2026/10/17 08:15:02 client.go:97: ebird: fetch failed: ...
var lineRe = regexp.MustCompile(`^(\S+ )?(\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}(?:\.\d+)?) (?:(\S+\.go:\d+:) )?(?:([a-z][a-z0-9_-]*): )?(.*)$`)

var failureWords = []string{"failed", "error", "panic"}

// Highlight styles one log line. Lines that do not match the logger layout
// are rendered with the message style unchanged.
func Highlight(line string, p Palette) string {
	if strings.TrimSpace(line) == "" {
		return line
	}
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return p.Message.Render(line)
	}

	parts := make([]string, 0, 4)
	parts = append(parts, p.Time.Render(strings.TrimSpace(m[1]+m[2])))
	if m[3] != "" {
		parts = append(parts, p.Source.Render(m[3]))
	}
	if m[4] != "" {
		parts = append(parts, p.Component.Render(m[4]+":"))
	}
	msgStyle := p.Message
	if isFailure(m[5]) {
		msgStyle = p.Failure
	}
	parts = append(parts, msgStyle.Render(m[5]))
	return strings.Join(parts, " ")
}

// HighlightLines applies Highlight to every line.
func HighlightLines(lines []string, p Palette) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Highlight(line, p)
	}
	return out
}

func isFailure(msg string) bool {
	lower := strings.ToLower(msg)
	for _, word := range failureWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
