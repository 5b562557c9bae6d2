package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	require.NoError(t, os.WriteFile(logPath, []byte(content.String()), 0644))

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "read all (0)", maxLines: 0, expected: expectedAll},
		{name: "read all (negative)", maxLines: -1, expected: expectedAll},
		{name: "read partial (5)", maxLines: 5, expected: expectedAll[5:]},
		{name: "read exactly all (10)", maxLines: 10, expected: expectedAll},
		{name: "read more than exists (20)", maxLines: 20, expected: expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRead_TailOfLongFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "long.log")
	var content strings.Builder
	for i := 1; i <= 1000; i++ {
		fmt.Fprintf(&content, "entry %d\n", i)
	}
	require.NoError(t, os.WriteFile(logPath, []byte(content.String()), 0644))

	got, err := Read(logPath, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"entry 998", "entry 999", "entry 1000"}, got)
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// bracketPalette marks each part so tests can check the split without ANSI.
func bracketPalette() Palette {
	mark := func(open, close string) lipgloss.Style {
		return lipgloss.NewStyle().Transform(func(s string) string { return open + s + close })
	}
	return Palette{
		Time:      mark("<t>", "</t>"),
		Source:    mark("<s>", "</s>"),
		Component: mark("<c>", "</c>"),
		Message:   mark("<m>", "</m>"),
		Failure:   mark("<f>", "</f>"),
	}
}

func TestHighlight(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty line", input: "", expected: ""},
		{name: "whitespace only", input: "   ", expected: "   "},
		{
			name:     "unstructured",
			input:    "something odd",
			expected: "<m>something odd</m>",
		},
		{
			name:     "component message",
			input:    "2026/10/17 08:15:02 client.go:97: ebird: fetching recent observations",
			expected: "<t>2026/10/17 08:15:02</t> <s>client.go:97:</s> <c>ebird:</c> <m>fetching recent observations</m>",
		},
		{
			name:     "failure",
			input:    "2026/10/17 08:15:03 sightings.go:40: sightings: fetch failed: HTTP error! status: 503",
			expected: "<t>2026/10/17 08:15:03</t> <s>sightings.go:40:</s> <c>sightings:</c> <f>fetch failed: HTTP error! status: 503</f>",
		},
		{
			name:     "no source",
			input:    "2026/10/17 08:15:02 backyard starting",
			expected: "<t>2026/10/17 08:15:02</t> <m>backyard starting</m>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Highlight(tt.input, bracketPalette()))
		})
	}
}

func TestHighlightLines(t *testing.T) {
	got := HighlightLines([]string{"a", ""}, bracketPalette())
	assert.Equal(t, []string{"<m>a</m>", ""}, got)
}
