package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanizeDuration(t *testing.T) {
	cases := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"negative", -5 * time.Second, "just now"},
		{"seconds", 12 * time.Second, "just now"},
		{"minutes", 61 * time.Second, "1m"},
		{"hours_only", 2*time.Hour + 10*time.Second, "2h"},
		{"hours_minutes", 2*time.Hour + 3*time.Minute, "2h 3m"},
		{"days", 49 * time.Hour, "2d"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, humanizeDuration(tc.in))
		})
	}
}

func TestUpdatedLabel(t *testing.T) {
	at := time.Date(2026, 5, 1, 7, 5, 0, 0, time.UTC)
	assert.Equal(t, "updated 07:05 (just now)", updatedLabel(at, at.Add(10*time.Second)))
	assert.Equal(t, "updated 07:05 (4m ago)", updatedLabel(at, at.Add(4*time.Minute)))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Rhode Island", truncate("  Rhode Island  ", 20))
	assert.Equal(t, "Distric...", truncate("District of Columbia", 10))
	assert.Equal(t, "ab", truncate("abcd", 2))
	assert.Equal(t, "unbounded", truncate(" unbounded ", 0))
}

func TestWrapIndexAndClamp(t *testing.T) {
	assert.Equal(t, 3, wrapIndex(-1, 4))
	assert.Equal(t, 0, wrapIndex(4, 4))
	assert.Equal(t, 0, wrapIndex(3, 0))
	assert.Equal(t, 4, clamp(9, 0, 4))
	assert.Equal(t, 0, clamp(2, 0, -1))
}
