// Package logtail reads and highlights the session debug log.
//
// Read extracts the last N lines of a file with a ring buffer, so the help
// overlay can show recent activity without loading a large log into memory:
//
//	lines, err := logtail.Read(path, 200)
//
// Highlight understands the standard library logger layout used by
// internal/logging (date, time, short file, then an optional "component:"
// prefix) and styles each part with a lipgloss Palette. Messages mentioning
// failures are drawn with the Failure style. Unrecognized lines pass through
// with the Message style, so Highlight never fails.
//
// Read returns nil, nil for a missing file; the overlay treats that as an
// empty log.
package logtail
