package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the nav collapses
	// into a menu toggle.
	LayoutCompactWidth = 72

	// LayoutSplitWidth is the minimum width to place the region picker
	// beside the notable results instead of above them.
	LayoutSplitWidth = 110
)

// Card sizing.
const (
	// CardWidth is the outer width of one sighting card.
	CardWidth = 36

	// RecentSightingsLimit caps the recent sightings grid.
	RecentSightingsLimit = 12
)

// Timing constants.
const (
	// NoticeDuration is how long the contact form status stays visible.
	NoticeDuration = 5 * time.Second

	// ClockRefresh is how often "updated n ago" labels are recomputed.
	ClockRefresh = 30 * time.Second

	// SendTimeout bounds one contact relay request.
	SendTimeout = 20 * time.Second
)

// Session log overlay limits.
const (
	// SessionLogLines is the number of trailing lines read for the overlay.
	SessionLogLines = 400
)
