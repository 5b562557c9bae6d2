// Package state holds the per-view fetch state shared by the sighting pages.
//
// # Overview
//
// A View tracks one request cycle: the records returned, whether a request is
// outstanding, and the last error message. The rendered branch is derived from
// those fields by Phase:
//
//	Idle ──Begin──> Loading ──Succeed──> Populated
//	                   │
//	                   └────Fail───────> Failed
//
// Begin is valid from any phase, so a refresh or a new submission re-enters
// Loading and clears the previous outcome.
//
// # Precedence
//
// Phase applies a fixed order: Loading wins whenever the loading flag is set,
// Failed is reported only when not loading, and Populated only when neither
// holds. A populated view may hold zero records; callers decide how to render
// that (a "no results" line or nothing at all).
//
// # Copying
//
// Records are copied on the way in and out so a caller mutating a returned
// slice cannot alter what the view renders next.
//
// # Concurrency
//
// View is not synchronized. It lives inside a Bubble Tea model and is only
// touched from the update loop; fetch results reach it as messages.
package state
