// Package cards turns eBird observations into display cards.
//
// Card construction is pure: the same observation and formatter always yield
// the same Card, and the same Card, style and width always render the same
// string. Both the recent-sightings grid and the notable-birds results use it.
package cards
