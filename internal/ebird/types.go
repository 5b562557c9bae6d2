package ebird

import (
	"strings"
	"time"
)

// Observation mirrors one record of the eBird observation endpoints. Field
// names follow the upstream JSON contract.
type Observation struct {
	SpeciesCode     string  `json:"speciesCode"`
	ComName         string  `json:"comName"`
	SciName         string  `json:"sciName"`
	LocID           string  `json:"locId,omitempty"`
	LocName         string  `json:"locName"`
	ObsDt           string  `json:"obsDt"`
	HowMany         *int    `json:"howMany,omitempty"`
	Lat             float64 `json:"lat,omitempty"`
	Lng             float64 `json:"lng,omitempty"`
	ObsValid        bool    `json:"obsValid,omitempty"`
	ObsReviewed     bool    `json:"obsReviewed,omitempty"`
	LocationPrivate bool    `json:"locationPrivate,omitempty"`
	SubID           string  `json:"subId,omitempty"`

	// UserDisplayName is only populated by detail=full requests.
	UserDisplayName string `json:"userDisplayName,omitempty"`
}

// Count returns the reported number of birds and whether one was given.
// A zero count is treated the same as a missing one.
func (o Observation) Count() (int, bool) {
	if o.HowMany == nil || *o.HowMany == 0 {
		return 0, false
	}
	return *o.HowMany, true
}

// Submitter returns the trimmed display name of the checklist owner.
func (o Observation) Submitter() string {
	return strings.TrimSpace(o.UserDisplayName)
}

const (
	obsMinuteLayout = "2006-01-02 15:04"
	obsDayLayout    = "2006-01-02"
)

// ParsedObsDt interprets ObsDt in loc. eBird reports observation times in the
// observer's local time without an offset, so the caller chooses the zone.
// The boolean is false when the value cannot be parsed.
func (o Observation) ParsedObsDt(loc *time.Location) (time.Time, bool) {
	return parseObsTime(o.ObsDt, loc)
}

func parseObsTime(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.In(loc), true
		}
	}
	for _, layout := range []string{obsMinuteLayout, "2006-01-02 15:04:05", obsDayLayout} {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Region is a selectable sub-national region code with its display label.
type Region struct {
	Code  string
	Label string
}

// ID joins the country prefix and region code into an eBird region identifier.
func (r Region) ID(countryPrefix string) string {
	prefix := strings.ToUpper(strings.TrimSpace(countryPrefix))
	code := strings.ToUpper(strings.TrimSpace(r.Code))
	if prefix == "" {
		return code
	}
	return prefix + "-" + code
}
