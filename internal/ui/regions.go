package ui

import (
	"strings"

	"github.com/five82/backyard/internal/ebird"
)

// usRegions lists the states and district selectable for notable-bird searches.
var usRegions = []ebird.Region{
	{Code: "AL", Label: "Alabama"},
	{Code: "AK", Label: "Alaska"},
	{Code: "AZ", Label: "Arizona"},
	{Code: "AR", Label: "Arkansas"},
	{Code: "CA", Label: "California"},
	{Code: "CO", Label: "Colorado"},
	{Code: "CT", Label: "Connecticut"},
	{Code: "DE", Label: "Delaware"},
	{Code: "DC", Label: "District of Columbia"},
	{Code: "FL", Label: "Florida"},
	{Code: "GA", Label: "Georgia"},
	{Code: "HI", Label: "Hawaii"},
	{Code: "ID", Label: "Idaho"},
	{Code: "IL", Label: "Illinois"},
	{Code: "IN", Label: "Indiana"},
	{Code: "IA", Label: "Iowa"},
	{Code: "KS", Label: "Kansas"},
	{Code: "KY", Label: "Kentucky"},
	{Code: "LA", Label: "Louisiana"},
	{Code: "ME", Label: "Maine"},
	{Code: "MD", Label: "Maryland"},
	{Code: "MA", Label: "Massachusetts"},
	{Code: "MI", Label: "Michigan"},
	{Code: "MN", Label: "Minnesota"},
	{Code: "MS", Label: "Mississippi"},
	{Code: "MO", Label: "Missouri"},
	{Code: "MT", Label: "Montana"},
	{Code: "NE", Label: "Nebraska"},
	{Code: "NV", Label: "Nevada"},
	{Code: "NH", Label: "New Hampshire"},
	{Code: "NJ", Label: "New Jersey"},
	{Code: "NM", Label: "New Mexico"},
	{Code: "NY", Label: "New York"},
	{Code: "NC", Label: "North Carolina"},
	{Code: "ND", Label: "North Dakota"},
	{Code: "OH", Label: "Ohio"},
	{Code: "OK", Label: "Oklahoma"},
	{Code: "OR", Label: "Oregon"},
	{Code: "PA", Label: "Pennsylvania"},
	{Code: "RI", Label: "Rhode Island"},
	{Code: "SC", Label: "South Carolina"},
	{Code: "SD", Label: "South Dakota"},
	{Code: "TN", Label: "Tennessee"},
	{Code: "TX", Label: "Texas"},
	{Code: "UT", Label: "Utah"},
	{Code: "VT", Label: "Vermont"},
	{Code: "VA", Label: "Virginia"},
	{Code: "WA", Label: "Washington"},
	{Code: "WV", Label: "West Virginia"},
	{Code: "WI", Label: "Wisconsin"},
	{Code: "WY", Label: "Wyoming"},
}

// regionIndex returns the position of code in regions, or -1.
func regionIndex(regions []ebird.Region, code string) int {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return -1
	}
	for i, r := range regions {
		if r.Code == code {
			return i
		}
	}
	return -1
}
