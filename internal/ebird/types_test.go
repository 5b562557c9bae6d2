package ebird

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservationCount(t *testing.T) {
	tests := []struct {
		name    string
		howMany *int
		want    int
		wantOK  bool
	}{
		{"missing", nil, 0, false},
		{"zero", intPtr(0), 0, false},
		{"present", intPtr(7), 7, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Observation{HowMany: tt.howMany}.Count()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestObservationDecodesUpstreamShape(t *testing.T) {
	raw := `{
		"speciesCode": "cowpig1",
		"comName": "Rock Pigeon",
		"sciName": "Columba livia",
		"locId": "L123",
		"locName": "Echo Park Lake",
		"obsDt": "2025-04-12 07:45",
		"howMany": 14,
		"lat": 34.0728,
		"lng": -118.2606,
		"obsValid": true,
		"obsReviewed": false,
		"locationPrivate": false,
		"subId": "S1",
		"userDisplayName": " Jo Birder "
	}`
	var obs Observation
	require.NoError(t, json.Unmarshal([]byte(raw), &obs))
	assert.Equal(t, "cowpig1", obs.SpeciesCode)
	assert.Equal(t, "Columba livia", obs.SciName)
	assert.Equal(t, "Echo Park Lake", obs.LocName)
	n, ok := obs.Count()
	assert.True(t, ok)
	assert.Equal(t, 14, n)
	assert.Equal(t, "Jo Birder", obs.Submitter())
	assert.True(t, obs.ObsValid)
}

func TestParsedObsDtLayouts(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	got, ok := Observation{ObsDt: "2025-04-12 07:45"}.ParsedObsDt(la)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.April, 12, 7, 45, 0, 0, la), got)

	got, ok = Observation{ObsDt: "2025-04-12"}.ParsedObsDt(time.UTC)
	require.True(t, ok)
	assert.Equal(t, 12, got.Day())

	got, ok = Observation{ObsDt: "2025-04-12T23:30:00Z"}.ParsedObsDt(la)
	require.True(t, ok)
	assert.Equal(t, la, got.Location())
	assert.Equal(t, 12, got.Day())

	_, ok = Observation{ObsDt: "yesterday"}.ParsedObsDt(la)
	assert.False(t, ok)
	_, ok = Observation{}.ParsedObsDt(nil)
	assert.False(t, ok)
}

func TestRegionID(t *testing.T) {
	assert.Equal(t, "US-CA", Region{Code: "ca"}.ID("US"))
	assert.Equal(t, "US-CA", Region{Code: " CA "}.ID(" us "))
	assert.Equal(t, "CA", Region{Code: "CA"}.ID(""))
}
