package state

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/backyard/internal/ebird"
)

func makeRecords(n int) []ebird.Observation {
	out := make([]ebird.Observation, n)
	for i := range out {
		out[i] = ebird.Observation{SpeciesCode: fmt.Sprintf("sp%02d", i)}
	}
	return out
}

func TestView_ZeroValueIsIdle(t *testing.T) {
	var v View
	assert.Equal(t, PhaseIdle, v.Phase())
	assert.False(t, v.Loading())
	assert.Empty(t, v.Err())
	assert.Zero(t, v.Len())
	assert.False(t, v.Settled())
}

func TestView_BeginClearsPreviousOutcome(t *testing.T) {
	var v View
	v.Succeed(makeRecords(3), NoLimit)
	v.Begin()
	assert.Equal(t, PhaseLoading, v.Phase())
	assert.Zero(t, v.Len())

	v.Fail(errors.New("boom"))
	v.Begin()
	assert.Equal(t, PhaseLoading, v.Phase())
	assert.Empty(t, v.Err())
}

func TestView_SucceedCapsAndPreservesOrder(t *testing.T) {
	for _, n := range []int{0, 1, 11, 12, 13, 15, 40} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			var v View
			v.Begin()
			in := makeRecords(n)
			v.Succeed(in, 12)

			want := min(n, 12)
			require.Equal(t, want, v.Len())
			got := v.Records()
			for i := range got {
				assert.Equal(t, in[i].SpeciesCode, got[i].SpeciesCode)
			}
			assert.Equal(t, PhasePopulated, v.Phase())
			assert.False(t, v.Loading())
		})
	}
}

func TestView_SucceedWithoutLimitKeepsAll(t *testing.T) {
	var v View
	v.Succeed(makeRecords(30), NoLimit)
	assert.Equal(t, 30, v.Len())
}

func TestView_FailStoresMessage(t *testing.T) {
	var v View
	v.Begin()
	v.Fail(&ebird.HTTPError{Status: 503})
	assert.Equal(t, PhaseFailed, v.Phase())
	assert.Equal(t, "HTTP error! status: 503", v.Err())
	assert.False(t, v.Loading())
	assert.Zero(t, v.Len())

	var n View
	n.Fail(nil)
	assert.Equal(t, "unknown error", n.Err())
}

func TestView_RecordsAreCopied(t *testing.T) {
	in := makeRecords(2)
	var v View
	v.Succeed(in, NoLimit)

	in[0].SpeciesCode = "mutated"
	out := v.Records()
	assert.Equal(t, "sp00", out[0].SpeciesCode)

	out[1].SpeciesCode = "mutated"
	assert.Equal(t, "sp01", v.Records()[1].SpeciesCode)
}

func TestView_LoadingWinsOverError(t *testing.T) {
	v := View{loading: true, err: "stale", settled: true}
	assert.Equal(t, PhaseLoading, v.Phase())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "loading", PhaseLoading.String())
	assert.Equal(t, "failed", PhaseFailed.String())
	assert.Equal(t, "populated", PhasePopulated.String())
}
