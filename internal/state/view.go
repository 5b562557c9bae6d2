package state

import (
	"github.com/five82/backyard/internal/ebird"
)

// Phase identifies which branch a view renders.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseFailed
	PhasePopulated
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseFailed:
		return "failed"
	case PhasePopulated:
		return "populated"
	default:
		return "idle"
	}
}

// NoLimit disables record capping in Succeed.
const NoLimit = 0

// View holds the records, loading flag, and error for one view instance.
// The zero value is an idle view.
type View struct {
	records []ebird.Observation
	loading bool
	err     string
	settled bool
}

// Begin enters Loading and drops the previous outcome.
func (v *View) Begin() {
	v.loading = true
	v.err = ""
	v.records = nil
	v.settled = false
}

// Succeed stores records, keeping at most limit of them in response order.
// A limit of NoLimit keeps every record.
func (v *View) Succeed(records []ebird.Observation, limit int) {
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	v.records = cloneRecords(records)
	v.err = ""
	v.loading = false
	v.settled = true
}

// Fail records the error message and leaves Loading.
func (v *View) Fail(err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	v.records = nil
	v.err = msg
	v.loading = false
	v.settled = true
}

// Phase derives the rendered branch. Loading wins over everything, an error
// shows only when not loading, and records only when neither holds.
func (v View) Phase() Phase {
	switch {
	case v.loading:
		return PhaseLoading
	case v.err != "":
		return PhaseFailed
	case v.settled:
		return PhasePopulated
	default:
		return PhaseIdle
	}
}

// Loading reports whether a request is outstanding.
func (v View) Loading() bool { return v.loading }

// Err returns the stored error message, empty when none.
func (v View) Err() string { return v.err }

// Records returns a copy of the stored records.
func (v View) Records() []ebird.Observation { return cloneRecords(v.records) }

// Len returns the number of stored records.
func (v View) Len() int { return len(v.records) }

// Settled reports whether a request has completed since the last Begin.
func (v View) Settled() bool { return v.settled }

func cloneRecords(records []ebird.Observation) []ebird.Observation {
	if len(records) == 0 {
		return nil
	}
	dup := make([]ebird.Observation, len(records))
	copy(dup, records)
	return dup
}
