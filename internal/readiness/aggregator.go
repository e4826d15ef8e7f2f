// internal/readiness/aggregator.go
package readiness

import (
	"errors"

	"github.com/tamzrod/jesdtx/internal/cdc"
)

// ErrNoLanes is returned when an aggregator is built without lanes.
var ErrNoLanes = errors.New("readiness: at least one lane required")

// Aggregator reduces per-lane readiness (each in its own domain) into one
// control-domain boolean. Attach it to the control domain.
type Aggregator struct {
	lanes []func() bool
	sync  *cdc.Synchronizer
}

// New builds an aggregator over the lanes' readiness signals.
func New(lanes []func() bool, stages int) (*Aggregator, error) {
	if len(lanes) == 0 {
		return nil, ErrNoLanes
	}
	for _, l := range lanes {
		if l == nil {
			return nil, errors.New("readiness: nil lane signal")
		}
	}

	a := &Aggregator{lanes: append([]func() bool(nil), lanes...)}
	a.sync = cdc.NewSynchronizer(a.all, stages)
	return a, nil
}

// all is recomputed on every control tick; nothing is cached.
func (a *Aggregator) all() bool {
	for _, l := range a.lanes {
		if !l() {
			return false
		}
	}
	return true
}

func (a *Aggregator) Eval()   { a.sync.Eval() }
func (a *Aggregator) Commit() { a.sync.Commit() }

// Ready is the synchronized AND of all lanes.
func (a *Aggregator) Ready() bool { return a.sync.Out() }

// Latency is the number of control ticks for a lane change to show in Ready.
func (a *Aggregator) Latency() int { return a.sync.Stages() }
