// internal/lane/receiver.go
package lane

import "sync/atomic"

// Receiver stands in for the downstream converter: it asserts jsync once
// every lane has been transmitting for LockTicks of its own clock.
type Receiver struct {
	lanes     []func() bool
	lockTicks int

	count, countN int
	sync, syncN   bool

	hold atomic.Bool
}

func NewReceiver(transmitting []func() bool, lockTicks int) *Receiver {
	if lockTicks < 1 {
		lockTicks = 1
	}
	return &Receiver{lanes: transmitting, lockTicks: lockTicks}
}

// Hold forces jsync low while on. Safe to call from any goroutine.
func (r *Receiver) Hold(on bool) { r.hold.Store(on) }

func (r *Receiver) Eval() {
	all := len(r.lanes) > 0
	for _, tx := range r.lanes {
		if !tx() {
			all = false
			break
		}
	}

	if !all || r.hold.Load() {
		r.countN, r.syncN = 0, false
		return
	}

	r.countN = r.count
	if r.count < r.lockTicks {
		r.countN++
	}
	r.syncN = r.countN >= r.lockTicks
}

func (r *Receiver) Commit() {
	r.count, r.sync = r.countN, r.syncN
}

// Sync is the jsync level driven back to the transmitter.
func (r *Receiver) Sync() bool { return r.sync }
