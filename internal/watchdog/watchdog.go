// internal/watchdog/watchdog.go
package watchdog

import (
	"errors"

	"github.com/rs/zerolog"
)

// Fixed timer periods, in control-domain ticks.
const (
	InitCycles  = 1024
	ReadyCycles = 1024 * 1024
)

// State is the watchdog FSM state.
type State uint8

const (
	Initializing State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "initializing"
}

// ExitReason records why the watchdog last left Running.
type ExitReason uint8

const (
	ExitNone             ExitReason = iota
	ExitDisabled                    // enable deasserted
	ExitLostConfirmation            // ready without jsync
	ExitNeverReady                  // ready timer expired, never ready in this attempt
	ExitRegressed                   // ready timer expired after having been ready
)

func (r ExitReason) String() string {
	switch r {
	case ExitDisabled:
		return "disabled"
	case ExitLostConfirmation:
		return "lost_confirmation"
	case ExitNeverReady:
		return "never_ready"
	case ExitRegressed:
		return "regressed"
	}
	return "none"
}

// Inputs are the control-domain signals the watchdog observes.
type Inputs struct {
	Enable func() bool
	JSync  func() bool
	Ready  func() bool
	PRBS   func() bool // test pattern active
}

// Watchdog supervises link bring-up. It is the only writer of its state.
// Attach it to the control domain.
type Watchdog struct {
	in  Inputs
	log zerolog.Logger

	state, stateN State
	initT, initTN uint32
	rdyT, rdyTN   uint32
	seen, seenN   bool // ready observed during this Running stint
	exit, exitN   ExitReason
}

// New creates a watchdog in Initializing.
func New(in Inputs, log zerolog.Logger) (*Watchdog, error) {
	if in.Enable == nil || in.JSync == nil || in.Ready == nil || in.PRBS == nil {
		return nil, errors.New("watchdog: all inputs must be wired")
	}
	return &Watchdog{in: in, log: log}, nil
}

func (w *Watchdog) Eval() {
	w.stateN, w.initTN, w.rdyTN = w.state, w.initT, w.rdyT
	w.seenN, w.exitN = w.seen, w.exit

	enable := w.in.Enable()

	switch w.state {
	case Initializing:
		// The timer only runs while enable is observed; it never accumulates.
		if !enable {
			w.initTN = 0
			return
		}
		w.initTN = w.initT + 1
		if w.initTN >= InitCycles {
			w.stateN = Running
			w.initTN = 0
			w.rdyTN = 0
			w.seenN = false
		}

	case Running:
		ready := w.in.Ready()
		if ready {
			w.seenN = true
			w.rdyTN = 0
		} else {
			w.rdyTN = w.rdyT + 1
		}

		switch {
		case !enable:
			w.exitN = ExitDisabled
		case ready && !w.in.JSync():
			w.exitN = ExitLostConfirmation
		case w.rdyTN >= ReadyCycles:
			w.exitN = ExitNeverReady
			if w.seen {
				w.exitN = ExitRegressed
			}
		default:
			return
		}
		w.stateN = Initializing
		w.initTN = 0
		w.rdyTN = 0
	}
}

func (w *Watchdog) Commit() {
	if w.stateN != w.state {
		ev := w.log.Info()
		if w.stateN == Initializing && w.exitN != ExitDisabled {
			ev = w.log.Warn()
		}
		ev = ev.Stringer("from", w.state).Stringer("to", w.stateN)
		if w.stateN == Initializing {
			ev = ev.Stringer("reason", w.exitN)
		}
		ev.Msg("watchdog transition")
	}

	w.state, w.initT, w.rdyT = w.stateN, w.initTN, w.rdyTN
	w.seen, w.exit = w.seenN, w.exitN
}

// Restart is broadcast to every lane: asserted in Initializing unless a
// test pattern is active.
func (w *Watchdog) Restart() bool {
	return w.state == Initializing && !w.in.PRBS()
}

func (w *Watchdog) State() State { return w.state }

// LastExit is the reason for the most recent Running -> Initializing transition.
func (w *Watchdog) LastExit() ExitReason { return w.exit }

// Elapsed returns the init and ready timer values.
func (w *Watchdog) Elapsed() (initTicks, notReadyTicks uint32) { return w.initT, w.rdyT }
