// internal/config/validate.go
package config

import (
	"errors"
	"fmt"

	"github.com/tamzrod/jesdtx/internal/status"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil config")
	}

	// ------------------------------------------------------------
	// LINK SETTINGS
	// ------------------------------------------------------------

	l := cfg.Link
	if l.L < 1 {
		return fmt.Errorf("link: l must be >= 1 (got %d)", l.L)
	}
	if l.S < 1 || l.K < 1 {
		return fmt.Errorf("link: s and k must be >= 1 (got s=%d k=%d)", l.S, l.K)
	}
	if l.M < 0 || l.N < 0 || l.NP < 0 || l.F < 0 || l.CS < 0 {
		return errors.New("link: parameters must not be negative")
	}
	if l.SampleClockHz < 0 {
		return fmt.Errorf("link: sample_clock_hz must not be negative (got %v)", l.SampleClockHz)
	}

	// ------------------------------------------------------------
	// CLOCK DOMAINS
	// ------------------------------------------------------------

	if cfg.Clocks.ControlMHz <= 0 {
		return fmt.Errorf("clocks: control_mhz must be > 0 (got %v)", cfg.Clocks.ControlMHz)
	}
	if cfg.Clocks.SyncStages != 0 && cfg.Clocks.SyncStages < 2 {
		return fmt.Errorf("clocks: sync_stages must be >= 2 (got %d)", cfg.Clocks.SyncStages)
	}

	// one lane entry per physical lane
	if len(cfg.Lanes) != l.L {
		return fmt.Errorf("lanes: %d entries defined but link has l=%d", len(cfg.Lanes), l.L)
	}
	for i, ln := range cfg.Lanes {
		if ln.ClockMHz <= 0 {
			return fmt.Errorf("lane %d: clock_mhz must be > 0 (got %v)", i, ln.ClockMHz)
		}
		if ln.ILASTicks < 0 {
			return fmt.Errorf("lane %d: ilas_ticks must not be negative", i)
		}
	}

	// ------------------------------------------------------------
	// JSYNC
	// ------------------------------------------------------------

	switch cfg.JSync.Mode {
	case "", JSyncDirect, JSyncDifferential:
	default:
		return fmt.Errorf("jsync: unknown mode %q", cfg.JSync.Mode)
	}
	if cfg.JSync.LockTicks < 0 {
		return errors.New("jsync: lock_ticks must not be negative")
	}

	// ------------------------------------------------------------
	// SIM PACING
	// ------------------------------------------------------------

	if cfg.Sim.IntervalMs < 0 || cfg.Sim.TicksPerInterval < 0 {
		return errors.New("sim: interval_ms and ticks_per_interval must not be negative")
	}

	// ------------------------------------------------------------
	// HOST BRIDGE (OPT-IN)
	// ------------------------------------------------------------

	if h := cfg.Host; h != nil {
		if h.Endpoint == "" {
			return errors.New("host: endpoint required")
		}
		if h.TimeoutMs < 0 || h.PollMs < 0 {
			return errors.New("host: timeout_ms and poll_ms must not be negative")
		}

		// control and status blocks must not overlap (inclusive)
		cs, ce := uint32(h.ControlAddress), uint32(h.ControlAddress)+status.CtrlWords-1
		ss, se := uint32(h.StatusAddress), uint32(h.StatusAddress)+uint32(status.BlockWords(l.L))-1
		if se > 0xFFFF || ce > 0xFFFF {
			return errors.New("host: register block exceeds address space")
		}
		if !(ce < ss || cs > se) {
			return fmt.Errorf(
				"host: control block %d-%d overlaps status block %d-%d",
				cs, ce, ss, se,
			)
		}
	}

	return nil
}
