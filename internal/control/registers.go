// internal/control/registers.go
package control

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tamzrod/jesdtx/internal/cdc"
	"github.com/tamzrod/jesdtx/internal/clock"
	"github.com/tamzrod/jesdtx/internal/status"
)

var (
	ErrNoRegister = errors.New("control: no such register")
	ErrReadOnly   = errors.New("control: register is read-only")
)

// Sources are the core signals the register file observes.
// Ready and Restart live in the control domain; JSync may come from anywhere.
type Sources struct {
	Ready    func() bool
	JSync    func() bool
	Restart  func() bool
	LastExit func() uint16
}

// Registers is the host-facing control/status register file.
//
// Host methods (Read, Write, Snapshot, Set*) are safe for concurrent use.
// Eval/Commit belong to the simulation goroutine. Attach Registers to the
// register domain and WatchdogSide() to the watchdog's domain.
type Registers struct {
	mu sync.Mutex

	// ---- host-written storage (guarded by mu) ----
	enable       bool
	prbs         uint16
	stpl         bool
	clearPending bool

	// ---- host-visible status (guarded by mu) ----
	ready        bool
	jsync        bool
	restartCount uint16
	lastExit     uint16

	// ---- simulation-side registers ----
	enableQ, enableN bool
	prbsQ, prbsN     uint16
	stplQ, stplN     bool

	readySync   *cdc.Synchronizer
	jsyncSync   *cdc.Synchronizer
	restartSync *cdc.Synchronizer
	exitBus     *cdc.BusSynchronizer

	restartD, restartDN bool
	countN              uint16
}

// New builds a register file. stages is the synchronizer depth.
func New(src Sources, stages int) (*Registers, error) {
	if src.Ready == nil || src.JSync == nil || src.Restart == nil || src.LastExit == nil {
		return nil, errors.New("control: all sources must be wired")
	}
	return &Registers{
		readySync:   cdc.NewSynchronizer(src.Ready, stages),
		jsyncSync:   cdc.NewSynchronizer(src.JSync, stages),
		restartSync: cdc.NewSynchronizer(src.Restart, stages),
		exitBus:     cdc.NewBusSynchronizer(src.LastExit, stages),
	}, nil
}

// WatchdogSide is the source half of the last_exit crossing.
func (r *Registers) WatchdogSide() clock.Clocked { return r.exitBus.Source() }

// ---- simulation side ----

func (r *Registers) Eval() {
	r.readySync.Eval()
	r.jsyncSync.Eval()
	r.restartSync.Eval()
	r.exitBus.Dest().Eval()

	r.mu.Lock()
	r.enableN, r.prbsN, r.stplN = r.enable, r.prbs, r.stpl
	clr := r.clearPending
	r.clearPending = false
	count := r.restartCount
	r.mu.Unlock()

	// Edge detect on the synchronized restart, never on the source.
	restart := r.restartSync.Out()
	rising := restart && !r.restartD
	r.restartDN = restart

	switch {
	case clr:
		r.countN = 0
	case rising && count < status.RestartCountMax:
		r.countN = count + 1
	default:
		r.countN = count
	}
}

func (r *Registers) Commit() {
	r.readySync.Commit()
	r.jsyncSync.Commit()
	r.restartSync.Commit()
	r.exitBus.Dest().Commit()

	r.enableQ, r.prbsQ, r.stplQ = r.enableN, r.prbsN, r.stplN
	r.restartD = r.restartDN

	r.mu.Lock()
	r.ready = r.readySync.Out()
	r.jsync = r.jsyncSync.Out()
	r.restartCount = r.countN
	r.lastExit = r.exitBus.Out()
	r.mu.Unlock()
}

// Enable is the enable bit as seen by the core.
func (r *Registers) Enable() bool { return r.enableQ }

// PRBSConfig is the test pattern selector as seen by the core.
func (r *Registers) PRBSConfig() uint16 { return r.prbsQ }

// STPLEnable is the stpl bit as seen by the core (not yet synchronized).
func (r *Registers) STPLEnable() bool { return r.stplQ }

// ---- host side ----

// Read returns one register word.
func (r *Registers) Read(addr uint16) (uint16, error) {
	if addr >= status.RegistersPerCore {
		return 0, fmt.Errorf("%w: %d", ErrNoRegister, addr)
	}
	return status.Encode(r.Snapshot())[addr], nil
}

// Write stores one register word. Values are masked to the register width.
// Writing the clear register (any value) schedules a clear pulse.
func (r *Registers) Write(addr, v uint16) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch addr {
	case status.RegEnable:
		r.enable = v&1 != 0
	case status.RegPRBSConfig:
		r.prbs = v & status.PRBSConfigMask
	case status.RegSTPLEnable:
		r.stpl = v&1 != 0
	case status.RegRestartCountClear:
		r.clearPending = true
	case status.RegReady, status.RegJSync, status.RegRestartCount, status.RegLastExit:
		return fmt.Errorf("%w: %d", ErrReadOnly, addr)
	default:
		return fmt.Errorf("%w: %d", ErrNoRegister, addr)
	}
	return nil
}

// Snapshot returns the host-visible register block.
func (r *Registers) Snapshot() status.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return status.Snapshot{
		Enable:       r.enable,
		Ready:        r.ready,
		PRBSConfig:   r.prbs,
		STPLEnable:   r.stpl,
		JSync:        r.jsync,
		RestartCount: r.restartCount,
		LastExit:     r.lastExit,
	}
}

func (r *Registers) SetEnable(on bool) { _ = r.Write(status.RegEnable, word(on)) }

func (r *Registers) SetPRBSConfig(v uint16) { _ = r.Write(status.RegPRBSConfig, v) }

func (r *Registers) SetSTPLEnable(on bool) { _ = r.Write(status.RegSTPLEnable, word(on)) }

func (r *Registers) ClearRestartCount() { _ = r.Write(status.RegRestartCountClear, 1) }

func word(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}
