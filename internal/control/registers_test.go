// internal/control/registers_test.go
package control

import (
	"errors"
	"testing"

	"github.com/tamzrod/jesdtx/internal/status"
)

type core struct {
	ready, jsync, restart bool
	lastExit              uint16
}

func newRegisters(t *testing.T, c *core) *Registers {
	t.Helper()
	r, err := New(Sources{
		Ready:    func() bool { return c.ready },
		JSync:    func() bool { return c.jsync },
		Restart:  func() bool { return c.restart },
		LastExit: func() uint16 { return c.lastExit },
	}, 2)
	if err != nil {
		t.Fatalf("New err=%v", err)
	}
	return r
}

// tick runs the register domain and the watchdog side together.
func tick(r *Registers, n int) {
	ws := r.WatchdogSide()
	for i := 0; i < n; i++ {
		ws.Eval()
		r.Eval()
		ws.Commit()
		r.Commit()
	}
}

// pulse produces one rising edge on restart and lets it settle.
func pulse(r *Registers, c *core) {
	c.restart = true
	tick(r, 4)
	c.restart = false
	tick(r, 4)
}

func TestNew_RequiresSources(t *testing.T) {
	if _, err := New(Sources{}, 2); err == nil {
		t.Fatalf("expected error for unwired sources")
	}
}

func TestRestartCount_OnePerRisingEdge(t *testing.T) {
	c := &core{}
	r := newRegisters(t, c)

	for i := 1; i <= 3; i++ {
		pulse(r, c)
		if got := r.Snapshot().RestartCount; got != uint16(i) {
			t.Fatalf("after %d pulses: got=%d", i, got)
		}
	}

	// held high: still one increment
	c.restart = true
	tick(r, 50)
	if got := r.Snapshot().RestartCount; got != 4 {
		t.Fatalf("held restart: got=%d want=4", got)
	}
}

func TestRestartCount_EdgeSeenAfterSynchronizer(t *testing.T) {
	c := &core{}
	r := newRegisters(t, c)

	c.restart = true
	tick(r, 2)
	if got := r.Snapshot().RestartCount; got != 0 {
		t.Fatalf("counted before synchronizer latency: %d", got)
	}
	tick(r, 1)
	if got := r.Snapshot().RestartCount; got != 1 {
		t.Fatalf("expected count 1 after latency, got %d", got)
	}
}

func TestRestartCount_Clear(t *testing.T) {
	c := &core{}
	r := newRegisters(t, c)

	pulse(r, c)
	pulse(r, c)

	if err := r.Write(status.RegRestartCountClear, 1); err != nil {
		t.Fatalf("clear write err=%v", err)
	}
	tick(r, 1)
	if got := r.Snapshot().RestartCount; got != 0 {
		t.Fatalf("after clear: got=%d want=0", got)
	}

	// clear is a pulse, not a level
	pulse(r, c)
	if got := r.Snapshot().RestartCount; got != 1 {
		t.Fatalf("after clear and pulse: got=%d want=1", got)
	}
}

func TestRestartCount_ClearWinsOverIncrement(t *testing.T) {
	c := &core{}
	r := newRegisters(t, c)
	pulse(r, c)

	c.restart = true
	tick(r, 2) // edge reaches the detector on the next tick
	r.ClearRestartCount()
	tick(r, 1)

	if got := r.Snapshot().RestartCount; got != 0 {
		t.Fatalf("clear and increment in same tick: got=%d want=0", got)
	}
}

func TestRestartCount_Saturates(t *testing.T) {
	c := &core{}
	r := newRegisters(t, c)

	r.restartCount = status.RestartCountMax - 1
	pulse(r, c)
	pulse(r, c)

	if got := r.Snapshot().RestartCount; got != status.RestartCountMax {
		t.Fatalf("saturation: got=%d want=%d", got, status.RestartCountMax)
	}
}

func TestWrite_MasksAndRejects(t *testing.T) {
	c := &core{}
	r := newRegisters(t, c)

	if err := r.Write(status.RegPRBSConfig, 0x1F); err != nil {
		t.Fatalf("prbs write err=%v", err)
	}
	if v, _ := r.Read(status.RegPRBSConfig); v != 0xF {
		t.Fatalf("prbs: got=%#x want=0xf", v)
	}

	if err := r.Write(status.RegReady, 1); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("expected ErrReadOnly, got %v", err)
	}
	if err := r.Write(99, 1); !errors.Is(err, ErrNoRegister) {
		t.Fatalf("expected ErrNoRegister, got %v", err)
	}
	if _, err := r.Read(status.RegistersPerCore); !errors.Is(err, ErrNoRegister) {
		t.Fatalf("expected ErrNoRegister on read, got %v", err)
	}
	if v, _ := r.Read(status.RegRestartCountClear); v != 0 {
		t.Fatalf("clear register reads %d, want 0", v)
	}
}

func TestStorage_VisibleToCoreNextTick(t *testing.T) {
	c := &core{}
	r := newRegisters(t, c)

	r.SetEnable(true)
	r.SetPRBSConfig(5)
	r.SetSTPLEnable(true)
	if r.Enable() {
		t.Fatalf("enable visible before a tick")
	}

	tick(r, 1)
	if !r.Enable() || r.PRBSConfig() != 5 || !r.STPLEnable() {
		t.Fatalf("storage not latched: enable=%v prbs=%d stpl=%v", r.Enable(), r.PRBSConfig(), r.STPLEnable())
	}
}

func TestStatus_Synchronized(t *testing.T) {
	c := &core{ready: true, jsync: true, lastExit: 3}
	r := newRegisters(t, c)

	tick(r, 1)
	if s := r.Snapshot(); s.Ready || s.JSync {
		t.Fatalf("status visible before synchronizer latency: %+v", s)
	}
	tick(r, 10)
	s := r.Snapshot()
	if !s.Ready || !s.JSync || s.LastExit != 3 {
		t.Fatalf("status not propagated: %+v", s)
	}
}
