// internal/lane/model_test.go
package lane

import (
	"testing"

	"github.com/tamzrod/jesdtx/internal/confdata"
)

type levels struct {
	restart bool
	jsync   bool
	prbs    uint8
}

func (l *levels) inputs() Inputs {
	return Inputs{
		Restart: func() bool { return l.restart },
		PRBS:    func() uint8 { return l.prbs },
		JSync:   func() bool { return l.jsync },
	}
}

func tick(c interface {
	Eval()
	Commit()
}, n int) {
	for i := 0; i < n; i++ {
		c.Eval()
		c.Commit()
	}
}

func TestModel_BringUp(t *testing.T) {
	lv := &levels{restart: true}
	m := NewModel(ModelConfig{LaneID: 2, ILASTicks: 4})
	m.Connect(lv.inputs())

	tick(m, 3)
	if m.Phase() != PhaseReset || m.Ready() {
		t.Fatalf("expected reset while restart held, got %s", m.Phase())
	}

	lv.restart = false
	tick(m, 5)
	if m.Phase() != PhaseCGS {
		t.Fatalf("expected cgs without jsync, got %s", m.Phase())
	}

	lv.jsync = true
	tick(m, 1)
	if m.Phase() != PhaseILAS {
		t.Fatalf("expected ilas, got %s", m.Phase())
	}
	tick(m, 3)
	if m.Ready() {
		t.Fatalf("ready before ilas completed")
	}
	tick(m, 1)
	if !m.Ready() {
		t.Fatalf("expected ready after ilas, got %s", m.Phase())
	}

	lv.jsync = false
	tick(m, 1)
	if m.Ready() || m.Phase() != PhaseCGS {
		t.Fatalf("expected cgs after jsync loss, got %s", m.Phase())
	}
}

func TestModel_Fault(t *testing.T) {
	lv := &levels{jsync: true}
	m := NewModel(ModelConfig{ILASTicks: 1})
	m.Connect(lv.inputs())

	m.SetFault(true)
	tick(m, 20)
	if m.Ready() {
		t.Fatalf("faulted lane became ready")
	}

	m.SetFault(false)
	tick(m, 3)
	if !m.Ready() {
		t.Fatalf("lane did not recover after fault cleared, phase=%s", m.Phase())
	}
}

func TestModel_BadDescriptorNeverReady(t *testing.T) {
	var desc confdata.Octets
	desc[0] = 5
	desc[confdata.ChecksumOctet] = confdata.Checksum(desc[:confdata.ChecksumOctet]) + 1

	lv := &levels{jsync: true}
	m := NewModel(ModelConfig{ILASTicks: 2, ConfigData: desc})
	m.Connect(lv.inputs())

	tick(m, 50)
	if m.Ready() {
		t.Fatalf("lane reached data with a bad descriptor checksum")
	}

	desc[confdata.ChecksumOctet]--
	good := NewModel(ModelConfig{ILASTicks: 2, ConfigData: desc})
	good.Connect(lv.inputs())

	tick(good, 4)
	if !good.Ready() {
		t.Fatalf("lane with a valid descriptor not ready, phase=%s", good.Phase())
	}
}

func TestModel_PRBSLatched(t *testing.T) {
	lv := &levels{prbs: 3}
	m := NewModel(ModelConfig{})
	m.Connect(lv.inputs())

	tick(m, 1)
	if m.PRBS() != 3 {
		t.Fatalf("prbs: got=%d want=3", m.PRBS())
	}
}

func TestReceiver_LockAndDrop(t *testing.T) {
	tx := []bool{true, true}
	r := NewReceiver([]func() bool{
		func() bool { return tx[0] },
		func() bool { return tx[1] },
	}, 3)

	tick(r, 2)
	if r.Sync() {
		t.Fatalf("sync asserted before lock period")
	}
	tick(r, 1)
	if !r.Sync() {
		t.Fatalf("sync not asserted after lock period")
	}

	tx[1] = false
	tick(r, 1)
	if r.Sync() {
		t.Fatalf("sync held while a lane is in reset")
	}

	tx[1] = true
	r.Hold(true)
	tick(r, 10)
	if r.Sync() {
		t.Fatalf("sync asserted while held")
	}
}
