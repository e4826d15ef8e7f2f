// internal/lane/model.go
package lane

import (
	"sync/atomic"

	"github.com/tamzrod/jesdtx/internal/confdata"
)

// Phase is the simulated link-layer phase of one lane.
type Phase uint8

const (
	PhaseReset Phase = iota // restart held
	PhaseCGS                // code group synchronization, waiting for jsync
	PhaseILAS               // initial lane alignment sequence
	PhaseData               // user data, ready
)

func (p Phase) String() string {
	switch p {
	case PhaseReset:
		return "reset"
	case PhaseCGS:
		return "cgs"
	case PhaseILAS:
		return "ilas"
	case PhaseData:
		return "data"
	}
	return "unknown"
}

// ModelConfig is the immutable config of a simulated lane.
type ModelConfig struct {
	LaneID    int
	ILASTicks int // lane ticks spent in ILAS (typically 4 multiframes)

	// ConfigData is the descriptor sent in the second ILAS multiframe.
	ConfigData confdata.Octets
}

// Model is a behavioural stand-in for a lane's link layer.
type Model struct {
	cfg ModelConfig
	in  Inputs

	phase, phaseN Phase
	count, countN int
	prbs, prbsN   uint8

	fault atomic.Bool

	descOK bool // ConfigData checksum holds
}

func NewModel(cfg ModelConfig) *Model {
	if cfg.ILASTicks < 1 {
		cfg.ILASTicks = 1
	}
	return &Model{cfg: cfg, descOK: cfg.ConfigData.Valid()}
}

func (m *Model) Connect(in Inputs) { m.in = in }

// SetFault keeps the lane from reaching data phase, and drops it out of data phase.
// Safe to call from any goroutine.
func (m *Model) SetFault(on bool) { m.fault.Store(on) }

func (m *Model) Eval() {
	m.phaseN, m.countN = m.phase, m.count
	if m.in.PRBS != nil {
		m.prbsN = m.in.PRBS()
	}

	if m.in.Restart != nil && m.in.Restart() {
		m.phaseN, m.countN = PhaseReset, 0
		return
	}

	jsync := m.in.JSync != nil && m.in.JSync()
	fault := m.fault.Load()

	switch m.phase {
	case PhaseReset:
		m.phaseN = PhaseCGS

	case PhaseCGS:
		if jsync && !fault {
			m.phaseN, m.countN = PhaseILAS, 0
		}

	case PhaseILAS:
		if !jsync || fault {
			m.phaseN, m.countN = PhaseCGS, 0
			return
		}
		m.countN = m.count + 1
		if m.countN >= m.cfg.ILASTicks {
			// a descriptor with a bad checksum is rejected; the lane retries alignment
			if !m.descOK {
				m.phaseN, m.countN = PhaseCGS, 0
				return
			}
			m.phaseN, m.countN = PhaseData, 0
		}

	case PhaseData:
		if !jsync || fault {
			m.phaseN = PhaseCGS
		}
	}
}

func (m *Model) Commit() {
	m.phase, m.count, m.prbs = m.phaseN, m.countN, m.prbsN
}

func (m *Model) Ready() bool { return m.phase == PhaseData }

// Transmitting reports the lane is out of reset and sending characters.
func (m *Model) Transmitting() bool { return m.phase != PhaseReset }

func (m *Model) Phase() Phase { return m.phase }

// PRBS is the test pattern selector last seen by the lane (0 = off).
func (m *Model) PRBS() uint8 { return m.prbs }

func (m *Model) ConfigData() confdata.Octets { return m.cfg.ConfigData }

func (m *Model) LaneID() int { return m.cfg.LaneID }
