// internal/poller/poller.go
package poller

import (
	"errors"
	"fmt"
	"time"

	"github.com/tamzrod/jesdtx/internal/status"
)

// Client abstracts the host memory operations the poller needs.
type Client interface {
	ReadHoldingRegisters(addr, qty uint16) ([]uint16, error)
	WriteRegisters(addr uint16, regs []uint16) error
}

// Target receives register writes. Satisfied by *control.Registers.
type Target interface {
	Write(addr, v uint16) error
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	Interval time.Duration
	Address  uint16 // first word of the host control block
}

// Poller is a dumb, clock-driven reader of the host control block.
type Poller struct {
	cfg    Config
	client Client
	target Target
}

// New creates a poller with immutable config.
func New(cfg Config, client Client, target Target) (*Poller, error) {
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if client == nil || target == nil {
		return nil, errors.New("poller: client and target required")
	}
	return &Poller{cfg: cfg, client: client, target: target}, nil
}

// PollOnce performs exactly one poll cycle.
// All-or-nothing on read: a failed read applies nothing.
func (p *Poller) PollOnce() PollResult {
	res := PollResult{At: time.Now()}

	regs, err := p.client.ReadHoldingRegisters(p.cfg.Address, status.CtrlWords)
	if err != nil {
		res.Err = err
		return res
	}
	if len(regs) < status.CtrlWords {
		res.Err = fmt.Errorf("poller: short control block: %d words", len(regs))
		return res
	}

	res.Block = ControlBlock{
		Enable:     regs[status.CtrlEnable],
		PRBSConfig: regs[status.CtrlPRBSConfig],
		STPLEnable: regs[status.CtrlSTPLEnable],
		Clear:      regs[status.CtrlClear],
	}

	writes := []struct {
		addr uint16
		v    uint16
	}{
		{status.RegEnable, res.Block.Enable},
		{status.RegPRBSConfig, res.Block.PRBSConfig},
		{status.RegSTPLEnable, res.Block.STPLEnable},
	}
	for _, w := range writes {
		if err := p.target.Write(w.addr, w.v); err != nil {
			res.Err = err
			return res
		}
	}

	if res.Block.Clear != 0 {
		if err := p.target.Write(status.RegRestartCountClear, 1); err != nil {
			res.Err = err
			return res
		}
		res.Cleared = true

		// acknowledge: the host sees its clear word return to 0
		if err := p.client.WriteRegisters(p.cfg.Address+status.CtrlClear, []uint16{0}); err != nil {
			res.Err = fmt.Errorf("poller: clear ack failed: %w", err)
			return res
		}
	}

	return res
}
