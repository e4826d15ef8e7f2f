// internal/core/core.go
package core

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tamzrod/jesdtx/internal/cdc"
	"github.com/tamzrod/jesdtx/internal/clock"
	"github.com/tamzrod/jesdtx/internal/confdata"
	"github.com/tamzrod/jesdtx/internal/control"
	"github.com/tamzrod/jesdtx/internal/lane"
	"github.com/tamzrod/jesdtx/internal/readiness"
	"github.com/tamzrod/jesdtx/internal/settings"
	"github.com/tamzrod/jesdtx/internal/watchdog"
)

// Lane pairs one lane's link layer with its clock domain.
type Lane struct {
	Domain *clock.Domain
	Link   lane.Link
}

// Config is everything the core is built from. Nothing is added later.
type Config struct {
	Settings settings.LinkSettings
	Control  *clock.Domain
	Lanes    []Lane
	JSync    JSyncInput
	Stages   int // synchronizer depth, 0 => cdc.MinStages
	Log      zerolog.Logger
}

// laneHandle is the core's view of one lane and its crossings.
type laneHandle struct {
	link    lane.Link
	domain  *clock.Domain
	restart *cdc.Synchronizer
	jsync   *cdc.Synchronizer
	prbs    *cdc.BusSynchronizer
}

// Core is the transmit core: watchdog, readiness, register file and lanes,
// wired once at construction.
type Core struct {
	settings settings.LinkSettings
	control  *clock.Domain

	watchdog  *watchdog.Watchdog
	registers *control.Registers
	readiness *readiness.Aggregator
	lanes     []laneHandle

	jsync *cdc.Synchronizer // jsync in the control domain
	stpl  *cdc.Synchronizer // stpl_enable at the transport boundary
	test  [][]uint16
}

// New builds and wires a core and attaches every component to its domain.
func New(cfg Config) (*Core, error) {
	if cfg.Control == nil {
		return nil, errors.New("core: control domain required")
	}
	if len(cfg.Lanes) != cfg.Settings.Lanes() {
		return nil, fmt.Errorf("core: %d lanes given, settings declare l=%d", len(cfg.Lanes), cfg.Settings.Lanes())
	}
	jsyncLevel, err := resolveJSync(cfg.JSync)
	if err != nil {
		return nil, err
	}
	stages := cfg.Stages
	if stages < cdc.MinStages {
		stages = cdc.MinStages
	}

	c := &Core{
		settings: cfg.Settings,
		control:  cfg.Control,
		jsync:    cdc.NewSynchronizer(jsyncLevel, stages),
		test:     STPL(cfg.Settings),
	}

	// ---- lanes and readiness ----

	ready := make([]func() bool, 0, len(cfg.Lanes))
	for i, l := range cfg.Lanes {
		if l.Domain == nil || l.Link == nil {
			return nil, fmt.Errorf("core: lane %d: domain and link required", i)
		}
		ready = append(ready, l.Link.Ready)
	}
	c.readiness, err = readiness.New(ready, stages)
	if err != nil {
		return nil, err
	}

	// ---- register file ----

	c.registers, err = control.New(control.Sources{
		Ready:    c.readiness.Ready,
		JSync:    jsyncLevel,
		Restart:  func() bool { return c.watchdog.Restart() },
		LastExit: func() uint16 { return uint16(c.watchdog.LastExit()) },
	}, stages)
	if err != nil {
		return nil, err
	}

	// ---- watchdog ----

	c.watchdog, err = watchdog.New(watchdog.Inputs{
		Enable: c.registers.Enable,
		JSync:  c.jsync.Out,
		Ready:  c.readiness.Ready,
		PRBS:   func() bool { return c.registers.PRBSConfig() != 0 },
	}, cfg.Log.With().Str("component", "watchdog").Logger())
	if err != nil {
		return nil, err
	}

	c.stpl = cdc.NewSynchronizer(c.registers.STPLEnable, stages)

	cfg.Control.Attach(
		c.registers,
		c.registers.WatchdogSide(),
		c.jsync,
		c.readiness,
		c.watchdog,
		c.stpl,
	)

	// ---- per-lane crossings ----

	for _, l := range cfg.Lanes {
		h := laneHandle{
			link:    l.Link,
			domain:  l.Domain,
			restart: cdc.NewSynchronizer(c.watchdog.Restart, stages),
			jsync:   cdc.NewSynchronizer(jsyncLevel, stages),
			prbs:    cdc.NewBusSynchronizer(c.registers.PRBSConfig, stages),
		}

		l.Link.Connect(lane.Inputs{
			Restart: h.restart.Out,
			PRBS:    func() uint8 { return uint8(h.prbs.Out()) },
			JSync:   h.jsync.Out,
		})

		cfg.Control.Attach(h.prbs.Source())
		l.Domain.Attach(h.restart, h.jsync, h.prbs.Dest(), l.Link)

		c.lanes = append(c.lanes, h)
	}

	return c, nil
}

// Registers is the host-facing register file.
func (c *Core) Registers() *control.Registers { return c.registers }

func (c *Core) Watchdog() *watchdog.Watchdog { return c.watchdog }

// Ready is the aggregate readiness in the control domain.
func (c *Core) Ready() bool { return c.readiness.Ready() }

func (c *Core) Settings() settings.LinkSettings { return c.settings }

// Domains returns the control domain followed by each lane's domain, without duplicates.
func (c *Core) Domains() []*clock.Domain {
	out := []*clock.Domain{c.control}
	seen := map[*clock.Domain]bool{c.control: true}
	for _, h := range c.lanes {
		if !seen[h.domain] {
			seen[h.domain] = true
			out = append(out, h.domain)
		}
	}
	return out
}

// ConfigurationData returns the descriptor lane lid sends during ILAS.
func (c *Core) ConfigurationData(lid int) confdata.Octets {
	return c.settings.ConfigurationData(lid)
}

// Samples is the transport boundary: live samples pass through unless
// stpl_enable (synchronized) selects the test pattern. Indexed [converter][sample].
// It is the hook an external transport layer calls once per frame.
func (c *Core) Samples(live [][]uint16) [][]uint16 {
	if c.stpl.Out() {
		return c.test
	}
	return live
}
