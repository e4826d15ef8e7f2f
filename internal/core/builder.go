// internal/core/builder.go
package core

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tamzrod/jesdtx/internal/clock"
	cfg "github.com/tamzrod/jesdtx/internal/config"
	"github.com/tamzrod/jesdtx/internal/lane"
	"github.com/tamzrod/jesdtx/internal/settings"
)

// Sim is a fully wired, simulated transmitter: core, lane models,
// the downstream receiver stand-in and the scheduler that clocks them.
type Sim struct {
	Core      *Core
	Lanes     []*lane.Model
	Receiver  *lane.Receiver
	Scheduler *clock.Scheduler
	Control   *clock.Domain
}

// SettingsFrom converts the link section into immutable link settings.
func SettingsFrom(l cfg.LinkConfig) (settings.LinkSettings, error) {
	return settings.NewLinkSettings(
		settings.PhysicalLaneSettings{L: l.L, M: l.M, N: l.N, NP: l.NP, SC: l.SampleClockHz},
		settings.TransportSettings{F: l.F, S: l.S, K: l.K, CS: l.CS},
		l.DID, l.BID,
	)
}

// Build constructs a simulated transmitter from a validated, normalized config.
func Build(c *cfg.Config, log zerolog.Logger) (*Sim, error) {
	ls, err := SettingsFrom(c.Link)
	if err != nil {
		return nil, err
	}

	control, err := clock.NewDomain("sys", clock.PeriodFromMHz(c.Clocks.ControlMHz), 0)
	if err != nil {
		return nil, err
	}

	sim := &Sim{Control: control}
	domains := []*clock.Domain{control}
	lanes := make([]Lane, 0, len(c.Lanes))
	transmitting := make([]func() bool, 0, len(c.Lanes))

	for i, lc := range c.Lanes {
		d, err := clock.NewDomain(fmt.Sprintf("phy%d_tx", i), clock.PeriodFromMHz(lc.ClockMHz), lc.PhasePS)
		if err != nil {
			return nil, err
		}

		m := lane.NewModel(lane.ModelConfig{
			LaneID:     i,
			ILASTicks:  lc.ILASTicks,
			ConfigData: ls.ConfigurationData(i),
		})
		m.SetFault(lc.Fault)

		sim.Lanes = append(sim.Lanes, m)
		domains = append(domains, d)
		lanes = append(lanes, Lane{Domain: d, Link: m})
		transmitting = append(transmitting, m.Transmitting)
	}

	// receiver stand-in lives on the control clock
	sim.Receiver = lane.NewReceiver(transmitting, c.JSync.LockTicks)
	control.Attach(sim.Receiver)

	var jsync JSyncInput = DirectLevel{Level: sim.Receiver.Sync}
	if c.JSync.Mode == cfg.JSyncDifferential {
		jsync = DifferentialPair{
			P: sim.Receiver.Sync,
			N: func() bool { return !sim.Receiver.Sync() },
		}
	}

	sim.Core, err = New(Config{
		Settings: ls,
		Control:  control,
		Lanes:    lanes,
		JSync:    jsync,
		Stages:   c.Clocks.SyncStages,
		Log:      log,
	})
	if err != nil {
		return nil, err
	}

	sim.Scheduler, err = clock.NewScheduler(domains...)
	if err != nil {
		return nil, err
	}

	sim.Core.Registers().SetEnable(c.Link.Enable)

	return sim, nil
}

// Step advances the simulation by n control-domain ticks.
func (s *Sim) Step(n uint64) {
	s.Scheduler.RunTicks(s.Control, n)
}
