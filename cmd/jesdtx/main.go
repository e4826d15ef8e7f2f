// cmd/jesdtx/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/tamzrod/jesdtx/internal/config"
	"github.com/tamzrod/jesdtx/internal/confdata"
	"github.com/tamzrod/jesdtx/internal/core"
	"github.com/tamzrod/jesdtx/internal/logging"
	"github.com/tamzrod/jesdtx/internal/modbus"
	"github.com/tamzrod/jesdtx/internal/poller"
	"github.com/tamzrod/jesdtx/internal/writer"
)

func main() {
	boot := logging.New("jesdtx", "")

	if len(os.Args) < 2 {
		boot.Fatal().Msg("usage: jesdtx <config.yaml|config.toml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		boot.Fatal().Err(err).Msg("config load failed")
	}

	if err := config.Validate(cfg); err != nil {
		boot.Fatal().Err(err).Msg("config validation failed")
	}
	config.Normalize(cfg)

	log := logging.New("jesdtx", cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --------------------
	// Build the simulated transmitter
	// --------------------

	sim, err := core.Build(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("core build failed")
	}

	clk := sim.Core.Settings().Clocks()
	log.Info().
		Int("lanes", cfg.Link.L).
		Float64("frame_hz", clk.Frame).
		Float64("lmf_hz", clk.LMF).
		Float64("line_rate_bps", clk.LineRate).
		Msg("link configured")

	go sim.Run(ctx,
		time.Duration(cfg.Sim.IntervalMs)*time.Millisecond,
		uint64(cfg.Sim.TicksPerInterval),
	)

	// --------------------
	// Optional host bridge
	// --------------------

	if cfg.Host != nil {
		if err := runHostBridge(ctx, cfg, sim, log); err != nil {
			log.Fatal().Err(err).Msg("host bridge failed")
		}
	}

	<-ctx.Done()
	log.Info().Msg("shutting down")
}

// runHostBridge wires the control poller and the status writer against one
// Modbus endpoint and starts the orchestrator goroutine.
func runHostBridge(ctx context.Context, cfg *config.Config, sim *core.Sim, log zerolog.Logger) error {
	h := cfg.Host
	log = log.With().Str("endpoint", h.Endpoint).Logger()

	// ---- client ----
	cli, err := modbus.New(modbus.Config{
		Endpoint: h.Endpoint,
		UnitID:   h.UnitID,
		Timeout:  time.Duration(h.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		_ = cli.Close()
	}()

	// ---- poller ----
	interval := time.Duration(h.PollMs) * time.Millisecond
	p, err := poller.New(poller.Config{
		Interval: interval,
		Address:  h.ControlAddress,
	}, cli, sim.Core.Registers())
	if err != nil {
		return err
	}

	// ---- status writer ----
	descriptors := make([]confdata.Octets, cfg.Link.L)
	for i := range descriptors {
		descriptors[i] = sim.Core.ConfigurationData(i)
	}
	sw, err := writer.NewStatusWriter(writer.Plan{
		Address:     h.StatusAddress,
		Descriptors: descriptors,
	}, cli)
	if err != nil {
		return err
	}

	// ---- channel between poller and orchestrator ----
	out := make(chan poller.PollResult)

	// Orchestrator: applies poll outcomes, publishes status on its own ticker.
	go func() {
		pubTicker := time.NewTicker(interval)
		defer pubTicker.Stop()

		healthy := true

		for {
			select {
			case <-ctx.Done():
				return

			case res := <-out:
				if res.Err != nil {
					if healthy {
						log.Warn().Err(res.Err).Msg("control poll failed")
					}
					healthy = false
					continue
				}
				if !healthy {
					log.Info().Msg("control poll recovered")
				}
				healthy = true

				if res.Cleared {
					log.Info().Msg("restart count cleared by host")
				}

			case <-pubTicker.C:
				if err := sw.WriteStatus(sim.Core.Registers().Snapshot()); err != nil {
					log.Warn().Err(err).Msg("status write failed")
				}
			}
		}
	}()

	// poller producer
	go p.Run(ctx, out)

	log.Info().
		Uint16("control_address", h.ControlAddress).
		Uint16("status_address", h.StatusAddress).
		Msg("host bridge started")

	return nil
}
