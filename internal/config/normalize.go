// internal/config/normalize.go
package config

// Defaults applied by Normalize.
const (
	DefaultSyncStages       = 2
	DefaultLockTicks        = 64
	DefaultIntervalMs       = 1
	DefaultTicksPerInterval = 1000
	DefaultHostTimeoutMs    = 1000
	DefaultHostPollMs       = 100
	DefaultLogLevel         = "info"
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Clocks.SyncStages == 0 {
		cfg.Clocks.SyncStages = DefaultSyncStages
	}

	// ILAS is four multiframes; one lane tick carries four octets.
	ilas := cfg.Link.K * cfg.Link.F
	if ilas < 1 {
		ilas = 1
	}
	for i := range cfg.Lanes {
		if cfg.Lanes[i].ILASTicks == 0 {
			cfg.Lanes[i].ILASTicks = ilas
		}
	}

	if cfg.JSync.Mode == "" {
		cfg.JSync.Mode = JSyncDirect
	}
	if cfg.JSync.LockTicks == 0 {
		cfg.JSync.LockTicks = DefaultLockTicks
	}

	if cfg.Sim.IntervalMs == 0 {
		cfg.Sim.IntervalMs = DefaultIntervalMs
	}
	if cfg.Sim.TicksPerInterval == 0 {
		cfg.Sim.TicksPerInterval = DefaultTicksPerInterval
	}

	if h := cfg.Host; h != nil {
		if h.TimeoutMs == 0 {
			h.TimeoutMs = DefaultHostTimeoutMs
		}
		if h.PollMs == 0 {
			h.PollMs = DefaultHostPollMs
		}
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
