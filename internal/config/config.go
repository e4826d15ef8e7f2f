// internal/config/config.go
package config

type Config struct {
	Link   LinkConfig   `yaml:"link" toml:"link"`
	Clocks ClocksConfig `yaml:"clocks" toml:"clocks"`
	Lanes  []LaneConfig `yaml:"lanes" toml:"lanes"`
	JSync  JSyncConfig  `yaml:"jsync" toml:"jsync"`
	Sim    SimConfig    `yaml:"sim" toml:"sim"`
	Host   *HostConfig  `yaml:"host" toml:"host"` // optional Modbus bridge
	Log    LogConfig    `yaml:"log" toml:"log"`
}

// ---- LINK ----

type LinkConfig struct {
	DID uint8 `yaml:"did" toml:"did"`
	BID uint8 `yaml:"bid" toml:"bid"`

	// physical
	L             int     `yaml:"l" toml:"l"`
	M             int     `yaml:"m" toml:"m"`
	N             int     `yaml:"n" toml:"n"`
	NP            int     `yaml:"np" toml:"np"`
	SampleClockHz float64 `yaml:"sample_clock_hz" toml:"sample_clock_hz"`

	// transport
	F  int `yaml:"f" toml:"f"`
	S  int `yaml:"s" toml:"s"`
	K  int `yaml:"k" toml:"k"`
	CS int `yaml:"cs" toml:"cs"`

	// Enable is the initial value of the enable register.
	Enable bool `yaml:"enable" toml:"enable"`
}

// ---- CLOCKS ----

type ClocksConfig struct {
	ControlMHz float64 `yaml:"control_mhz" toml:"control_mhz"`
	SyncStages int     `yaml:"sync_stages" toml:"sync_stages"` // 0 => 2
}

// ---- LANES ----

// LaneConfig describes one lane's clock and simulated link layer.
type LaneConfig struct {
	ClockMHz  float64 `yaml:"clock_mhz" toml:"clock_mhz"`
	PhasePS   uint64  `yaml:"phase_ps" toml:"phase_ps"`
	ILASTicks int     `yaml:"ilas_ticks" toml:"ilas_ticks"` // 0 => k*f
	Fault     bool    `yaml:"fault" toml:"fault"`
}

// ---- JSYNC ----

const (
	JSyncDirect       = "direct"
	JSyncDifferential = "differential"
)

type JSyncConfig struct {
	Mode      string `yaml:"mode" toml:"mode"`             // direct | differential
	LockTicks int    `yaml:"lock_ticks" toml:"lock_ticks"` // receiver lock period, control ticks
}

// ---- SIM ----

type SimConfig struct {
	IntervalMs       int `yaml:"interval_ms" toml:"interval_ms"`
	TicksPerInterval int `yaml:"ticks_per_interval" toml:"ticks_per_interval"`
}

// ---- HOST ----

type HostConfig struct {
	Endpoint  string `yaml:"endpoint" toml:"endpoint"`
	UnitID    uint8  `yaml:"unit_id" toml:"unit_id"`
	TimeoutMs int    `yaml:"timeout_ms" toml:"timeout_ms"`
	PollMs    int    `yaml:"poll_ms" toml:"poll_ms"`

	// Holding register addresses of the host-owned blocks.
	ControlAddress uint16 `yaml:"control_address" toml:"control_address"`
	StatusAddress  uint16 `yaml:"status_address" toml:"status_address"`
}

// ---- LOG ----

type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
}
