// internal/settings/clocks.go
package settings

// Clocks holds the frequencies derived from a link description (Hz).
// Informational only: consumed by frequency planning, not by the watchdog.
type Clocks struct {
	Sample   float64
	Frame    float64
	LMF      float64 // local multiframe clock
	LineRate float64 // bits per second per lane
}

// Clocks derives frame, multiframe and line rate from the sample clock.
func (s LinkSettings) Clocks() Clocks {
	ps := s.phy
	ts := s.transport

	fc := ps.SC / float64(ts.S)
	lmfc := fc / float64(ts.K)
	lr := float64(ps.M) * float64(ts.S) * float64(ps.NP) * 10 / 8 * fc / float64(ps.L)

	return Clocks{
		Sample:   ps.SC,
		Frame:    fc,
		LMF:      lmfc,
		LineRate: lr,
	}
}
