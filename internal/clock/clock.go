// internal/clock/clock.go
package clock

import (
	"errors"
	"fmt"
)

// Clocked is anything with registered state in a timing domain.
//
// Eval computes the next state from committed state only.
// Commit latches the next state. Commit is called once every Eval of the
// same instant has run, so nothing observes a value written in its own tick.
type Clocked interface {
	Eval()
	Commit()
}

// Domain is one independently timed clock domain.
type Domain struct {
	name     string
	periodPS uint64
	phasePS  uint64

	members []Clocked
	ticks   uint64
	next    uint64 // time of the next rising edge (ps)
}

// NewDomain creates a domain with a period and a phase offset, both in picoseconds.
func NewDomain(name string, periodPS, phasePS uint64) (*Domain, error) {
	if name == "" {
		return nil, errors.New("clock: domain name required")
	}
	if periodPS == 0 {
		return nil, fmt.Errorf("clock: domain %q: period must be > 0", name)
	}
	return &Domain{
		name:     name,
		periodPS: periodPS,
		phasePS:  phasePS,
		next:     phasePS,
	}, nil
}

// PeriodFromMHz converts a frequency in MHz into a period in picoseconds.
func PeriodFromMHz(mhz float64) uint64 {
	if mhz <= 0 {
		return 0
	}
	return uint64(1e6/mhz + 0.5)
}

// Attach adds components clocked by this domain.
func (d *Domain) Attach(c ...Clocked) {
	d.members = append(d.members, c...)
}

func (d *Domain) Name() string     { return d.name }
func (d *Domain) PeriodPS() uint64 { return d.periodPS }

// Ticks returns the number of rising edges this domain has seen.
func (d *Domain) Ticks() uint64 { return d.ticks }
