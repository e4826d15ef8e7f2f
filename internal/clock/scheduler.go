// internal/clock/scheduler.go
package clock

import (
	"errors"
	"fmt"
)

// Scheduler advances simulated time edge by edge across all domains.
// It is single-owner: exactly one goroutine may step it.
type Scheduler struct {
	domains []*Domain
	now     uint64 // ps
}

func NewScheduler(domains ...*Domain) (*Scheduler, error) {
	if len(domains) == 0 {
		return nil, errors.New("clock: scheduler needs at least one domain")
	}
	seen := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		if d == nil {
			return nil, errors.New("clock: nil domain")
		}
		if _, dup := seen[d.name]; dup {
			return nil, fmt.Errorf("clock: duplicate domain %q", d.name)
		}
		seen[d.name] = struct{}{}
	}
	return &Scheduler{domains: domains}, nil
}

// Now returns the simulated time of the last processed edge (ps).
func (s *Scheduler) Now() uint64 { return s.now }

// Step processes the next instant at which at least one domain has an edge.
// Every domain ticking at that instant evaluates, then all of them commit.
func (s *Scheduler) Step() {
	t := s.domains[0].next
	for _, d := range s.domains[1:] {
		if d.next < t {
			t = d.next
		}
	}
	s.now = t

	var firing []*Domain
	for _, d := range s.domains {
		if d.next == t {
			firing = append(firing, d)
		}
	}

	for _, d := range firing {
		for _, c := range d.members {
			c.Eval()
		}
	}
	for _, d := range firing {
		for _, c := range d.members {
			c.Commit()
		}
		d.ticks++
		d.next += d.periodPS
	}
}

// RunTicks steps until d has seen n more edges.
func (s *Scheduler) RunTicks(d *Domain, n uint64) {
	target := d.ticks + n
	for d.ticks < target {
		s.Step()
	}
}
