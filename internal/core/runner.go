// internal/core/runner.go
package core

import (
	"context"
	"time"
)

// Run paces the simulation: every interval it advances ticksPerInterval
// control ticks. One goroutine owns the scheduler. No overlap.
func (s *Sim) Run(ctx context.Context, interval time.Duration, ticksPerInterval uint64) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Step(ticksPerInterval)
		}
	}
}
