// internal/poller/types.go
package poller

import "time"

// ControlBlock is the host-owned control words, decoded.
// Geometry only: values are applied verbatim, the register file masks them.
type ControlBlock struct {
	Enable     uint16
	PRBSConfig uint16
	STPLEnable uint16
	Clear      uint16 // non-zero requests one restart_count clear
}

// PollResult is a snapshot produced by one poll cycle.
type PollResult struct {
	At      time.Time
	Block   ControlBlock
	Cleared bool  // a clear pulse was applied this cycle
	Err     error // non-nil means the poll cycle failed
}
