// internal/status/snapshot.go
package status

// Snapshot is the host-visible content of one register block.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Enable       bool
	Ready        bool
	PRBSConfig   uint16
	STPLEnable   bool
	JSync        bool
	RestartCount uint16
	LastExit     uint16
}
