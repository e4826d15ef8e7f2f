// internal/lane/link.go
package lane

import "github.com/tamzrod/jesdtx/internal/clock"

// Inputs are the lane-domain views of the core's broadcast controls.
// Every function returns a value already synchronized into the lane domain.
type Inputs struct {
	Restart func() bool
	PRBS    func() uint8
	JSync   func() bool
}

// Link is one lane's link layer as seen by the core.
// Its encoding state machine is not the core's concern; only restart in,
// ready out.
type Link interface {
	clock.Clocked

	// Connect wires the lane's inputs. Called once before simulation.
	Connect(in Inputs)

	// Ready reports local synchronization complete (lane domain).
	Ready() bool
}
