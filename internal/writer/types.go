// internal/writer/types.go
package writer

import (
	"github.com/tamzrod/jesdtx/internal/confdata"
	"github.com/tamzrod/jesdtx/internal/status"
)

// endpointClient is the exact contract the writer uses.
// IMPORTANT: There must be NO other version of this interface anywhere.
type endpointClient interface {
	WriteRegisters(addr uint16, regs []uint16) error
}

// Plan is the fully-built write plan for one link's status block.
type Plan struct {
	Address     uint16            // first word of the host status block
	Descriptors []confdata.Octets // one per lane, in lane order
}

// StatusWriter is the delivery-only contract for link status.
// It receives a snapshot and writes it verbatim.
// No logic, no interpretation.
type StatusWriter interface {
	WriteStatus(s status.Snapshot) error
}
