// internal/writer/status_writer.go
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/jesdtx/internal/status"
)

// linkStatusWriter is the concrete implementation used by the daemon.
type linkStatusWriter struct {
	plan Plan
	cli  endpointClient

	needFull bool
	last     []uint16 // register words last delivered
	descRegs []uint16 // descriptor words, constant for the link's lifetime
}

// NewStatusWriter builds a status writer for one link.
func NewStatusWriter(plan Plan, cli endpointClient) (StatusWriter, error) {
	if cli == nil {
		return nil, errors.New("status writer: client required")
	}
	if int(plan.Address)+status.BlockWords(len(plan.Descriptors)) > 0x10000 {
		return nil, fmt.Errorf("status writer: block at %d exceeds address space", plan.Address)
	}

	var desc []uint16
	for _, o := range plan.Descriptors {
		desc = append(desc, status.EncodeDescriptor(o)...)
	}

	return &linkStatusWriter{
		plan:     plan,
		cli:      cli,
		needFull: true, // full re-assert on first successful write
		descRegs: desc,
	}, nil
}

// WriteStatus delivers a status snapshot into host memory.
// On any write failure, the next call re-asserts the full block.
func (sw *linkStatusWriter) WriteStatus(s status.Snapshot) error {
	regs := status.Encode(s)

	// ------------------------------------------------------------
	// Full block write (identity re-assert, includes descriptors)
	// ------------------------------------------------------------
	if sw.needFull {
		block := append(append([]uint16(nil), regs...), sw.descRegs...)

		for off := 0; off < len(block); off += status.MaxWriteWords {
			end := off + status.MaxWriteWords
			if end > len(block) {
				end = len(block)
			}
			if err := sw.cli.WriteRegisters(sw.plan.Address+uint16(off), block[off:end]); err != nil {
				sw.needFull = true
				return fmt.Errorf("status writer: full block write failed at word %d: %w", off, err)
			}
		}

		sw.needFull = false
		sw.last = regs
		return nil
	}

	// ------------------------------------------------------------
	// Incremental: changed words only
	// ------------------------------------------------------------
	var errs []string

	for i, v := range regs {
		if sw.last[i] == v {
			continue
		}
		if err := sw.cli.WriteRegisters(sw.plan.Address+uint16(i), []uint16{v}); err != nil {
			errs = append(errs, fmt.Sprintf("word %d write failed: %v", i, err))
			continue
		}
		sw.last[i] = v
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt; re-assert on next call.
		sw.needFull = true
		return errors.New("status writer: " + strings.Join(errs, " | "))
	}

	return nil
}
