// internal/core/stpl.go
package core

import "github.com/tamzrod/jesdtx/internal/settings"

// STPL returns one frame of the short transport test pattern:
// sample s of converter m carries (m << 8 | s), masked to np bits.
// Indexed [converter][sample].
func STPL(s settings.LinkSettings) [][]uint16 {
	phy, ts := s.Phy(), s.Transport()

	mask := uint32(0xFFFF)
	if phy.NP > 0 && phy.NP < 16 {
		mask = 1<<uint(phy.NP) - 1
	}

	out := make([][]uint16, phy.M)
	for m := range out {
		out[m] = make([]uint16, ts.S)
		for i := range out[m] {
			out[m][i] = uint16((uint32(m)<<8 | uint32(i)) & mask)
		}
	}
	return out
}
