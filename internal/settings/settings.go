// internal/settings/settings.go
package settings

import (
	"errors"
	"fmt"

	"github.com/tamzrod/jesdtx/internal/confdata"
)

// Only subclass 1 is supported. These MUST NOT be configurable.
const (
	SubclassVersion = 0b001
	JESDVersion     = 0b001 // JESD204B
)

// PhysicalLaneSettings describes the converter side of the link.
type PhysicalLaneSettings struct {
	L  int     // lanes
	M  int     // converters per device
	N  int     // converter resolution
	NP int     // bits per sample
	SC float64 // sample clock (Hz)
}

// TransportSettings describes framing.
type TransportSettings struct {
	F  int // octets per frame
	S  int // samples per converter per frame
	K  int // frames per multiframe
	CS int // control bits per sample
}

// LinkSettings is the complete, immutable description of one link.
type LinkSettings struct {
	phy       PhysicalLaneSettings
	transport TransportSettings
	did       uint8
	bid       uint8
}

// NewLinkSettings validates and freezes a link description.
func NewLinkSettings(phy PhysicalLaneSettings, ts TransportSettings, did, bid uint8) (LinkSettings, error) {
	if phy.L < 1 {
		return LinkSettings{}, errors.New("settings: at least one lane required")
	}
	if ts.S < 1 {
		return LinkSettings{}, fmt.Errorf("settings: s must be >= 1 (got %d)", ts.S)
	}
	if ts.K < 1 {
		return LinkSettings{}, fmt.Errorf("settings: k must be >= 1 (got %d)", ts.K)
	}
	if phy.M < 0 || phy.N < 0 || phy.NP < 0 || ts.F < 0 || ts.CS < 0 {
		return LinkSettings{}, errors.New("settings: negative parameter")
	}
	return LinkSettings{phy: phy, transport: ts, did: did, bid: bid}, nil
}

func (s LinkSettings) Phy() PhysicalLaneSettings    { return s.phy }
func (s LinkSettings) Transport() TransportSettings { return s.transport }
func (s LinkSettings) DID() uint8                   { return s.did }
func (s LinkSettings) BID() uint8                   { return s.bid }
func (s LinkSettings) Lanes() int                   { return s.phy.L }

// ---- field accessors ----

// FieldValue reports the physical-layer fields, including the fixed subclass 1 values.
func (p PhysicalLaneSettings) FieldValue(f confdata.Field) (uint64, bool) {
	switch f {
	case confdata.L:
		return uint64(p.L), true
	case confdata.M:
		return uint64(p.M), true
	case confdata.N:
		return uint64(p.N), true
	case confdata.SUBCLASSV:
		return SubclassVersion, true
	case confdata.JESDV:
		return JESDVersion, true
	case confdata.ADJCNT, confdata.ADJDIR, confdata.PHADJ:
		return 0, true
	}
	return 0, false
}

// FieldValue reports the transport-layer fields.
func (t TransportSettings) FieldValue(f confdata.Field) (uint64, bool) {
	switch f {
	case confdata.F:
		return uint64(t.F), true
	case confdata.S:
		return uint64(t.S), true
	case confdata.K:
		return uint64(t.K), true
	case confdata.CS:
		return uint64(t.CS), true
	}
	return 0, false
}

// FieldValue reports link-level fields, then falls back to phy and transport.
// Lane id is 0; use Lane for per-lane descriptors.
func (s LinkSettings) FieldValue(f confdata.Field) (uint64, bool) {
	return s.Lane(0).FieldValue(f)
}

// LaneSettings is the per-lane view used to build one lane's descriptor.
type LaneSettings struct {
	link LinkSettings
	lid  uint8
}

// Lane returns the field source for lane lid.
func (s LinkSettings) Lane(lid int) LaneSettings {
	return LaneSettings{link: s, lid: uint8(lid)}
}

func (ls LaneSettings) FieldValue(f confdata.Field) (uint64, bool) {
	switch f {
	case confdata.DID:
		return uint64(ls.link.did), true
	case confdata.BID:
		return uint64(ls.link.bid), true
	case confdata.LID:
		return uint64(ls.lid), true
	}
	if v, ok := ls.link.phy.FieldValue(f); ok {
		return v, true
	}
	return ls.link.transport.FieldValue(f)
}

// ConfigurationData encodes the descriptor for lane lid.
func (s LinkSettings) ConfigurationData(lid int) confdata.Octets {
	return confdata.Encode(s.Lane(lid))
}
