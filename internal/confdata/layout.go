// internal/confdata/layout.go
package confdata

// Configuration data (ILAS second multiframe) layout.
// These values define the wire format and MUST NOT be configurable.

// Length is the fixed number of configuration octets.
const Length = 14

// ChecksumOctet is the index of the checksum octet.
const ChecksumOctet = 13

// Field names one configuration parameter.
type Field uint8

const (
	DID       Field = iota // device id
	BID                    // bank id
	ADJCNT                 // subclass 2 only
	LID                    // lane id
	PHADJ                  // subclass 2 only
	ADJDIR                 // subclass 2 only
	L                      // lanes per converter device
	SCR                    // scrambling enable
	F                      // octets per frame
	K                      // frames per multiframe
	M                      // converters per device
	N                      // converter resolution
	CS                     // control bits per sample
	SUBCLASSV              // device subclass version
	S                      // samples per converter per frame
	JESDV                  // JESD204 version
	CF                     // control words per frame
	HD                     // high density
	RES1
	RES2
	CHKSUM
)

var fieldNames = [...]string{
	DID:       "did",
	BID:       "bid",
	ADJCNT:    "adjcnt",
	LID:       "lid",
	PHADJ:     "phadj",
	ADJDIR:    "adjdir",
	L:         "l",
	SCR:       "scr",
	F:         "f",
	K:         "k",
	M:         "m",
	N:         "n",
	CS:        "cs",
	SUBCLASSV: "subclassv",
	S:         "s",
	JESDV:     "jesdv",
	CF:        "cf",
	HD:        "hd",
	RES1:      "res1",
	RES2:      "res2",
	CHKSUM:    "chksum",
}

func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "unknown"
}

// Slot places one field inside the descriptor.
type Slot struct {
	Field  Field
	Octet  uint8
	Offset uint8
	Width  uint8
}

// Layout is the static field table. A field may occupy more than one slot (n).
var Layout = [...]Slot{
	// ---- octet 0 ----
	{DID, 0, 0, 8},
	// ---- octet 1 ----
	{BID, 1, 0, 4},
	{ADJCNT, 1, 4, 8},
	// ---- octet 2 ----
	{LID, 2, 0, 5},
	{PHADJ, 2, 5, 5},
	{ADJDIR, 2, 6, 6},
	// ---- octet 3 ----
	{L, 3, 0, 5},
	{SCR, 3, 7, 8},
	// ---- octet 4 ----
	{F, 4, 0, 8},
	// ---- octet 5 ----
	{K, 5, 0, 4},
	// ---- octet 6 ----
	{M, 6, 0, 8},
	// ---- octet 7 ----
	{N, 7, 0, 5},
	{CS, 7, 6, 8},
	// ---- octet 8 ----
	{N, 8, 0, 5},
	{SUBCLASSV, 8, 5, 8},
	// ---- octet 9 ----
	{S, 9, 0, 5},
	{JESDV, 9, 5, 8},
	// ---- octet 10 ----
	{CF, 10, 0, 5},
	{HD, 10, 5, 8},
	// ---- octets 11-12: reserved, always 0 ----
	{RES1, 11, 0, 8},
	{RES2, 12, 0, 8},
	// ---- octet 13 ----
	{CHKSUM, ChecksumOctet, 0, 8},
}
