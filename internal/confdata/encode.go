// internal/confdata/encode.go
package confdata

// FieldSource supplies field values for encoding.
// A source reports ok=false for fields it does not own; those encode as 0.
type FieldSource interface {
	FieldValue(f Field) (uint64, bool)
}

// Octets is one encoded configuration descriptor.
type Octets [Length]byte

// Encode packs a field source into the 14-octet descriptor.
// Values wider than their slot are masked, never rejected.
// No IO. No side effects.
func Encode(src FieldSource) Octets {
	var o Octets

	for _, sl := range Layout {
		switch sl.Field {
		case RES1, RES2, CHKSUM:
			continue
		}

		var v uint64
		if src != nil {
			if got, ok := src.FieldValue(sl.Field); ok {
				v = got
			}
		}

		o[sl.Octet] |= byte((v & mask(sl.Width)) << sl.Offset)
	}

	o[ChecksumOctet] = Checksum(o[:ChecksumOctet])
	return o
}

// Checksum is the 8-bit running sum (mod 256) of the given octets.
func Checksum(octets []byte) byte {
	var sum byte
	for _, b := range octets {
		sum += b
	}
	return sum
}

// Valid reports whether the checksum octet matches octets 0-12.
func (o Octets) Valid() bool {
	return o[ChecksumOctet] == Checksum(o[:ChecksumOctet])
}

// Field extracts the value of f from its first slot.
// Bits of the slot that fall outside the octet are not recoverable.
func (o Octets) Field(f Field) uint64 {
	for _, sl := range Layout {
		if sl.Field != f {
			continue
		}
		return (uint64(o[sl.Octet]) >> sl.Offset) & mask(sl.Width)
	}
	return 0
}

func mask(width uint8) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return 1<<width - 1
}
