// internal/confdata/encode_test.go
package confdata

import "testing"

// mapSource is a field source backed by a map.
type mapSource map[Field]uint64

func (m mapSource) FieldValue(f Field) (uint64, bool) {
	v, ok := m[f]
	return v, ok
}

func TestEncode_ChecksumProperty(t *testing.T) {
	sources := []mapSource{
		{},
		{DID: 5, BID: 1, L: 4, M: 2, N: 14, S: 2, K: 31},
		{DID: 0xFF, BID: 0xF, LID: 31, L: 31, F: 0xFF, K: 0xF, M: 0xFF, N: 31, CS: 3, S: 31, CF: 31, HD: 1, SCR: 1},
	}

	for i, src := range sources {
		o := Encode(src)
		if o[ChecksumOctet] != Checksum(o[:ChecksumOctet]) {
			t.Fatalf("source %d: checksum mismatch: %v", i, o)
		}

		var sum int
		for _, b := range o[:ChecksumOctet] {
			sum += int(b)
		}
		if int(o[ChecksumOctet]) != sum%256 {
			t.Fatalf("source %d: checksum got=%d want=%d", i, o[ChecksumOctet], sum%256)
		}
	}
}

func TestEncode_Deterministic(t *testing.T) {
	src := mapSource{DID: 9, BID: 2, L: 8, M: 4, F: 2, S: 1, K: 16}

	if Encode(src) != Encode(src) {
		t.Fatalf("encode is not deterministic")
	}
}

func TestEncode_MasksWithoutClobbering(t *testing.T) {
	// l is 5 bits wide: 0b101000 masks to 0b01000.
	// scr shares octet 3 at bit 7.
	o := Encode(mapSource{L: 0b101000, SCR: 1})

	if o[3] != 0x88 {
		t.Fatalf("octet 3: got=%#x want=0x88", o[3])
	}

	// bid 4 bits: 0x1F -> 0xF; adjcnt occupies the high nibble.
	o = Encode(mapSource{BID: 0x1F, ADJCNT: 0xA})
	if o[1] != 0xAF {
		t.Fatalf("octet 1: got=%#x want=0xaf", o[1])
	}
}

func TestEncode_ReservedAlwaysZero(t *testing.T) {
	o := Encode(mapSource{RES1: 0xFF, RES2: 0xFF, CHKSUM: 0x42})

	if o[11] != 0 || o[12] != 0 {
		t.Fatalf("reserved octets not zero: %v", o)
	}
	if o[ChecksumOctet] != 0 {
		t.Fatalf("checksum of empty descriptor: got=%d want=0", o[ChecksumOctet])
	}
}

func TestEncode_NWrittenToBothOctets(t *testing.T) {
	o := Encode(mapSource{N: 14, CS: 2})

	if o[7] != 14|2<<6 {
		t.Fatalf("octet 7: got=%#x", o[7])
	}
	if o[8] != 14 {
		t.Fatalf("octet 8: got=%#x", o[8])
	}
}

func TestEncode_NilSource(t *testing.T) {
	if o := Encode(nil); o != (Octets{}) {
		t.Fatalf("nil source: got=%v want zeros", o)
	}
}

func TestOctets_Field(t *testing.T) {
	o := Encode(mapSource{DID: 5, BID: 1, CS: 3, SUBCLASSV: 1})

	if o.Field(DID) != 5 || o.Field(BID) != 1 || o.Field(CS) != 3 || o.Field(SUBCLASSV) != 1 {
		t.Fatalf("field extraction mismatch: %v", o)
	}
	if Field(200).String() != "unknown" {
		t.Fatalf("unexpected name for unknown field")
	}
}
