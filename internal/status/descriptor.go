// internal/status/descriptor.go
package status

import "github.com/tamzrod/jesdtx/internal/confdata"

// EncodeDescriptor packs 14 configuration octets into 7 words.
// Each word stores two octets in big-endian order.
func EncodeDescriptor(o confdata.Octets) []uint16 {
	out := make([]uint16, DescriptorWords)
	for i := 0; i < confdata.Length; i += 2 {
		out[i/2] = uint16(o[i])<<8 | uint16(o[i+1])
	}
	return out
}
