// internal/status/encode_test.go
package status

import (
	"testing"

	"github.com/tamzrod/jesdtx/internal/confdata"
)

func TestEncode_Layout(t *testing.T) {
	regs := Encode(Snapshot{
		Enable:       true,
		Ready:        true,
		PRBSConfig:   0x13, // masked to 4 bits
		JSync:        true,
		RestartCount: 42,
		LastExit:     2,
	})

	if len(regs) != RegistersPerCore {
		t.Fatalf("block size: got=%d want=%d", len(regs), RegistersPerCore)
	}

	want := map[int]uint16{
		RegEnable:            1,
		RegReady:             1,
		RegPRBSConfig:        3,
		RegSTPLEnable:        0,
		RegJSync:             1,
		RegRestartCountClear: 0,
		RegRestartCount:      42,
		RegLastExit:          2,
	}
	for addr, v := range want {
		if regs[addr] != v {
			t.Fatalf("reg %d: got=%d want=%d", addr, regs[addr], v)
		}
	}
}

func TestEncodeDescriptor(t *testing.T) {
	var o confdata.Octets
	for i := range o {
		o[i] = byte(i + 1)
	}

	regs := EncodeDescriptor(o)
	if len(regs) != DescriptorWords {
		t.Fatalf("words: got=%d want=%d", len(regs), DescriptorWords)
	}
	if regs[0] != 0x0102 || regs[6] != 0x0D0E {
		t.Fatalf("packing: got=%#x .. %#x", regs[0], regs[6])
	}
	if BlockWords(4) != RegistersPerCore+28 {
		t.Fatalf("block words: got=%d", BlockWords(4))
	}
}
