// internal/modbus/client_test.go
package modbus

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/goburrow/modbus"

	"github.com/tamzrod/jesdtx/internal/status"
)

// ---- fake bus ----

// fakeBus records FC 16 requests and enforces the per-request register limit.
// Methods the adapter does not use panic through the nil embedded interface.
type fakeBus struct {
	modbus.Client

	addrs []uint16
	qtys  []uint16
	mem   map[uint16]uint16
}

func (f *fakeBus) WriteMultipleRegisters(addr, qty uint16, value []byte) ([]byte, error) {
	if qty < 1 || qty > status.MaxWriteWords {
		return nil, fmt.Errorf("modbus: quantity '%d' must be between '1' and '%d'", qty, status.MaxWriteWords)
	}
	f.addrs = append(f.addrs, addr)
	f.qtys = append(f.qtys, qty)
	for i, v := range unpackRegisters(value) {
		f.mem[addr+uint16(i)] = v
	}
	return nil, nil
}

func (f *fakeBus) WriteSingleRegister(addr, value uint16) ([]byte, error) {
	f.mem[addr] = value
	return nil, nil
}

func TestPackUnpackRegisters(t *testing.T) {
	regs := []uint16{0x0001, 0xABCD, 0xFFFF}

	raw := packRegisters(regs)
	want := []byte{0x00, 0x01, 0xAB, 0xCD, 0xFF, 0xFF}
	if !reflect.DeepEqual(raw, want) {
		t.Fatalf("pack: got=%x want=%x", raw, want)
	}

	// odd trailing byte is ignored
	if got := unpackRegisters(append(raw, 0x42)); !reflect.DeepEqual(got, regs) {
		t.Fatalf("unpack: got=%v want=%v", got, regs)
	}
}

func TestNew_EndpointRequired(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected endpoint error, got nil")
	}
}

func TestWriteRegisters_SplitsLongBlocks(t *testing.T) {
	bus := &fakeBus{mem: map[uint16]uint16{}}
	c := &Client{client: bus}

	regs := make([]uint16, status.BlockWords(31)) // 225 words
	for i := range regs {
		regs[i] = uint16(i + 1)
	}

	if err := c.WriteRegisters(100, regs); err != nil {
		t.Fatalf("WriteRegisters err=%v", err)
	}

	wantAddrs := []uint16{100, 223}
	wantQtys := []uint16{123, 102}
	if !reflect.DeepEqual(bus.addrs, wantAddrs) || !reflect.DeepEqual(bus.qtys, wantQtys) {
		t.Fatalf("requests: addrs=%v qtys=%v want addrs=%v qtys=%v", bus.addrs, bus.qtys, wantAddrs, wantQtys)
	}
	for i, v := range regs {
		if got := bus.mem[100+uint16(i)]; got != v {
			t.Fatalf("word %d: got=%d want=%d", i, got, v)
		}
	}
}

func TestWriteRegisters_RejectsAddressOverflow(t *testing.T) {
	c := &Client{client: &fakeBus{mem: map[uint16]uint16{}}}

	if err := c.WriteRegisters(0xFFFF, []uint16{1, 2}); err == nil {
		t.Fatalf("expected address space error, got nil")
	}
}
