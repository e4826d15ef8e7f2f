// internal/cdc/bus.go
package cdc

import "github.com/tamzrod/jesdtx/internal/clock"

// BusSynchronizer carries a multi-bit word between domains with a toggle
// req/ack handshake. The source holds the word stable until the destination
// acknowledges it, so the destination only ever sees words the source held.
//
// Attach Source() to the source domain and Dest() to the destination domain.
type BusSynchronizer struct {
	src func() uint16

	// source side
	data    uint16
	dataN   uint16
	req     bool
	reqN    bool
	primed  bool
	primedN bool
	ackSync *Synchronizer

	// destination side
	out     uint16
	outN    uint16
	ack     bool
	ackN    bool
	reqSync *Synchronizer
}

func NewBusSynchronizer(src func() uint16, stages int) *BusSynchronizer {
	b := &BusSynchronizer{src: src}
	b.ackSync = NewSynchronizer(func() bool { return b.ack }, stages)
	b.reqSync = NewSynchronizer(func() bool { return b.req }, stages)
	return b
}

// Out is the last word delivered to the destination domain.
func (b *BusSynchronizer) Out() uint16 { return b.out }

// Busy reports a transfer in flight, as seen from the source domain.
func (b *BusSynchronizer) Busy() bool { return b.req != b.ackSync.Out() }

func (b *BusSynchronizer) Source() clock.Clocked { return busSource{b} }
func (b *BusSynchronizer) Dest() clock.Clocked   { return busDest{b} }

type busSource struct{ b *BusSynchronizer }

func (s busSource) Eval() {
	b := s.b
	b.ackSync.Eval()

	b.dataN, b.reqN, b.primedN = b.data, b.req, b.primed
	if b.Busy() {
		return
	}
	if v := b.src(); v != b.data || !b.primed {
		b.dataN = v
		b.reqN = !b.req
		b.primedN = true
	}
}

func (s busSource) Commit() {
	b := s.b
	b.ackSync.Commit()
	b.data, b.req, b.primed = b.dataN, b.reqN, b.primedN
}

type busDest struct{ b *BusSynchronizer }

func (d busDest) Eval() {
	b := d.b
	b.reqSync.Eval()

	b.outN, b.ackN = b.out, b.ack
	if r := b.reqSync.Out(); r != b.ack {
		b.outN = b.data
		b.ackN = r
	}
}

func (d busDest) Commit() {
	b := d.b
	b.reqSync.Commit()
	b.out, b.ack = b.outN, b.ackN
}
