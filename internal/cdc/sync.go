// internal/cdc/sync.go
package cdc

// MinStages is the smallest synchronizer depth accepted.
const MinStages = 2

// Synchronizer carries a single bit into the domain it is attached to.
// Out follows the source after exactly Stages() destination ticks.
type Synchronizer struct {
	src  func() bool
	cur  []bool
	next []bool
}

// NewSynchronizer builds a synchronizer. Depths below MinStages are raised to MinStages.
func NewSynchronizer(src func() bool, stages int) *Synchronizer {
	if stages < MinStages {
		stages = MinStages
	}
	return &Synchronizer{
		src:  src,
		cur:  make([]bool, stages),
		next: make([]bool, stages),
	}
}

func (s *Synchronizer) Eval() {
	s.next[0] = s.src()
	for i := 1; i < len(s.cur); i++ {
		s.next[i] = s.cur[i-1]
	}
}

func (s *Synchronizer) Commit() {
	copy(s.cur, s.next)
}

// Out is the synchronized value.
func (s *Synchronizer) Out() bool { return s.cur[len(s.cur)-1] }

func (s *Synchronizer) Stages() int { return len(s.cur) }
