// Package rng provides the 16-bit random sources used for food placement.
package rng

import (
	"math"

	"golang.org/x/exp/rand"
)

// Source produces uniformly distributed 16-bit values.
type Source interface {
	Uint16() uint16
}

// Scale maps a raw draw onto [0, dim) as floor(raw / 65535 * dim). The
// single raw value 65535 would land on dim itself and is pulled back to
// the last index.
func Scale(raw uint16, dim int) int {
	if dim <= 0 {
		return 0
	}
	v := int(float64(raw) / float64(math.MaxUint16) * float64(dim))
	if v >= dim {
		v = dim - 1
	}
	return v
}

// Seeded is a deterministic source for tests and replayable sessions.
type Seeded struct {
	r *rand.Rand
}

func NewSeeded(seed uint64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))}
}

func (s *Seeded) Uint16() uint16 {
	return uint16(s.r.Uint32() >> 16)
}

// Sequence replays a fixed list of values, wrapping around at the end.
type Sequence struct {
	values []uint16
	next   int
}

func NewSequence(values ...uint16) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Uint16() uint16 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}
