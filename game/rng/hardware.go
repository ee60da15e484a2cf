package rng

import (
	"crypto/rand"
	"encoding/binary"
)

// Hardware draws from the CPU's RDRAND instruction when the processor
// supports it and from the OS entropy pool otherwise. Both paths retry
// until a value is produced, with no upper bound.
type Hardware struct {
	rdrand bool
}

func NewHardware() *Hardware {
	return &Hardware{rdrand: hasRDRAND()}
}

// UsesRDRAND reports whether values come from the CPU instruction.
func (h *Hardware) UsesRDRAND() bool {
	return h.rdrand
}

func (h *Hardware) Uint16() uint16 {
	if h.rdrand {
		for {
			if v, ok := rdrand16(); ok {
				return v
			}
		}
	}

	var buf [2]byte
	for {
		if _, err := rand.Read(buf[:]); err == nil {
			return binary.LittleEndian.Uint16(buf[:])
		}
	}
}
