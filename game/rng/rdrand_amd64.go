//go:build amd64

package rng

import "golang.org/x/sys/cpu"

func hasRDRAND() bool {
	return cpu.X86.HasRDRAND
}

// rdrand16 executes RDRAND once. ok is false when the carry flag reports
// that no value was available.
func rdrand16() (v uint16, ok bool)
