//go:build !amd64

package rng

func hasRDRAND() bool {
	return false
}

func rdrand16() (uint16, bool) {
	return 0, false
}
