package commit

import "runtime"

// ZeroizeBytes clears buf. The stores are kept alive with runtime.KeepAlive
// (golang/go#33325). Copies held by the garbage collector or by the group
// backends are out of reach.
func ZeroizeBytes(buf []byte) {
	Zeroize(buf)
}

// Zeroize clears a buffer of integers, such as the entries of a discarded
// lattice randomness vector.
func Zeroize[T ~byte | ~uint32 | ~uint64 | ~int64](buf []T) {
	clear(buf)
	runtime.KeepAlive(buf)
}
