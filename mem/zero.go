package mem

import "runtime"

// ZeroBytes overwrites a byte slice with zeros.
//
// SECURITY INVARIANT: the wipe must survive compiler optimization.
// runtime.KeepAlive creates a happens-before edge after the stores so
// the compiler cannot eliminate them as dead.
//
// LIMITATION: the runtime may already have moved or copied the backing
// memory. This is best-effort hygiene for key material, not a hard
// erasure guarantee.
func ZeroBytes(b []byte) {
	if len(b) == 0 {
		return
	}
	for i := range b {
		b[i] = 0
	}
	// Prevent compiler from eliminating the zeroing as a dead store.
	runtime.KeepAlive(b)
}

// ZeroWords overwrites a uint32 slice with zeros. Cipher and hash
// working state is word shaped; this is ZeroBytes for that state.
func ZeroWords(w []uint32) {
	if len(w) == 0 {
		return
	}
	for i := range w {
		w[i] = 0
	}
	runtime.KeepAlive(w)
}
