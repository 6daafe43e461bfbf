package mem

// Equal reports whether a and b have identical contents without
// data-dependent branching. The comparison always walks the full
// length, so the position of the first differing byte does not change
// execution time. Slices of different length compare unequal up
// front; lengths are not secret.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var v byte
	for i := range a {
		v |= a[i] ^ b[i]
	}
	return v == 0
}
