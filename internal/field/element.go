// Package field implements arithmetic over GF(2^255 - 19), the base
// field of Curve25519.
//
// An Element holds ten signed 64-bit limbs h0..h9 in an alternating
// 26/25-bit radix: the represented value is
//
//	h0 + 2^26 h1 + 2^51 h2 + 2^77 h3 + 2^102 h4 +
//	2^128 h5 + 2^153 h6 + 2^179 h7 + 2^204 h8 + 2^230 h9
//
// The representation is redundant. Addition and subtraction skip
// carrying entirely; limb growth is absorbed by the carry chain of the
// next multiplication, and products of bounded limbs never overflow
// int64. ToBytes emits the unique fully reduced encoding.
package field

// Element is a field element of GF(2^255 - 19).
type Element [10]int64

// Zero sets h = 0.
func Zero(h *Element) {
	for i := range h {
		h[i] = 0
	}
}

// One sets h = 1.
func One(h *Element) {
	Zero(h)
	h[0] = 1
}

// Copy sets h = f.
func Copy(h, f *Element) {
	*h = *f
}

// Add sets h = f + g. Limbs are added without carrying.
func Add(h, f, g *Element) {
	for i := range h {
		h[i] = f[i] + g[i]
	}
}

// Sub sets h = f - g. Limbs may go negative; the signed representation
// absorbs that until the next carried operation.
func Sub(h, f, g *Element) {
	for i := range h {
		h[i] = f[i] - g[i]
	}
}

// CSwap swaps f and g when swap is 1 and leaves both untouched when
// swap is 0. The selection is a mask, never a branch, so the memory
// access pattern does not depend on swap.
func CSwap(f, g *Element, swap int64) {
	mask := -swap
	for i := range f {
		t := mask & (f[i] ^ g[i])
		f[i] ^= t
		g[i] ^= t
	}
}

func load3(b []byte) int64 {
	return int64(b[0]) | int64(b[1])<<8 | int64(b[2])<<16
}

func load4(b []byte) int64 {
	return int64(b[0]) | int64(b[1])<<8 | int64(b[2])<<16 | int64(b[3])<<24
}

// FromBytes deserializes a little-endian 32-byte encoding into h.
// Bit 255 is masked off, so the two encodings of values in
// [2^255-19, 2^255) alias their reduced counterparts.
func FromBytes(h *Element, src *[32]byte) {
	h0 := load4(src[0:])
	h1 := load3(src[4:]) << 6
	h2 := load3(src[7:]) << 5
	h3 := load3(src[10:]) << 3
	h4 := load3(src[13:]) << 2
	h5 := load4(src[16:])
	h6 := load3(src[20:]) << 7
	h7 := load3(src[23:]) << 5
	h8 := load3(src[26:]) << 4
	h9 := (load3(src[29:]) & 8388607) << 2

	carry9 := (h9 + (1 << 24)) >> 25
	h0 += carry9 * 19
	h9 -= carry9 << 25
	carry1 := (h1 + (1 << 24)) >> 25
	h2 += carry1
	h1 -= carry1 << 25
	carry3 := (h3 + (1 << 24)) >> 25
	h4 += carry3
	h3 -= carry3 << 25
	carry5 := (h5 + (1 << 24)) >> 25
	h6 += carry5
	h5 -= carry5 << 25
	carry7 := (h7 + (1 << 24)) >> 25
	h8 += carry7
	h7 -= carry7 << 25

	carry0 := (h0 + (1 << 25)) >> 26
	h1 += carry0
	h0 -= carry0 << 26
	carry2 := (h2 + (1 << 25)) >> 26
	h3 += carry2
	h2 -= carry2 << 26
	carry4 := (h4 + (1 << 25)) >> 26
	h5 += carry4
	h4 -= carry4 << 26
	carry6 := (h6 + (1 << 25)) >> 26
	h7 += carry6
	h6 -= carry6 << 26
	carry8 := (h8 + (1 << 25)) >> 26
	h9 += carry8
	h8 -= carry8 << 26

	h[0] = h0
	h[1] = h1
	h[2] = h2
	h[3] = h3
	h[4] = h4
	h[5] = h5
	h[6] = h6
	h[7] = h7
	h[8] = h8
	h[9] = h9
}

// ToBytes serializes h into its unique reduced little-endian encoding.
// The leading term of the carry chain computes q = floor(h/p) for the
// bounded limb ranges produced by the arithmetic here, so the output
// is h mod p with bit 255 clear.
func ToBytes(dst *[32]byte, h *Element) {
	h0 := h[0]
	h1 := h[1]
	h2 := h[2]
	h3 := h[3]
	h4 := h[4]
	h5 := h[5]
	h6 := h[6]
	h7 := h[7]
	h8 := h[8]
	h9 := h[9]

	q := (19*h9 + (1 << 24)) >> 25
	q = (h0 + q) >> 26
	q = (h1 + q) >> 25
	q = (h2 + q) >> 26
	q = (h3 + q) >> 25
	q = (h4 + q) >> 26
	q = (h5 + q) >> 25
	q = (h6 + q) >> 26
	q = (h7 + q) >> 25
	q = (h8 + q) >> 26
	q = (h9 + q) >> 25

	// h - q*p = h - 2^255 q + 19 q, in [0, 2^255-20].
	h0 += 19 * q

	carry0 := h0 >> 26
	h1 += carry0
	h0 -= carry0 << 26
	carry1 := h1 >> 25
	h2 += carry1
	h1 -= carry1 << 25
	carry2 := h2 >> 26
	h3 += carry2
	h2 -= carry2 << 26
	carry3 := h3 >> 25
	h4 += carry3
	h3 -= carry3 << 25
	carry4 := h4 >> 26
	h5 += carry4
	h4 -= carry4 << 26
	carry5 := h5 >> 25
	h6 += carry5
	h5 -= carry5 << 25
	carry6 := h6 >> 26
	h7 += carry6
	h6 -= carry6 << 26
	carry7 := h7 >> 25
	h8 += carry7
	h7 -= carry7 << 25
	carry8 := h8 >> 26
	h9 += carry8
	h8 -= carry8 << 26
	carry9 := h9 >> 25
	h9 -= carry9 << 25
	// The 2^255 carry out of h9 is discarded: the value is already
	// below 2^255.

	dst[0] = byte(h0 >> 0)
	dst[1] = byte(h0 >> 8)
	dst[2] = byte(h0 >> 16)
	dst[3] = byte((h0 >> 24) | (h1 << 2))
	dst[4] = byte(h1 >> 6)
	dst[5] = byte(h1 >> 14)
	dst[6] = byte((h1 >> 22) | (h2 << 3))
	dst[7] = byte(h2 >> 5)
	dst[8] = byte(h2 >> 13)
	dst[9] = byte((h2 >> 21) | (h3 << 5))
	dst[10] = byte(h3 >> 3)
	dst[11] = byte(h3 >> 11)
	dst[12] = byte((h3 >> 19) | (h4 << 6))
	dst[13] = byte(h4 >> 2)
	dst[14] = byte(h4 >> 10)
	dst[15] = byte(h4 >> 18)
	dst[16] = byte(h5 >> 0)
	dst[17] = byte(h5 >> 8)
	dst[18] = byte(h5 >> 16)
	dst[19] = byte((h5 >> 24) | (h6 << 1))
	dst[20] = byte(h6 >> 7)
	dst[21] = byte(h6 >> 15)
	dst[22] = byte((h6 >> 23) | (h7 << 3))
	dst[23] = byte(h7 >> 5)
	dst[24] = byte(h7 >> 13)
	dst[25] = byte((h7 >> 21) | (h8 << 4))
	dst[26] = byte(h8 >> 4)
	dst[27] = byte(h8 >> 12)
	dst[28] = byte((h8 >> 20) | (h9 << 6))
	dst[29] = byte(h9 >> 2)
	dst[30] = byte(h9 >> 10)
	dst[31] = byte(h9 >> 18)
}

// Mul sets h = f * g.
//
// The schoolbook products land on limb positions (i+j) mod 10. Terms
// that fold past 2^255 pick up the factor 19; products of two
// odd-indexed limbs are additionally doubled because their radix
// positions sum one bit short of the target limb. The _19, _2 and _38
// suffixes below name those combined factors.
func Mul(h, f, g *Element) {
	f0 := f[0]
	f1 := f[1]
	f2 := f[2]
	f3 := f[3]
	f4 := f[4]
	f5 := f[5]
	f6 := f[6]
	f7 := f[7]
	f8 := f[8]
	f9 := f[9]
	g0 := g[0]
	g1 := g[1]
	g2 := g[2]
	g3 := g[3]
	g4 := g[4]
	g5 := g[5]
	g6 := g[6]
	g7 := g[7]
	g8 := g[8]
	g9 := g[9]

	g1_19 := 19 * g1
	g2_19 := 19 * g2
	g3_19 := 19 * g3
	g4_19 := 19 * g4
	g5_19 := 19 * g5
	g6_19 := 19 * g6
	g7_19 := 19 * g7
	g8_19 := 19 * g8
	g9_19 := 19 * g9
	f1_2 := 2 * f1
	f3_2 := 2 * f3
	f5_2 := 2 * f5
	f7_2 := 2 * f7
	f9_2 := 2 * f9

	f0g0 := f0 * g0
	f0g1 := f0 * g1
	f0g2 := f0 * g2
	f0g3 := f0 * g3
	f0g4 := f0 * g4
	f0g5 := f0 * g5
	f0g6 := f0 * g6
	f0g7 := f0 * g7
	f0g8 := f0 * g8
	f0g9 := f0 * g9
	f1g0 := f1 * g0
	f1g1_2 := f1_2 * g1
	f1g2 := f1 * g2
	f1g3_2 := f1_2 * g3
	f1g4 := f1 * g4
	f1g5_2 := f1_2 * g5
	f1g6 := f1 * g6
	f1g7_2 := f1_2 * g7
	f1g8 := f1 * g8
	f1g9_38 := f1_2 * g9_19
	f2g0 := f2 * g0
	f2g1 := f2 * g1
	f2g2 := f2 * g2
	f2g3 := f2 * g3
	f2g4 := f2 * g4
	f2g5 := f2 * g5
	f2g6 := f2 * g6
	f2g7 := f2 * g7
	f2g8_19 := f2 * g8_19
	f2g9_19 := f2 * g9_19
	f3g0 := f3 * g0
	f3g1_2 := f3_2 * g1
	f3g2 := f3 * g2
	f3g3_2 := f3_2 * g3
	f3g4 := f3 * g4
	f3g5_2 := f3_2 * g5
	f3g6 := f3 * g6
	f3g7_38 := f3_2 * g7_19
	f3g8_19 := f3 * g8_19
	f3g9_38 := f3_2 * g9_19
	f4g0 := f4 * g0
	f4g1 := f4 * g1
	f4g2 := f4 * g2
	f4g3 := f4 * g3
	f4g4 := f4 * g4
	f4g5 := f4 * g5
	f4g6_19 := f4 * g6_19
	f4g7_19 := f4 * g7_19
	f4g8_19 := f4 * g8_19
	f4g9_19 := f4 * g9_19
	f5g0 := f5 * g0
	f5g1_2 := f5_2 * g1
	f5g2 := f5 * g2
	f5g3_2 := f5_2 * g3
	f5g4 := f5 * g4
	f5g5_38 := f5_2 * g5_19
	f5g6_19 := f5 * g6_19
	f5g7_38 := f5_2 * g7_19
	f5g8_19 := f5 * g8_19
	f5g9_38 := f5_2 * g9_19
	f6g0 := f6 * g0
	f6g1 := f6 * g1
	f6g2 := f6 * g2
	f6g3 := f6 * g3
	f6g4_19 := f6 * g4_19
	f6g5_19 := f6 * g5_19
	f6g6_19 := f6 * g6_19
	f6g7_19 := f6 * g7_19
	f6g8_19 := f6 * g8_19
	f6g9_19 := f6 * g9_19
	f7g0 := f7 * g0
	f7g1_2 := f7_2 * g1
	f7g2 := f7 * g2
	f7g3_38 := f7_2 * g3_19
	f7g4_19 := f7 * g4_19
	f7g5_38 := f7_2 * g5_19
	f7g6_19 := f7 * g6_19
	f7g7_38 := f7_2 * g7_19
	f7g8_19 := f7 * g8_19
	f7g9_38 := f7_2 * g9_19
	f8g0 := f8 * g0
	f8g1 := f8 * g1
	f8g2_19 := f8 * g2_19
	f8g3_19 := f8 * g3_19
	f8g4_19 := f8 * g4_19
	f8g5_19 := f8 * g5_19
	f8g6_19 := f8 * g6_19
	f8g7_19 := f8 * g7_19
	f8g8_19 := f8 * g8_19
	f8g9_19 := f8 * g9_19
	f9g0 := f9 * g0
	f9g1_38 := f9_2 * g1_19
	f9g2_19 := f9 * g2_19
	f9g3_38 := f9_2 * g3_19
	f9g4_19 := f9 * g4_19
	f9g5_38 := f9_2 * g5_19
	f9g6_19 := f9 * g6_19
	f9g7_38 := f9_2 * g7_19
	f9g8_19 := f9 * g8_19
	f9g9_38 := f9_2 * g9_19

	h0 := f0g0 + f1g9_38 + f2g8_19 + f3g7_38 + f4g6_19 + f5g5_38 + f6g4_19 + f7g3_38 + f8g2_19 + f9g1_38
	h1 := f0g1 + f1g0 + f2g9_19 + f3g8_19 + f4g7_19 + f5g6_19 + f6g5_19 + f7g4_19 + f8g3_19 + f9g2_19
	h2 := f0g2 + f1g1_2 + f2g0 + f3g9_38 + f4g8_19 + f5g7_38 + f6g6_19 + f7g5_38 + f8g4_19 + f9g3_38
	h3 := f0g3 + f1g2 + f2g1 + f3g0 + f4g9_19 + f5g8_19 + f6g7_19 + f7g6_19 + f8g5_19 + f9g4_19
	h4 := f0g4 + f1g3_2 + f2g2 + f3g1_2 + f4g0 + f5g9_38 + f6g8_19 + f7g7_38 + f8g6_19 + f9g5_38
	h5 := f0g5 + f1g4 + f2g3 + f3g2 + f4g1 + f5g0 + f6g9_19 + f7g8_19 + f8g7_19 + f9g6_19
	h6 := f0g6 + f1g5_2 + f2g4 + f3g3_2 + f4g2 + f5g1_2 + f6g0 + f7g9_38 + f8g8_19 + f9g7_38
	h7 := f0g7 + f1g6 + f2g5 + f3g4 + f4g3 + f5g2 + f6g1 + f7g0 + f8g9_19 + f9g8_19
	h8 := f0g8 + f1g7_2 + f2g6 + f3g5_2 + f4g4 + f5g3_2 + f6g2 + f7g1_2 + f8g0 + f9g9_38
	h9 := f0g9 + f1g8 + f2g7 + f3g6 + f4g5 + f5g4 + f6g3 + f7g2 + f8g1 + f9g0

	carry0 := (h0 + (1 << 25)) >> 26
	h1 += carry0
	h0 -= carry0 << 26
	carry4 := (h4 + (1 << 25)) >> 26
	h5 += carry4
	h4 -= carry4 << 26

	carry1 := (h1 + (1 << 24)) >> 25
	h2 += carry1
	h1 -= carry1 << 25
	carry5 := (h5 + (1 << 24)) >> 25
	h6 += carry5
	h5 -= carry5 << 25

	carry2 := (h2 + (1 << 25)) >> 26
	h3 += carry2
	h2 -= carry2 << 26
	carry6 := (h6 + (1 << 25)) >> 26
	h7 += carry6
	h6 -= carry6 << 26

	carry3 := (h3 + (1 << 24)) >> 25
	h4 += carry3
	h3 -= carry3 << 25
	carry7 := (h7 + (1 << 24)) >> 25
	h8 += carry7
	h7 -= carry7 << 25

	carry4 = (h4 + (1 << 25)) >> 26
	h5 += carry4
	h4 -= carry4 << 26
	carry8 := (h8 + (1 << 25)) >> 26
	h9 += carry8
	h8 -= carry8 << 26

	carry9 := (h9 + (1 << 24)) >> 25
	h0 += carry9 * 19
	h9 -= carry9 << 25

	carry0 = (h0 + (1 << 25)) >> 26
	h1 += carry0
	h0 -= carry0 << 26

	h[0] = h0
	h[1] = h1
	h[2] = h2
	h[3] = h3
	h[4] = h4
	h[5] = h5
	h[6] = h6
	h[7] = h7
	h[8] = h8
	h[9] = h9
}

// Square sets h = f * f. Same reduction rules as Mul with the
// symmetric cross terms pre-doubled.
func Square(h, f *Element) {
	f0 := f[0]
	f1 := f[1]
	f2 := f[2]
	f3 := f[3]
	f4 := f[4]
	f5 := f[5]
	f6 := f[6]
	f7 := f[7]
	f8 := f[8]
	f9 := f[9]

	f0_2 := 2 * f0
	f1_2 := 2 * f1
	f2_2 := 2 * f2
	f3_2 := 2 * f3
	f4_2 := 2 * f4
	f5_2 := 2 * f5
	f6_2 := 2 * f6
	f7_2 := 2 * f7
	f5_38 := 38 * f5
	f6_19 := 19 * f6
	f7_38 := 38 * f7
	f8_19 := 19 * f8
	f9_38 := 38 * f9

	f0f0 := f0 * f0
	f0f1_2 := f0_2 * f1
	f0f2_2 := f0_2 * f2
	f0f3_2 := f0_2 * f3
	f0f4_2 := f0_2 * f4
	f0f5_2 := f0_2 * f5
	f0f6_2 := f0_2 * f6
	f0f7_2 := f0_2 * f7
	f0f8_2 := f0_2 * f8
	f0f9_2 := f0_2 * f9
	f1f1_2 := f1_2 * f1
	f1f2_2 := f1_2 * f2
	f1f3_4 := f1_2 * f3_2
	f1f4_2 := f1_2 * f4
	f1f5_4 := f1_2 * f5_2
	f1f6_2 := f1_2 * f6
	f1f7_4 := f1_2 * f7_2
	f1f8_2 := f1_2 * f8
	f1f9_76 := f1_2 * f9_38
	f2f2 := f2 * f2
	f2f3_2 := f2_2 * f3
	f2f4_2 := f2_2 * f4
	f2f5_2 := f2_2 * f5
	f2f6_2 := f2_2 * f6
	f2f7_2 := f2_2 * f7
	f2f8_38 := f2_2 * f8_19
	f2f9_38 := f2 * f9_38
	f3f3_2 := f3_2 * f3
	f3f4_2 := f3_2 * f4
	f3f5_4 := f3_2 * f5_2
	f3f6_2 := f3_2 * f6
	f3f7_76 := f3_2 * f7_38
	f3f8_38 := f3_2 * f8_19
	f3f9_76 := f3_2 * f9_38
	f4f4 := f4 * f4
	f4f5_2 := f4_2 * f5
	f4f6_38 := f4_2 * f6_19
	f4f7_38 := f4 * f7_38
	f4f8_38 := f4_2 * f8_19
	f4f9_38 := f4 * f9_38
	f5f5_38 := f5 * f5_38
	f5f6_38 := f5_2 * f6_19
	f5f7_76 := f5_2 * f7_38
	f5f8_38 := f5_2 * f8_19
	f5f9_76 := f5_2 * f9_38
	f6f6_19 := f6 * f6_19
	f6f7_38 := f6 * f7_38
	f6f8_38 := f6_2 * f8_19
	f6f9_38 := f6 * f9_38
	f7f7_38 := f7 * f7_38
	f7f8_38 := f7_2 * f8_19
	f7f9_76 := f7_2 * f9_38
	f8f8_19 := f8 * f8_19
	f8f9_38 := f8 * f9_38
	f9f9_38 := f9 * f9_38

	h0 := f0f0 + f1f9_76 + f2f8_38 + f3f7_76 + f4f6_38 + f5f5_38
	h1 := f0f1_2 + f2f9_38 + f3f8_38 + f4f7_38 + f5f6_38
	h2 := f0f2_2 + f1f1_2 + f3f9_76 + f4f8_38 + f5f7_76 + f6f6_19
	h3 := f0f3_2 + f1f2_2 + f4f9_38 + f5f8_38 + f6f7_38
	h4 := f0f4_2 + f1f3_4 + f2f2 + f5f9_76 + f6f8_38 + f7f7_38
	h5 := f0f5_2 + f1f4_2 + f2f3_2 + f6f9_38 + f7f8_38
	h6 := f0f6_2 + f1f5_4 + f2f4_2 + f3f3_2 + f7f9_76 + f8f8_19
	h7 := f0f7_2 + f1f6_2 + f2f5_2 + f3f4_2 + f8f9_38
	h8 := f0f8_2 + f1f7_4 + f2f6_2 + f3f5_4 + f4f4 + f9f9_38
	h9 := f0f9_2 + f1f8_2 + f2f7_2 + f3f6_2 + f4f5_2

	carry0 := (h0 + (1 << 25)) >> 26
	h1 += carry0
	h0 -= carry0 << 26
	carry4 := (h4 + (1 << 25)) >> 26
	h5 += carry4
	h4 -= carry4 << 26

	carry1 := (h1 + (1 << 24)) >> 25
	h2 += carry1
	h1 -= carry1 << 25
	carry5 := (h5 + (1 << 24)) >> 25
	h6 += carry5
	h5 -= carry5 << 25

	carry2 := (h2 + (1 << 25)) >> 26
	h3 += carry2
	h2 -= carry2 << 26
	carry6 := (h6 + (1 << 25)) >> 26
	h7 += carry6
	h6 -= carry6 << 26

	carry3 := (h3 + (1 << 24)) >> 25
	h4 += carry3
	h3 -= carry3 << 25
	carry7 := (h7 + (1 << 24)) >> 25
	h8 += carry7
	h7 -= carry7 << 25

	carry4 = (h4 + (1 << 25)) >> 26
	h5 += carry4
	h4 -= carry4 << 26
	carry8 := (h8 + (1 << 25)) >> 26
	h9 += carry8
	h8 -= carry8 << 26

	carry9 := (h9 + (1 << 24)) >> 25
	h0 += carry9 * 19
	h9 -= carry9 << 25

	carry0 = (h0 + (1 << 25)) >> 26
	h1 += carry0
	h0 -= carry0 << 26

	h[0] = h0
	h[1] = h1
	h[2] = h2
	h[3] = h3
	h[4] = h4
	h[5] = h5
	h[6] = h6
	h[7] = h7
	h[8] = h8
	h[9] = h9
}

// Mul121666 sets h = f * 121666, the curve constant (A+2)/4 + 1 used
// by the a24 step of the Montgomery ladder.
func Mul121666(h, f *Element) {
	h0 := f[0] * 121666
	h1 := f[1] * 121666
	h2 := f[2] * 121666
	h3 := f[3] * 121666
	h4 := f[4] * 121666
	h5 := f[5] * 121666
	h6 := f[6] * 121666
	h7 := f[7] * 121666
	h8 := f[8] * 121666
	h9 := f[9] * 121666

	carry9 := (h9 + (1 << 24)) >> 25
	h0 += carry9 * 19
	h9 -= carry9 << 25
	carry1 := (h1 + (1 << 24)) >> 25
	h2 += carry1
	h1 -= carry1 << 25
	carry3 := (h3 + (1 << 24)) >> 25
	h4 += carry3
	h3 -= carry3 << 25
	carry5 := (h5 + (1 << 24)) >> 25
	h6 += carry5
	h5 -= carry5 << 25
	carry7 := (h7 + (1 << 24)) >> 25
	h8 += carry7
	h7 -= carry7 << 25

	carry0 := (h0 + (1 << 25)) >> 26
	h1 += carry0
	h0 -= carry0 << 26
	carry2 := (h2 + (1 << 25)) >> 26
	h3 += carry2
	h2 -= carry2 << 26
	carry4 := (h4 + (1 << 25)) >> 26
	h5 += carry4
	h4 -= carry4 << 26
	carry6 := (h6 + (1 << 25)) >> 26
	h7 += carry6
	h6 -= carry6 << 26
	carry8 := (h8 + (1 << 25)) >> 26
	h9 += carry8
	h8 -= carry8 << 26

	h[0] = h0
	h[1] = h1
	h[2] = h2
	h[3] = h3
	h[4] = h4
	h[5] = h5
	h[6] = h6
	h[7] = h7
	h[8] = h8
	h[9] = h9
}

// Invert sets out = z^(p-2) = z^-1 by Fermat's little theorem, via the
// standard addition chain of 254 squarings and 11 multiplications.
// The chain runs through z^(2^5-1), z^(2^10-1), z^(2^20-1), z^(2^40-1),
// z^(2^50-1), z^(2^100-1), z^(2^200-1) and z^(2^250-1).
func Invert(out, z *Element) {
	var t0, t1, t2, t3 Element

	Square(&t0, z) // t0 = z^2
	Square(&t1, &t0)
	Square(&t1, &t1)   // t1 = z^8
	Mul(&t1, z, &t1)   // t1 = z^9
	Mul(&t0, &t0, &t1) // t0 = z^11
	Square(&t2, &t0)   // t2 = z^22
	Mul(&t1, &t1, &t2) // t1 = z^31 = z^(2^5-1)

	Square(&t2, &t1)
	for i := 1; i < 5; i++ {
		Square(&t2, &t2)
	}
	Mul(&t1, &t2, &t1) // t1 = z^(2^10-1)

	Square(&t2, &t1)
	for i := 1; i < 10; i++ {
		Square(&t2, &t2)
	}
	Mul(&t2, &t2, &t1) // t2 = z^(2^20-1)

	Square(&t3, &t2)
	for i := 1; i < 20; i++ {
		Square(&t3, &t3)
	}
	Mul(&t2, &t3, &t2) // t2 = z^(2^40-1)

	Square(&t2, &t2)
	for i := 1; i < 10; i++ {
		Square(&t2, &t2)
	}
	Mul(&t1, &t2, &t1) // t1 = z^(2^50-1)

	Square(&t2, &t1)
	for i := 1; i < 50; i++ {
		Square(&t2, &t2)
	}
	Mul(&t2, &t2, &t1) // t2 = z^(2^100-1)

	Square(&t3, &t2)
	for i := 1; i < 100; i++ {
		Square(&t3, &t3)
	}
	Mul(&t2, &t3, &t2) // t2 = z^(2^200-1)

	Square(&t2, &t2)
	for i := 1; i < 50; i++ {
		Square(&t2, &t2)
	}
	Mul(&t1, &t2, &t1) // t1 = z^(2^250-1)

	Square(&t1, &t1)
	for i := 1; i < 5; i++ {
		Square(&t1, &t1)
	}
	Mul(out, &t1, &t0) // out = z^(2^255-21)
}
