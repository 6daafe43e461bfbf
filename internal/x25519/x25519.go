// Package x25519 implements RFC 7748 scalar multiplication on the
// Curve25519 Montgomery curve.
package x25519

import (
	"zcrypto/internal/field"
	"zcrypto/mem"
)

// Basepoint is the canonical 32-byte encoding of the generator, u = 9.
var Basepoint = [32]byte{9}

// Clamp prepares a scalar for the ladder: the low three bits are
// cleared so the scalar is a multiple of the cofactor, bit 255 is
// cleared and bit 254 is set.
func Clamp(scalar *[32]byte) {
	scalar[0] &= 248
	scalar[31] &= 127
	scalar[31] |= 64
}

// ScalarMult sets dst to the u-coordinate of scalar * point. The
// scalar is clamped on a private copy that is wiped before returning.
//
// The ladder runs a fixed 255 iterations; the conditional swaps are
// mask selections driven by successive scalar bits, so control flow
// and memory access order never depend on the scalar.
func ScalarMult(dst, scalar, point *[32]byte) {
	var e [32]byte
	copy(e[:], scalar[:])
	Clamp(&e)

	var x1, x2, z2, x3, z3, tmp0, tmp1 field.Element
	field.FromBytes(&x1, point)
	field.One(&x2)
	field.Zero(&z2)
	field.Copy(&x3, &x1)
	field.One(&z3)

	swap := int64(0)
	for pos := 254; pos >= 0; pos-- {
		b := int64(e[pos/8]>>uint(pos&7)) & 1
		swap ^= b
		field.CSwap(&x2, &x3, swap)
		field.CSwap(&z2, &z3, swap)
		swap = b

		field.Sub(&tmp0, &x3, &z3)
		field.Sub(&tmp1, &x2, &z2)
		field.Add(&x2, &x2, &z2)
		field.Add(&z2, &x3, &z3)
		field.Mul(&z3, &tmp0, &x2)
		field.Mul(&z2, &z2, &tmp1)
		field.Square(&tmp0, &tmp1)
		field.Square(&tmp1, &x2)
		field.Add(&x3, &z3, &z2)
		field.Sub(&z2, &z3, &z2)
		field.Mul(&x2, &tmp1, &tmp0)
		field.Sub(&tmp1, &tmp1, &tmp0)
		field.Square(&z2, &z2)
		field.Mul121666(&z3, &tmp1)
		field.Square(&x3, &x3)
		field.Add(&tmp0, &tmp0, &z3)
		field.Mul(&z3, &x1, &z2)
		field.Mul(&z2, &tmp1, &tmp0)
	}

	field.CSwap(&x2, &x3, swap)
	field.CSwap(&z2, &z3, swap)

	field.Invert(&z2, &z2)
	field.Mul(&x2, &x2, &z2)
	field.ToBytes(dst, &x2)

	mem.ZeroBytes(e[:])
}

// ScalarBaseMult sets dst to scalar * basepoint.
func ScalarBaseMult(dst, scalar *[32]byte) {
	ScalarMult(dst, scalar, &Basepoint)
}
