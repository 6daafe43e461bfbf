// Package sha256 implements the FIPS 180-4 hash and HMAC-SHA256, the
// machinery under the key derivation boundary.
package sha256

import (
	"encoding/binary"
	"math/bits"

	"zcrypto/mem"
)

const (
	// Size is the digest length in bytes.
	Size = 32
	// BlockSize is the compression function's input granularity.
	BlockSize = 64
)

var _K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// Digest is a streaming SHA-256 state. The zero value is not ready for
// use; call New or Reset first.
type Digest struct {
	h   [8]uint32
	x   [BlockSize]byte
	nx  int
	len uint64
}

// New returns a Digest initialized to the SHA-256 IV.
func New() *Digest {
	d := new(Digest)
	d.Reset()
	return d
}

// Reset restores the IV and clears the block buffer.
func (d *Digest) Reset() {
	d.h[0] = 0x6a09e667
	d.h[1] = 0xbb67ae85
	d.h[2] = 0x3c6ef372
	d.h[3] = 0xa54ff53a
	d.h[4] = 0x510e527f
	d.h[5] = 0x9b05688c
	d.h[6] = 0x1f83d9ab
	d.h[7] = 0x5be0cd19
	mem.ZeroBytes(d.x[:])
	d.nx = 0
	d.len = 0
}

// Write absorbs p into the running hash.
func (d *Digest) Write(p []byte) {
	d.len += uint64(len(p))
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == BlockSize {
			block(d, d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= BlockSize {
		n := len(p) &^ (BlockSize - 1)
		block(d, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
}

// Sum finalizes the hash into out: the 0x80 marker, zero padding to 56
// mod 64, and the big-endian bit length. The state is then Reset, so
// buffered input does not outlive finalization.
func (d *Digest) Sum(out *[Size]byte) {
	length := d.len

	var pad [BlockSize + 8]byte
	pad[0] = 0x80
	padLen := 56 - int(length%BlockSize)
	if padLen <= 0 {
		padLen += BlockSize
	}
	d.Write(pad[:padLen])

	var lenBytes [8]byte
	binary.BigEndian.PutUint64(lenBytes[:], length<<3)
	d.Write(lenBytes[:])

	for i := 0; i < 8; i++ {
		binary.BigEndian.PutUint32(out[4*i:], d.h[i])
	}
	d.Reset()
}

// Wipe clears the chaining state as well as the buffer.
func (d *Digest) Wipe() {
	mem.ZeroWords(d.h[:])
	mem.ZeroBytes(d.x[:])
	d.nx = 0
	d.len = 0
}

// Sum256 is the one-shot digest of data.
func Sum256(data []byte) [Size]byte {
	var d Digest
	d.Reset()
	d.Write(data)
	var out [Size]byte
	d.Sum(&out)
	return out
}

func block(dig *Digest, p []byte) {
	var w [64]uint32
	h0, h1, h2, h3 := dig.h[0], dig.h[1], dig.h[2], dig.h[3]
	h4, h5, h6, h7 := dig.h[4], dig.h[5], dig.h[6], dig.h[7]

	for len(p) >= BlockSize {
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint32(p[4*i:])
		}
		for i := 16; i < 64; i++ {
			v1 := w[i-2]
			t1 := bits.RotateLeft32(v1, -17) ^ bits.RotateLeft32(v1, -19) ^ (v1 >> 10)
			v2 := w[i-15]
			t2 := bits.RotateLeft32(v2, -7) ^ bits.RotateLeft32(v2, -18) ^ (v2 >> 3)
			w[i] = t1 + w[i-7] + t2 + w[i-16]
		}

		a, b, c, d := h0, h1, h2, h3
		e, f, g, h := h4, h5, h6, h7

		for i := 0; i < 64; i++ {
			t1 := h +
				(bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)) +
				((e & f) ^ (^e & g)) + _K[i] + w[i]
			t2 := (bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)) +
				((a & b) ^ (a & c) ^ (b & c))

			h = g
			g = f
			f = e
			e = d + t1
			d = c
			c = b
			b = a
			a = t1 + t2
		}

		h0 += a
		h1 += b
		h2 += c
		h3 += d
		h4 += e
		h5 += f
		h6 += g
		h7 += h

		p = p[BlockSize:]
	}

	dig.h[0], dig.h[1], dig.h[2], dig.h[3] = h0, h1, h2, h3
	dig.h[4], dig.h[5], dig.h[6], dig.h[7] = h4, h5, h6, h7

	mem.ZeroWords(w[:])
}
