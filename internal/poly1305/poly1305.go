// Package poly1305 implements the RFC 8439 one-time authenticator.
//
// The accumulator is held as five 26-bit limbs in uint32, with 64-bit
// intermediate products. r is clamped on load; the final reduction
// selects between h and h + 5 - 2^130 by mask, so tag generation never
// branches on secret data.
package poly1305

import (
	"encoding/binary"

	"zcrypto/mem"
)

// TagSize is the length of a Poly1305 tag in bytes.
const TagSize = 16

type macState struct {
	r   [5]uint32
	h   [5]uint32
	pad [4]uint32
}

// initialize splits the one-time key: the first half becomes r with
// the RFC clamp applied to the staggered 26-bit windows, the second
// half the final pad s.
func (st *macState) initialize(key *[32]byte) {
	st.r[0] = binary.LittleEndian.Uint32(key[0:]) & 0x3ffffff
	st.r[1] = (binary.LittleEndian.Uint32(key[3:]) >> 2) & 0x3ffff03
	st.r[2] = (binary.LittleEndian.Uint32(key[6:]) >> 4) & 0x3ffc0ff
	st.r[3] = (binary.LittleEndian.Uint32(key[9:]) >> 6) & 0x3f03fff
	st.r[4] = (binary.LittleEndian.Uint32(key[12:]) >> 8) & 0x00fffff

	st.pad[0] = binary.LittleEndian.Uint32(key[16:])
	st.pad[1] = binary.LittleEndian.Uint32(key[20:])
	st.pad[2] = binary.LittleEndian.Uint32(key[24:])
	st.pad[3] = binary.LittleEndian.Uint32(key[28:])
}

// blocks absorbs full 16-byte blocks: h = (h + block) * r mod 2^130-5.
// hibit is 1<<24 for full message blocks, carrying the 2^128 marker
// bit, and 0 for the padded final block.
func (st *macState) blocks(m []byte, hibit uint32) {
	h0, h1, h2, h3, h4 := st.h[0], st.h[1], st.h[2], st.h[3], st.h[4]
	r0, r1, r2, r3, r4 := st.r[0], st.r[1], st.r[2], st.r[3], st.r[4]
	s1, s2, s3, s4 := r1*5, r2*5, r3*5, r4*5

	for len(m) >= TagSize {
		h0 += binary.LittleEndian.Uint32(m[0:]) & 0x3ffffff
		h1 += (binary.LittleEndian.Uint32(m[3:]) >> 2) & 0x3ffffff
		h2 += (binary.LittleEndian.Uint32(m[6:]) >> 4) & 0x3ffffff
		h3 += (binary.LittleEndian.Uint32(m[9:]) >> 6) & 0x3ffffff
		h4 += (binary.LittleEndian.Uint32(m[12:]) >> 8) | hibit

		// Products wrapping past limb 4 fold back with the factor 5
		// from 2^130 = 5 mod p.
		d0 := uint64(h0)*uint64(r0) + uint64(h1)*uint64(s4) + uint64(h2)*uint64(s3) + uint64(h3)*uint64(s2) + uint64(h4)*uint64(s1)
		d1 := uint64(h0)*uint64(r1) + uint64(h1)*uint64(r0) + uint64(h2)*uint64(s4) + uint64(h3)*uint64(s3) + uint64(h4)*uint64(s2)
		d2 := uint64(h0)*uint64(r2) + uint64(h1)*uint64(r1) + uint64(h2)*uint64(r0) + uint64(h3)*uint64(s4) + uint64(h4)*uint64(s3)
		d3 := uint64(h0)*uint64(r3) + uint64(h1)*uint64(r2) + uint64(h2)*uint64(r1) + uint64(h3)*uint64(r0) + uint64(h4)*uint64(s4)
		d4 := uint64(h0)*uint64(r4) + uint64(h1)*uint64(r3) + uint64(h2)*uint64(r2) + uint64(h3)*uint64(r1) + uint64(h4)*uint64(r0)

		c := d0 >> 26
		h0 = uint32(d0) & 0x3ffffff
		d1 += c
		c = d1 >> 26
		h1 = uint32(d1) & 0x3ffffff
		d2 += c
		c = d2 >> 26
		h2 = uint32(d2) & 0x3ffffff
		d3 += c
		c = d3 >> 26
		h3 = uint32(d3) & 0x3ffffff
		d4 += c
		c = d4 >> 26
		h4 = uint32(d4) & 0x3ffffff
		h0 += uint32(c) * 5
		cc := h0 >> 26
		h0 &= 0x3ffffff
		h1 += cc

		m = m[TagSize:]
	}

	st.h[0], st.h[1], st.h[2], st.h[3], st.h[4] = h0, h1, h2, h3, h4
}

// finish reduces h fully, conditionally subtracts p by mask, and adds
// the pad modulo 2^128.
func (st *macState) finish(out *[TagSize]byte) {
	h0, h1, h2, h3, h4 := st.h[0], st.h[1], st.h[2], st.h[3], st.h[4]

	c := h1 >> 26
	h1 &= 0x3ffffff
	h2 += c
	c = h2 >> 26
	h2 &= 0x3ffffff
	h3 += c
	c = h3 >> 26
	h3 &= 0x3ffffff
	h4 += c
	c = h4 >> 26
	h4 &= 0x3ffffff
	h0 += c * 5
	c = h0 >> 26
	h0 &= 0x3ffffff
	h1 += c

	// g = h + 5 - 2^130; if it did not go negative, g is the reduced
	// value and replaces h.
	g0 := h0 + 5
	c = g0 >> 26
	g0 &= 0x3ffffff
	g1 := h1 + c
	c = g1 >> 26
	g1 &= 0x3ffffff
	g2 := h2 + c
	c = g2 >> 26
	g2 &= 0x3ffffff
	g3 := h3 + c
	c = g3 >> 26
	g3 &= 0x3ffffff
	g4 := h4 + c - (1 << 26)

	mask := (g4 >> 31) - 1
	g0 &= mask
	g1 &= mask
	g2 &= mask
	g3 &= mask
	g4 &= mask
	mask = ^mask
	h0 = (h0 & mask) | g0
	h1 = (h1 & mask) | g1
	h2 = (h2 & mask) | g2
	h3 = (h3 & mask) | g3
	h4 = (h4 & mask) | g4

	t0 := h0 | (h1 << 26)
	t1 := (h1 >> 6) | (h2 << 20)
	t2 := (h2 >> 12) | (h3 << 14)
	t3 := (h3 >> 18) | (h4 << 8)

	f := uint64(t0) + uint64(st.pad[0])
	binary.LittleEndian.PutUint32(out[0:], uint32(f))
	f = uint64(t1) + uint64(st.pad[1]) + (f >> 32)
	binary.LittleEndian.PutUint32(out[4:], uint32(f))
	f = uint64(t2) + uint64(st.pad[2]) + (f >> 32)
	binary.LittleEndian.PutUint32(out[8:], uint32(f))
	f = uint64(t3) + uint64(st.pad[3]) + (f >> 32)
	binary.LittleEndian.PutUint32(out[12:], uint32(f))
}

func (st *macState) wipe() {
	mem.ZeroWords(st.r[:])
	mem.ZeroWords(st.h[:])
	mem.ZeroWords(st.pad[:])
}

// Sum writes the authenticator of msg under key to out. The key is a
// one-time key: authenticating two messages under the same key forfeits
// all security.
func Sum(out *[TagSize]byte, msg []byte, key *[32]byte) {
	var st macState
	st.initialize(key)

	full := len(msg) &^ (TagSize - 1)
	st.blocks(msg[:full], 1<<24)
	if rem := msg[full:]; len(rem) > 0 {
		var block [TagSize]byte
		copy(block[:], rem)
		block[len(rem)] = 1
		st.blocks(block[:], 0)
		mem.ZeroBytes(block[:])
	}

	st.finish(out)
	st.wipe()
}
