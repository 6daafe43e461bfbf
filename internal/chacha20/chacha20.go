// Package chacha20 implements the RFC 8439 stream cipher core.
package chacha20

import (
	"encoding/binary"
	"math/bits"

	"zcrypto/mem"
)

// BlockSize is the keystream granularity; the block counter advances
// once per BlockSize bytes.
const BlockSize = 64

// The first four state words spell "expand 32-byte k".
const (
	j0 uint32 = 0x61707865
	j1 uint32 = 0x3320646e
	j2 uint32 = 0x79622d32
	j3 uint32 = 0x6b206574
)

// quarterRound mixes four state words with add-rotate-xor steps using
// the 16/12/8/7 rotation schedule.
func quarterRound(a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 16)
	c += d
	b ^= c
	b = bits.RotateLeft32(b, 12)
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 8)
	c += d
	b ^= c
	b = bits.RotateLeft32(b, 7)
	return a, b, c, d
}

// XORKeyStream XORs src into dst with the keystream for key and nonce,
// starting at the given block counter. dst and src must have the same
// length and may be the same slice.
//
// The counter advances once per 64-byte block and wraps around at
// 2^32. Wraparound is defined behavior at this layer; callers bound
// message lengths well below 2^32 blocks.
func XORKeyStream(dst, src []byte, key *[32]byte, nonce *[12]byte, counter uint32) {
	if len(dst) != len(src) {
		panic("chacha20: output and input lengths differ")
	}

	var state [16]uint32
	state[0] = j0
	state[1] = j1
	state[2] = j2
	state[3] = j3
	for i := 0; i < 8; i++ {
		state[4+i] = binary.LittleEndian.Uint32(key[4*i:])
	}
	state[12] = counter
	state[13] = binary.LittleEndian.Uint32(nonce[0:])
	state[14] = binary.LittleEndian.Uint32(nonce[4:])
	state[15] = binary.LittleEndian.Uint32(nonce[8:])

	var block [BlockSize]byte
	for len(src) > 0 {
		keystreamBlock(&block, &state)
		state[12]++

		n := len(src)
		if n > BlockSize {
			n = BlockSize
		}
		for i := 0; i < n; i++ {
			dst[i] = src[i] ^ block[i]
		}
		src = src[n:]
		dst = dst[n:]
	}

	mem.ZeroBytes(block[:])
	mem.ZeroWords(state[:])
}

// keystreamBlock serializes one keystream block: ten double rounds
// over a working copy of the state, then the feed-forward addition of
// the input words.
func keystreamBlock(out *[BlockSize]byte, state *[16]uint32) {
	x0, x1, x2, x3 := state[0], state[1], state[2], state[3]
	x4, x5, x6, x7 := state[4], state[5], state[6], state[7]
	x8, x9, x10, x11 := state[8], state[9], state[10], state[11]
	x12, x13, x14, x15 := state[12], state[13], state[14], state[15]

	for i := 0; i < 10; i++ {
		// Column round.
		x0, x4, x8, x12 = quarterRound(x0, x4, x8, x12)
		x1, x5, x9, x13 = quarterRound(x1, x5, x9, x13)
		x2, x6, x10, x14 = quarterRound(x2, x6, x10, x14)
		x3, x7, x11, x15 = quarterRound(x3, x7, x11, x15)

		// Diagonal round.
		x0, x5, x10, x15 = quarterRound(x0, x5, x10, x15)
		x1, x6, x11, x12 = quarterRound(x1, x6, x11, x12)
		x2, x7, x8, x13 = quarterRound(x2, x7, x8, x13)
		x3, x4, x9, x14 = quarterRound(x3, x4, x9, x14)
	}

	binary.LittleEndian.PutUint32(out[0:], x0+state[0])
	binary.LittleEndian.PutUint32(out[4:], x1+state[1])
	binary.LittleEndian.PutUint32(out[8:], x2+state[2])
	binary.LittleEndian.PutUint32(out[12:], x3+state[3])
	binary.LittleEndian.PutUint32(out[16:], x4+state[4])
	binary.LittleEndian.PutUint32(out[20:], x5+state[5])
	binary.LittleEndian.PutUint32(out[24:], x6+state[6])
	binary.LittleEndian.PutUint32(out[28:], x7+state[7])
	binary.LittleEndian.PutUint32(out[32:], x8+state[8])
	binary.LittleEndian.PutUint32(out[36:], x9+state[9])
	binary.LittleEndian.PutUint32(out[40:], x10+state[10])
	binary.LittleEndian.PutUint32(out[44:], x11+state[11])
	binary.LittleEndian.PutUint32(out[48:], x12+state[12])
	binary.LittleEndian.PutUint32(out[52:], x13+state[13])
	binary.LittleEndian.PutUint32(out[56:], x14+state[14])
	binary.LittleEndian.PutUint32(out[60:], x15+state[15])
}
