package zcrypto

import (
	"encoding/binary"
	"errors"

	"zcrypto/internal/chacha20"
	"zcrypto/internal/poly1305"
	"zcrypto/mem"
)

// ErrAuthentication is returned by Decrypt when the tag does not match
// the received ciphertext and associated data.
var ErrAuthentication = errors.New("zcrypto: message authentication failed")

// Encrypt seals plaintext under key and nonce, writing the ciphertext
// and the detached tag. ciphertext must be exactly len(plaintext)
// bytes and may alias plaintext for in-place sealing. aad is
// authenticated but not encrypted; nil is valid.
//
// A (key, nonce) pair must never seal two different messages. Nonce
// management belongs to the caller; the session package provides a
// counter-based scheme.
func Encrypt(ciphertext []byte, tag *[TagSize]byte, plaintext, aad []byte, key *[KeySize]byte, nonce *[NonceSize]byte) {
	if len(ciphertext) != len(plaintext) {
		panic("zcrypto: ciphertext length must equal plaintext length")
	}

	var polyKey [KeySize]byte
	chacha20.XORKeyStream(polyKey[:], polyKey[:], key, nonce, 0)

	chacha20.XORKeyStream(ciphertext, plaintext, key, nonce, 1)
	authenticate(tag, &polyKey, aad, ciphertext)
	mem.ZeroBytes(polyKey[:])
}

// Decrypt authenticates ciphertext and aad against tag and, only on
// success, opens the ciphertext into plaintext. On failure plaintext
// is left untouched and ErrAuthentication is returned. plaintext must
// be exactly len(ciphertext) bytes and may alias ciphertext.
func Decrypt(plaintext []byte, ciphertext, aad []byte, tag *[TagSize]byte, key *[KeySize]byte, nonce *[NonceSize]byte) error {
	if len(plaintext) != len(ciphertext) {
		panic("zcrypto: plaintext length must equal ciphertext length")
	}

	var polyKey [KeySize]byte
	chacha20.XORKeyStream(polyKey[:], polyKey[:], key, nonce, 0)

	var expected [TagSize]byte
	authenticate(&expected, &polyKey, aad, ciphertext)
	ok := mem.Equal(expected[:], tag[:])
	mem.ZeroBytes(expected[:])
	mem.ZeroBytes(polyKey[:])
	if !ok {
		return ErrAuthentication
	}

	chacha20.XORKeyStream(plaintext, ciphertext, key, nonce, 1)
	return nil
}

// authenticate computes the RFC 8439 composition tag: Poly1305 over
// aad and ciphertext each zero-padded to a 16-byte boundary, followed
// by both lengths as little-endian 64-bit words. The one-time key is
// the first 32 keystream bytes at counter zero, which the callers
// derive. The scratch message is sized exactly and wiped after use.
func authenticate(tag *[poly1305.TagSize]byte, polyKey *[KeySize]byte, aad, ciphertext []byte) {
	aadPadded := roundUp16(len(aad))
	ctPadded := roundUp16(len(ciphertext))

	msg := make([]byte, aadPadded+ctPadded+16)
	copy(msg, aad)
	copy(msg[aadPadded:], ciphertext)
	binary.LittleEndian.PutUint64(msg[aadPadded+ctPadded:], uint64(len(aad)))
	binary.LittleEndian.PutUint64(msg[aadPadded+ctPadded+8:], uint64(len(ciphertext)))

	poly1305.Sum(tag, msg, polyKey)
	mem.ZeroBytes(msg)
}

func roundUp16(n int) int {
	return (n + 15) &^ 15
}
