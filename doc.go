// Package zcrypto is the cryptographic boundary of the ZTunnel secure
// tunneling stack: X25519 key agreement, HKDF-SHA256 key derivation
// and ChaCha20-Poly1305 authenticated encryption, implemented from
// first principles on fixed-size byte buffers.
//
// The surface is a small set of pure functions:
//
//   - GenerateKeyPair and SharedSecret for Curve25519 agreement
//   - Encrypt and Decrypt for RFC 8439 AEAD with a detached tag
//   - DeriveKey for RFC 5869 expansion of shared secrets
//
// Secret inputs never steer branches or memory access: the Montgomery
// ladder swaps by mask, tag comparison XOR-accumulates over the full
// length, and the Poly1305 final reduction selects by mask. Key
// generation takes the entropy source as an explicit parameter; pass
// crypto/rand.Reader outside of tests.
//
// Higher layers consume this package rather than the internal
// primitives: see the session package for the record layer that frames
// tunnel payloads.
package zcrypto
