package zcrypto

import (
	"fmt"
	"io"

	"zcrypto/internal/x25519"
	"zcrypto/mem"
)

const (
	// KeySize is the length of symmetric keys, private scalars and
	// public points.
	KeySize = 32
	// NonceSize is the AEAD nonce length.
	NonceSize = 12
	// TagSize is the AEAD authentication tag length.
	TagSize = 16
	// SharedSecretSize is the X25519 agreement output length.
	SharedSecretSize = 32
)

// KeyPair is an X25519 keypair. The private scalar is stored clamped.
type KeyPair struct {
	Public  [KeySize]byte
	Private [KeySize]byte
}

// GenerateKeyPair draws a private scalar from random, clamps it, and
// computes the matching public point. The entropy source is a
// parameter so callers own the randomness decision; production code
// passes crypto/rand.Reader.
func GenerateKeyPair(random io.Reader) (KeyPair, error) {
	var kp KeyPair
	if _, err := io.ReadFull(random, kp.Private[:]); err != nil {
		return KeyPair{}, fmt.Errorf("zcrypto: reading keypair entropy: %w", err)
	}
	x25519.Clamp(&kp.Private)
	x25519.ScalarBaseMult(&kp.Public, &kp.Private)
	return kp, nil
}

// SharedSecret computes the X25519 agreement between a private scalar
// and a peer's public point. Both directions of an exchange produce
// the same bytes. The raw secret is not uniformly distributed; run it
// through DeriveKey before using it as a cipher key.
func SharedSecret(private, peerPublic *[KeySize]byte) [SharedSecretSize]byte {
	var secret [SharedSecretSize]byte
	x25519.ScalarMult(&secret, private, peerPublic)
	return secret
}

// SharedSecret computes the agreement with a peer's public point.
func (kp *KeyPair) SharedSecret(peerPublic *[KeySize]byte) [SharedSecretSize]byte {
	return SharedSecret(&kp.Private, peerPublic)
}

// Zeroize wipes both halves of the keypair. The keypair must not be
// used afterwards.
func (kp *KeyPair) Zeroize() {
	mem.ZeroBytes(kp.Private[:])
	mem.ZeroBytes(kp.Public[:])
}
