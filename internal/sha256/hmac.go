package sha256

import "zcrypto/mem"

// HMAC is an RFC 2104 keyed MAC over SHA-256. The padded key halves
// are retained so the state can be Reset for the next message, which
// is what the HKDF expand loop does; call Wipe when the key is done.
type HMAC struct {
	inner Digest
	outer Digest
	ipad  [BlockSize]byte
	opad  [BlockSize]byte
}

// NewHMAC derives the inner and outer padded keys. Keys longer than
// the block size are hashed first, per the RFC.
func NewHMAC(key []byte) *HMAC {
	h := new(HMAC)

	var k [BlockSize]byte
	if len(key) > BlockSize {
		sum := Sum256(key)
		copy(k[:], sum[:])
		mem.ZeroBytes(sum[:])
	} else {
		copy(k[:], key)
	}
	for i := range k {
		h.ipad[i] = k[i] ^ 0x36
		h.opad[i] = k[i] ^ 0x5c
	}
	mem.ZeroBytes(k[:])

	h.Reset()
	return h
}

// Reset discards any absorbed message and starts a fresh one under the
// same key.
func (h *HMAC) Reset() {
	h.inner.Reset()
	h.inner.Write(h.ipad[:])
}

// Write absorbs message bytes.
func (h *HMAC) Write(p []byte) {
	h.inner.Write(p)
}

// Sum finalizes the MAC into out. The instance must be Reset before
// authenticating another message.
func (h *HMAC) Sum(out *[Size]byte) {
	var innerSum [Size]byte
	h.inner.Sum(&innerSum)

	h.outer.Reset()
	h.outer.Write(h.opad[:])
	h.outer.Write(innerSum[:])
	h.outer.Sum(out)

	mem.ZeroBytes(innerSum[:])
}

// Wipe destroys the key schedule and both hash states.
func (h *HMAC) Wipe() {
	mem.ZeroBytes(h.ipad[:])
	mem.ZeroBytes(h.opad[:])
	h.inner.Wipe()
	h.outer.Wipe()
}
