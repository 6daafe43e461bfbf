package zcrypto

import (
	"errors"

	"zcrypto/internal/sha256"
	"zcrypto/mem"
)

// MaxDerivedKeyLen is the RFC 5869 expansion bound for HMAC-SHA256:
// 255 blocks of 32 bytes.
const MaxDerivedKeyLen = 255 * sha256.Size

// ErrDerivedKeyLength is returned when DeriveKey is asked for more
// output than the RFC 5869 bound allows.
var ErrDerivedKeyLength = errors.New("zcrypto: derived key length exceeds the RFC 5869 bound")

// DeriveKey fills out with HKDF-SHA256 output keyed on secret. salt
// strengthens extraction and may be nil, which the RFC defines as 32
// zero bytes; info binds the output to its context and may be nil.
// The output length is len(out); asking for more than MaxDerivedKeyLen
// bytes returns ErrDerivedKeyLength with out unmodified.
func DeriveKey(out []byte, secret, salt, info []byte) error {
	if len(out) > MaxDerivedKeyLen {
		return ErrDerivedKeyLength
	}
	if len(out) == 0 {
		return nil
	}

	// Extract: PRK = HMAC(salt, secret).
	extract := sha256.NewHMAC(salt)
	extract.Write(secret)
	var prk [sha256.Size]byte
	extract.Sum(&prk)
	extract.Wipe()

	// Expand: T(i) = HMAC(PRK, T(i-1) || info || i), counter starting
	// at one.
	expand := sha256.NewHMAC(prk[:])
	var t [sha256.Size]byte
	tLen := 0
	counter := byte(1)
	remaining := out
	for len(remaining) > 0 {
		expand.Reset()
		expand.Write(t[:tLen])
		expand.Write(info)
		expand.Write([]byte{counter})
		expand.Sum(&t)
		tLen = sha256.Size
		counter++

		n := copy(remaining, t[:])
		remaining = remaining[n:]
	}
	expand.Wipe()

	mem.ZeroBytes(prk[:])
	mem.ZeroBytes(t[:])
	return nil
}
