// Package session provides replay-protected encrypted framing on top of a
// completed key exchange.
//
// A sealed frame is laid out as
//
//	nonce (12) | ciphertext (len(plaintext)) | tag (16)
//
// The nonce carries the frame counter in its last eight bytes, little
// endian; the first four bytes are zero. Counters start at zero and never
// repeat within a session, so a fresh Session is required per direction of
// a connection.
package session

import (
	"encoding/binary"
	"errors"
	"sync"

	"golang.zx2c4.com/wireguard/replay"

	"zcrypto"
	"zcrypto/mem"
)

// Overhead is the number of bytes Seal adds to a plaintext.
const Overhead = zcrypto.NonceSize + zcrypto.TagSize

// keyInfo labels the traffic key derivation so the raw curve output is
// never used directly.
const keyInfo = "ztunnel-session-v1"

// maxCounter bounds frame counters on both sides. Refusing the top of the
// range keeps the replay window away from counter wraparound.
const maxCounter uint64 = (1 << 64) - (1 << 13) - 1

var (
	ErrSessionClosed  = errors.New("session: closed")
	ErrFrameTooShort  = errors.New("session: frame too short")
	ErrReplay         = errors.New("session: frame counter replayed or too old")
	ErrNonceExhausted = errors.New("session: send counter exhausted")
)

// Session encrypts outbound frames and authenticates inbound ones under a
// key derived from a shared secret. It is safe for concurrent use.
type Session struct {
	mu          sync.Mutex
	key         [zcrypto.KeySize]byte
	sendCounter uint64
	replay      replay.Filter
	closed      bool
}

// New derives the traffic key from sharedSecret and returns a ready
// session. The caller may wipe sharedSecret as soon as New returns.
func New(sharedSecret *[zcrypto.SharedSecretSize]byte) (*Session, error) {
	s := &Session{}
	if err := zcrypto.DeriveKey(s.key[:], sharedSecret[:], nil, []byte(keyInfo)); err != nil {
		return nil, err
	}
	// Best effort; the session still works on platforms without mlock.
	_ = mem.Lock(s.key[:])
	return s, nil
}

// Seal encrypts plaintext into a new frame appended to dst and returns the
// extended slice. Each call consumes one counter value.
func (s *Session) Seal(dst, plaintext []byte) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrSessionClosed
	}
	if s.sendCounter >= maxCounter {
		return nil, ErrNonceExhausted
	}
	counter := s.sendCounter
	s.sendCounter++

	off := len(dst)
	out := append(dst, make([]byte, Overhead+len(plaintext))...)
	frame := out[off:]

	var nonce [zcrypto.NonceSize]byte
	binary.LittleEndian.PutUint64(nonce[4:], counter)
	copy(frame, nonce[:])

	var tag [zcrypto.TagSize]byte
	zcrypto.Encrypt(frame[zcrypto.NonceSize:zcrypto.NonceSize+len(plaintext)], &tag, plaintext, nil, &s.key, &nonce)
	copy(frame[zcrypto.NonceSize+len(plaintext):], tag[:])
	return out, nil
}

// Open authenticates frame, rejects replayed or out-of-window counters, and
// appends the recovered plaintext to dst. The replay window only advances
// for frames that pass authentication, so forgeries cannot block legitimate
// counters.
func (s *Session) Open(dst, frame []byte) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrSessionClosed
	}
	if len(frame) < Overhead {
		return nil, ErrFrameTooShort
	}

	var nonce [zcrypto.NonceSize]byte
	copy(nonce[:], frame)
	counter := binary.LittleEndian.Uint64(nonce[4:])

	ciphertext := frame[zcrypto.NonceSize : len(frame)-zcrypto.TagSize]
	var tag [zcrypto.TagSize]byte
	copy(tag[:], frame[len(frame)-zcrypto.TagSize:])

	off := len(dst)
	out := append(dst, make([]byte, len(ciphertext))...)
	if err := zcrypto.Decrypt(out[off:], ciphertext, nil, &tag, &s.key, &nonce); err != nil {
		return nil, err
	}
	if !s.replay.ValidateCounter(counter, maxCounter) {
		return nil, ErrReplay
	}
	return out, nil
}

// Close wipes the traffic key. Further Seal and Open calls fail with
// ErrSessionClosed. Close is idempotent.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	mem.ZeroBytes(s.key[:])
	return mem.Unlock(s.key[:])
}
