package session

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"

	"zcrypto"
)

// newSessionPair runs a key exchange and returns one session per side,
// both holding the same traffic key.
func newSessionPair(t *testing.T) (*Session, *Session) {
	t.Helper()
	client, err := zcrypto.GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	server, err := zcrypto.GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clientSecret := client.SharedSecret(&server.Public)
	serverSecret := server.SharedSecret(&client.Public)

	sender, err := New(&clientSecret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	receiver, err := New(&serverSecret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() {
		_ = sender.Close()
		_ = receiver.Close()
	})
	return sender, receiver
}

func TestSession_RoundTrip(t *testing.T) {
	sender, receiver := newSessionPair(t)

	plaintext := []byte("Hello, ZTunnel!")
	frame, err := sender.Seal(nil, plaintext)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frame) != len(plaintext)+Overhead {
		t.Fatalf("frame length %d, want %d", len(frame), len(plaintext)+Overhead)
	}

	recovered, err := receiver.Open(nil, frame)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(recovered, plaintext) {
		t.Fatalf("plaintext mismatch: %q", recovered)
	}
}

func TestSession_SealAppendsToDst(t *testing.T) {
	sender, receiver := newSessionPair(t)

	prefix := []byte("len:")
	frame, err := sender.Seal(prefix, []byte("payload"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(frame, prefix) {
		t.Fatal("existing dst contents overwritten")
	}

	recovered, err := receiver.Open([]byte("got:"), frame[len(prefix):])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(recovered) != "got:payload" {
		t.Fatalf("unexpected open result: %q", recovered)
	}
}

func TestSession_CountersAreMonotonic(t *testing.T) {
	sender, _ := newSessionPair(t)

	for want := uint64(0); want < 5; want++ {
		frame, err := sender.Seal(nil, []byte("tick"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := frameCounter(frame)
		if got != want {
			t.Fatalf("frame counter %d, want %d", got, want)
		}
		for _, b := range frame[:4] {
			if b != 0 {
				t.Fatal("nonce prefix is not zero")
			}
		}
	}
}

func frameCounter(frame []byte) uint64 {
	var c uint64
	for i := 0; i < 8; i++ {
		c |= uint64(frame[4+i]) << (8 * i)
	}
	return c
}

func TestSession_RejectsReplayedFrame(t *testing.T) {
	sender, receiver := newSessionPair(t)

	frame, err := sender.Seal(nil, []byte("once"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := receiver.Open(nil, frame); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := receiver.Open(nil, frame); !errors.Is(err, ErrReplay) {
		t.Fatalf("expected ErrReplay, got %v", err)
	}
}

func TestSession_AcceptsOutOfOrderWithinWindow(t *testing.T) {
	sender, receiver := newSessionPair(t)

	frames := make([][]byte, 4)
	for i := range frames {
		frame, err := sender.Seal(nil, []byte{byte(i)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		frames[i] = frame
	}

	for _, i := range []int{0, 2, 1, 3} {
		recovered, err := receiver.Open(nil, frames[i])
		if err != nil {
			t.Fatalf("frame %d: unexpected error: %v", i, err)
		}
		if len(recovered) != 1 || recovered[0] != byte(i) {
			t.Fatalf("frame %d: wrong payload %v", i, recovered)
		}
	}
}

func TestSession_RejectsShortFrame(t *testing.T) {
	_, receiver := newSessionPair(t)

	for _, n := range []int{0, 1, Overhead - 1} {
		if _, err := receiver.Open(nil, make([]byte, n)); !errors.Is(err, ErrFrameTooShort) {
			t.Fatalf("length %d: expected ErrFrameTooShort, got %v", n, err)
		}
	}
}

// A tampered frame must not burn its counter: the genuine frame still opens
// afterwards.
func TestSession_TamperDoesNotAdvanceWindow(t *testing.T) {
	sender, receiver := newSessionPair(t)

	frame, err := sender.Seal(nil, []byte("important"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tampered := append([]byte(nil), frame...)
	tampered[Overhead/2] ^= 0x40
	if _, err := receiver.Open(nil, tampered); !errors.Is(err, zcrypto.ErrAuthentication) {
		t.Fatalf("expected ErrAuthentication, got %v", err)
	}

	if _, err := receiver.Open(nil, frame); err != nil {
		t.Fatalf("genuine frame rejected after forgery attempt: %v", err)
	}
}

func TestSession_SealAfterCounterExhaustion(t *testing.T) {
	sender, _ := newSessionPair(t)

	sender.sendCounter = maxCounter
	if _, err := sender.Seal(nil, []byte("late")); !errors.Is(err, ErrNonceExhausted) {
		t.Fatalf("expected ErrNonceExhausted, got %v", err)
	}
}

func TestSession_CloseWipesKeyAndStopsUse(t *testing.T) {
	sender, receiver := newSessionPair(t)

	frame, err := sender.Seal(nil, []byte("before close"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := sender.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sender.key != [zcrypto.KeySize]byte{} {
		t.Fatal("traffic key not wiped")
	}
	if err := sender.Close(); err != nil {
		t.Fatalf("second close: unexpected error: %v", err)
	}

	if _, err := sender.Seal(nil, []byte("after close")); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}

	if err := receiver.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := receiver.Open(nil, frame); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
}

func TestSession_ConcurrentSealersGetDistinctCounters(t *testing.T) {
	sender, receiver := newSessionPair(t)

	const workers = 8
	const perWorker = 50
	frames := make([][]byte, workers*perWorker)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		base := w * perWorker
		g.Go(func() error {
			for i := 0; i < perWorker; i++ {
				frame, err := sender.Seal(nil, []byte("concurrent"))
				if err != nil {
					return fmt.Errorf("seal %d: %w", base+i, err)
				}
				frames[base+i] = frame
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[uint64]bool, len(frames))
	for i, frame := range frames {
		c := frameCounter(frame)
		if seen[c] {
			t.Fatalf("counter %d used twice", c)
		}
		seen[c] = true
		if _, err := receiver.Open(nil, frame); err != nil {
			t.Fatalf("frame %d: unexpected error: %v", i, err)
		}
	}
}

func BenchmarkSessionSealOpen1K(b *testing.B) {
	var secret [zcrypto.SharedSecretSize]byte
	secret[0] = 1
	sender, err := New(&secret)
	if err != nil {
		b.Fatalf("unexpected error: %v", err)
	}
	receiver, err := New(&secret)
	if err != nil {
		b.Fatalf("unexpected error: %v", err)
	}
	defer sender.Close()
	defer receiver.Close()

	plaintext := make([]byte, 1024)
	frame := make([]byte, 0, 1024+Overhead)
	out := make([]byte, 0, 1024)
	b.SetBytes(1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var err error
		frame, err = sender.Seal(frame[:0], plaintext)
		if err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
		out, err = receiver.Open(out[:0], frame)
		if err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}
