package sha256

import (
	"bytes"
	stdhmac "crypto/hmac"
	stdsha256 "crypto/sha256"
	"encoding/hex"
	"math/rand"
	"testing"
)

func TestSum256_FIPSVectors(t *testing.T) {
	vectors := []struct {
		in   string
		want string
	}{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{
			"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
			"248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1",
		},
	}
	for i, v := range vectors {
		want, err := hex.DecodeString(v.want)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := Sum256([]byte(v.in))
		if !bytes.Equal(got[:], want) {
			t.Fatalf("vector %d:\ngot:  %x\nwant: %x", i, got, want)
		}
	}
}

func TestDigest_ChunkedWritesMatchStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	data := make([]byte, 4096)
	rng.Read(data)

	chunkings := [][]int{
		{4096},
		{1, 4095},
		{63, 1, 64, 3968},
		{55, 9, 56, 8, 3968},
		{100, 200, 300, 3496},
	}
	for ci, chunks := range chunkings {
		d := New()
		rest := data
		for _, n := range chunks {
			d.Write(rest[:n])
			rest = rest[n:]
		}
		var got [Size]byte
		d.Sum(&got)

		want := stdsha256.Sum256(data)
		if got != want {
			t.Fatalf("chunking %d: digest mismatch", ci)
		}
	}
}

func TestDigest_VariableLengthsMatchStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	for _, n := range []int{0, 1, 55, 56, 57, 63, 64, 65, 127, 128, 129, 1000} {
		data := make([]byte, n)
		rng.Read(data)
		got := Sum256(data)
		want := stdsha256.Sum256(data)
		if got != want {
			t.Fatalf("length %d: digest mismatch", n)
		}
	}
}

func TestDigest_SumResetsState(t *testing.T) {
	d := New()
	d.Write([]byte("first message"))
	var first [Size]byte
	d.Sum(&first)

	d.Write([]byte("abc"))
	var second [Size]byte
	d.Sum(&second)

	want := Sum256([]byte("abc"))
	if second != want {
		t.Fatal("digest state was not clean after Sum")
	}
}

func TestHMAC_RFC4231Vectors(t *testing.T) {
	vectors := []struct {
		key  []byte
		data []byte
		want string
	}{
		{
			bytes.Repeat([]byte{0x0b}, 20),
			[]byte("Hi There"),
			"b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7",
		},
		{
			[]byte("Jefe"),
			[]byte("what do ya want for nothing?"),
			"5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		},
		{
			bytes.Repeat([]byte{0xaa}, 20),
			bytes.Repeat([]byte{0xdd}, 50),
			"773ea91e36800e46854db8ebd09181a72959098b3ef8c122d9635514ced565fe",
		},
		{
			// 131-byte key forces the hash-the-key path.
			bytes.Repeat([]byte{0xaa}, 131),
			[]byte("Test Using Larger Than Block-Size Key - Hash Key First"),
			"60e431591ee0b67f0d8a26aacbf5b77f8e0bc6213728c5140546040f0ee37f54",
		},
	}
	for i, v := range vectors {
		want, err := hex.DecodeString(v.want)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		mac := NewHMAC(v.key)
		mac.Write(v.data)
		var got [Size]byte
		mac.Sum(&got)
		if !bytes.Equal(got[:], want) {
			t.Fatalf("vector %d:\ngot:  %x\nwant: %x", i, got, want)
		}
		mac.Wipe()
	}
}

func TestHMAC_ResetMatchesFreshInstance(t *testing.T) {
	key := []byte("shared mac key")
	mac := NewHMAC(key)
	mac.Write([]byte("first"))
	var first [Size]byte
	mac.Sum(&first)

	mac.Reset()
	mac.Write([]byte("second"))
	var viaReset [Size]byte
	mac.Sum(&viaReset)

	fresh := NewHMAC(key)
	fresh.Write([]byte("second"))
	var viaFresh [Size]byte
	fresh.Sum(&viaFresh)

	if viaReset != viaFresh {
		t.Fatal("reset instance disagrees with fresh instance")
	}
}

func TestHMAC_MatchesStdlibOnRandomInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 50; i++ {
		key := make([]byte, rng.Intn(200))
		data := make([]byte, rng.Intn(500))
		rng.Read(key)
		rng.Read(data)

		mac := NewHMAC(key)
		mac.Write(data)
		var got [Size]byte
		mac.Sum(&got)

		ref := stdhmac.New(stdsha256.New, key)
		ref.Write(data)
		want := ref.Sum(nil)

		if !bytes.Equal(got[:], want) {
			t.Fatalf("sample %d: hmac mismatch (key %d bytes, data %d bytes)", i, len(key), len(data))
		}
	}
}

func BenchmarkSum256_1K(b *testing.B) {
	data := make([]byte, 1024)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sum256(data)
	}
}
