package deflate

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestRawRoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("a"),
		[]byte("hello, hello, hello, world"),
		bytes.Repeat([]byte("abcabcabcabc"), 200),
		[]byte("The quick brown fox jumps over the lazy dog. " +
			"The quick brown fox jumps over the lazy dog."),
	}
	for _, in := range cases {
		compressed, err := CompressRaw(in, 10)
		if err != nil {
			t.Fatalf("CompressRaw(%q): %v", in, err)
		}
		out, err := DecompressRaw(compressed, 1<<20)
		if err != nil {
			t.Fatalf("DecompressRaw: %v", err)
		}
		if !bytes.Equal(out, in) {
			t.Fatalf("round trip mismatch: got %q want %q", out, in)
		}
	}
}

func TestRawRoundTripRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for n := 0; n < 20; n++ {
		size := r.Intn(4000)
		buf := make([]byte, size)
		for i := range buf {
			buf[i] = byte(r.Intn(6)) // low-entropy alphabet so matches are common
		}
		compressed, err := CompressRaw(buf, 12)
		if err != nil {
			t.Fatalf("CompressRaw: %v", err)
		}
		out, err := DecompressRaw(compressed, 1<<20)
		if err != nil {
			t.Fatalf("DecompressRaw: %v", err)
		}
		if !bytes.Equal(out, buf) {
			t.Fatalf("mismatch for size %d", size)
		}
	}
}

func TestRepeatedInputCompressesSmaller(t *testing.T) {
	in := bytes.Repeat([]byte("0123456789"), 500)
	compressed, err := CompressRaw(in, 13)
	if err != nil {
		t.Fatalf("CompressRaw: %v", err)
	}
	if len(compressed) >= len(in) {
		t.Fatalf("expected compression to shrink highly repetitive input: %d >= %d", len(compressed), len(in))
	}
}

func TestDecompressRawRejectsTruncated(t *testing.T) {
	in := []byte("some data to compress for truncation testing")
	compressed, err := CompressRaw(in, 10)
	if err != nil {
		t.Fatalf("CompressRaw: %v", err)
	}
	_, err = DecompressRaw(compressed[:len(compressed)/2], 1<<20)
	if err == nil {
		t.Fatal("expected error decompressing truncated stream")
	}
}

func TestDecompressRawEnforcesCeiling(t *testing.T) {
	in := bytes.Repeat([]byte("x"), 10000)
	compressed, err := CompressRaw(in, 10)
	if err != nil {
		t.Fatalf("CompressRaw: %v", err)
	}
	_, err = DecompressRaw(compressed, 100)
	if err != ErrBuf {
		t.Fatalf("expected ErrBuf, got %v", err)
	}
}

func TestZlibRoundTrip(t *testing.T) {
	in := []byte("zlib-wrapped payload for the envelope compression path")
	compressed, err := CompressZlib(in, 10)
	if err != nil {
		t.Fatalf("CompressZlib: %v", err)
	}
	out, err := DecompressZlib(compressed, 1<<20)
	if err != nil {
		t.Fatalf("DecompressZlib: %v", err)
	}
	if !bytes.Equal(out, in) {
		t.Fatalf("round trip mismatch")
	}
}

func TestDecompressAutoFallsBackToRaw(t *testing.T) {
	in := []byte("part without a zlib header, just raw deflate")
	raw, err := CompressRaw(in, 10)
	if err != nil {
		t.Fatalf("CompressRaw: %v", err)
	}
	out, err := DecompressAuto(raw, 1<<20)
	if err != nil {
		t.Fatalf("DecompressAuto: %v", err)
	}
	if !bytes.Equal(out, in) {
		t.Fatalf("round trip mismatch")
	}
}

func FuzzRawRoundTrip(f *testing.F) {
	f.Add([]byte("seed"))
	f.Add([]byte{})
	f.Add(bytes.Repeat([]byte("seed-pattern"), 10))
	f.Fuzz(func(t *testing.T, in []byte) {
		compressed, err := CompressRaw(in, 10)
		if err != nil {
			t.Skip()
		}
		out, err := DecompressRaw(compressed, 1<<24)
		if err != nil {
			t.Fatalf("DecompressRaw: %v", err)
		}
		if !bytes.Equal(out, in) {
			t.Fatalf("round trip mismatch for input of length %d", len(in))
		}
	})
}
