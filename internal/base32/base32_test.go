package base32

import (
	"bytes"
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("f"),
		[]byte("fo"),
		[]byte("foo"),
		[]byte("foob"),
		[]byte("fooba"),
		[]byte("foobar"),
		{0x00, 0xFF, 0x10, 0x20, 0x30, 0x40},
	}
	for _, in := range cases {
		enc := Encode(in)
		out, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode(%q): %v", enc, err)
		}
		if !bytes.Equal(out, in) {
			t.Fatalf("round trip mismatch for %v: got %v", in, out)
		}
	}
}

func TestDecodeToleratesCaseAndWhitespace(t *testing.T) {
	enc := Encode([]byte("hello world"))
	messy := " " + strings.ToLower(enc[:4]) + "\n" + enc[4:] + " \t"
	out, err := Decode(messy)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if string(out) != "hello world" {
		t.Fatalf("got %q", out)
	}
}

func TestDecodeRejectsInvalidCharacter(t *testing.T) {
	if _, err := Decode("!!!!"); err != ErrCorrupt {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestEncodeKnownVector(t *testing.T) {
	if got := Encode([]byte("foobar")); got != "MZXW6YTBOI======" {
		t.Fatalf("got %q", got)
	}
}

func TestDecodeKnownVectors(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"JBSWY3DP", "Hello"},
		{"JBSWY3DPEBLW64TMMQ======", "Hello World"},
	}
	for _, c := range cases {
		out, err := Decode(c.in)
		if err != nil {
			t.Fatalf("Decode(%q): %v", c.in, err)
		}
		if string(out) != c.want {
			t.Fatalf("Decode(%q) = %q, want %q", c.in, out, c.want)
		}
	}
}
