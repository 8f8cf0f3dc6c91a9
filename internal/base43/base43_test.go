package base43

import (
	"bytes"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	cases := [][]byte{
		{0x00},
		{0x00, 0x00, 0x01},
		{0x01, 0x02, 0x03, 0x04},
		{0xFF, 0xFF, 0xFF, 0xFF},
		{0x00, 0xAB, 0xCD, 0xEF},
		bytes.Repeat([]byte{0x00}, 3),
	}
	for _, in := range cases {
		enc := Encode(in)
		out, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode(%q): %v", enc, err)
		}
		if !bytes.Equal(out, in) {
			t.Fatalf("round trip mismatch for %v: got %v via %q", in, out, enc)
		}
	}
}

func TestEncodePreservesLeadingZeros(t *testing.T) {
	enc := Encode([]byte{0x00, 0x00, 0x2A})
	if enc[0] != '0' || enc[1] != '0' {
		t.Fatalf("expected two leading '0' characters, got %q", enc)
	}
}

func TestDecodeRejectsInvalidCharacter(t *testing.T) {
	if _, err := Decode("!!!!"); err != ErrCorrupt {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestSeedScenarioRoundTripsThroughText(t *testing.T) {
	const text = "0CQV4*87Q-"
	decoded, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode(%q): %v", text, err)
	}
	if got := Encode(decoded); got != text {
		t.Fatalf("Encode(Decode(%q)) = %q, want %q", text, got, text)
	}
}
