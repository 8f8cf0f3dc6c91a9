package bbqr

import (
	"bytes"
	"testing"
)

func TestEncodeAssembleRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("deadbeefcafef00d"), 200)
	parts, err := Encode(FileTypePSBT, data, 120)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(parts) < 2 {
		t.Fatalf("expected multiple parts for this input size, got %d", len(parts))
	}

	asm := NewAssembler()
	for _, p := range parts {
		if err := asm.Add(p); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if !asm.Complete() {
		t.Fatal("expected transfer to be complete")
	}
	out, err := asm.Assemble()
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round trip mismatch")
	}
}

func TestEncodeAssembleRoundTripOutOfOrder(t *testing.T) {
	data := []byte("a small single-frame transfer")
	parts, err := Encode(FileTypeUnicodeText, data, 1000)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	asm := NewAssembler()
	for i := len(parts) - 1; i >= 0; i-- {
		if err := asm.Add(parts[i]); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	out, err := asm.Assemble()
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round trip mismatch: got %q want %q", out, data)
	}
}

func TestAssembleIncomplete(t *testing.T) {
	data := bytes.Repeat([]byte("x"), 500)
	parts, err := Encode(FileTypeJSON, data, 32)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	asm := NewAssembler()
	for _, p := range parts[:len(parts)-1] {
		if err := asm.Add(p); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if _, err := asm.Assemble(); err != ErrIncomplete {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}
}

func TestAssembleInconsistentHeader(t *testing.T) {
	asm := NewAssembler()
	p1 := Part{Encoding: EncodingBase32, FileType: FileTypePSBT, Total: 2, Index: 0, Payload: []byte("AA")}
	p2 := Part{Encoding: EncodingHex, FileType: FileTypePSBT, Total: 2, Index: 1, Payload: []byte("BB")}
	if err := asm.Add(p1); err != nil {
		t.Fatalf("Add p1: %v", err)
	}
	if err := asm.Add(p2); err != ErrInconsistent {
		t.Fatalf("expected ErrInconsistent, got %v", err)
	}
}

func TestParsePartHeaderRoundTrip(t *testing.T) {
	raw := RenderPart(Part{Encoding: EncodingCompressed, FileType: FileTypeTransaction, Total: 3, Index: 1, Payload: []byte("PAYLOAD")})
	p, err := ParsePart(raw)
	if err != nil {
		t.Fatalf("ParsePart: %v", err)
	}
	if p.Encoding != EncodingCompressed || p.FileType != FileTypeTransaction || p.Total != 3 || p.Index != 1 {
		t.Fatalf("unexpected parsed fields: %+v", p)
	}
	if string(p.Payload) != "PAYLOAD" {
		t.Fatalf("unexpected payload: %q", p.Payload)
	}
}

func TestParsePartTreatsHeaderCaseInsensitively(t *testing.T) {
	raw := []byte("B$zt0301PAYLOAD")
	p, err := ParsePart(raw)
	if err != nil {
		t.Fatalf("ParsePart: %v", err)
	}
	if p.Encoding != EncodingCompressed || p.FileType != FileTypeTransaction || p.Total != 3 || p.Index != 1 {
		t.Fatalf("unexpected parsed fields: %+v", p)
	}
	if string(p.Payload) != "PAYLOAD" {
		t.Fatalf("unexpected payload: %q", p.Payload)
	}
}

func TestParsePartRejectsBadMagic(t *testing.T) {
	if _, err := ParsePart([]byte("XX2P0100")); err != ErrBadHeader {
		t.Fatalf("expected ErrBadHeader, got %v", err)
	}
}

func TestParsePartRejectsBadEncoding(t *testing.T) {
	if _, err := ParsePart([]byte("B$XP0100")); err != ErrBadEncoding {
		t.Fatalf("expected ErrBadEncoding, got %v", err)
	}
}

func TestThreePartCompressedTransfer(t *testing.T) {
	data := bytes.Repeat([]byte("00000000000000000000000000000000"), 300)
	parts, err := Encode(FileTypePSBT, data, 40)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if parts[0].Encoding != EncodingCompressed {
		t.Fatalf("expected highly repetitive data to choose Z encoding, got %v", parts[0].Encoding)
	}

	asm := NewAssembler()
	for _, p := range parts {
		if err := asm.Add(p); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	out, err := asm.Assemble()
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round trip mismatch")
	}
}
