// Package base32 implements the RFC 4648 base32 alphabet used by the
// BBQr transport's "2" (plain) and "Z" (compressed) encodings.
package base32

import (
	"errors"
	"strings"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// ErrCorrupt is returned for input containing a character outside the
// base32 alphabet (after whitespace is stripped).
var ErrCorrupt = errors.New("base32: corrupt input")

var decodeTable = buildDecodeTable()

func buildDecodeTable() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i, c := range alphabet {
		t[c] = int8(i)
		t[strings.ToLower(string(c))[0]] = int8(i)
	}
	return t
}

// EncodedLen returns the padded base32 length of an n-byte input.
func EncodedLen(n int) int {
	if n == 0 {
		return 0
	}
	blocks := (n + 4) / 5
	return blocks * 8
}

// DecodedLen returns an upper bound on the decoded length of a base32
// string of length n (ignoring padding).
func DecodedLen(n int) int {
	return (n * 5) / 8
}

// charsPerBytes mirrors the reference encoder's group-size table: how
// many output characters a group of 1..5 input bytes produces.
var charsPerBytes = [6]int{0, 2, 4, 5, 7, 8}

// Encode returns the upper-case, '='-padded base32 encoding of data.
func Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(EncodedLen(len(data)))

	for off := 0; off < len(data); off += 5 {
		chunk := data[off:]
		n := 5
		if len(chunk) < 5 {
			n = len(chunk)
		}
		var buf [5]byte
		copy(buf[:], chunk[:n])

		acc := uint64(buf[0])<<32 | uint64(buf[1])<<24 | uint64(buf[2])<<16 | uint64(buf[3])<<8 | uint64(buf[4])
		nchars := charsPerBytes[n]
		for i := 0; i < 8; i++ {
			if i < nchars {
				shift := 35 - uint(i)*5
				idx := (acc >> shift) & 0x1F
				sb.WriteByte(alphabet[idx])
			} else {
				sb.WriteByte('=')
			}
		}
	}
	return sb.String()
}

// Decode decodes a base32 string, tolerating whitespace, case, and
// missing or present '=' padding.
func Decode(s string) ([]byte, error) {
	var stripped []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			continue
		}
		stripped = append(stripped, c)
	}
	for len(stripped) > 0 && stripped[len(stripped)-1] == '=' {
		stripped = stripped[:len(stripped)-1]
	}

	out := make([]byte, 0, DecodedLen(len(stripped))+1)
	var acc uint64
	var bits uint
	for _, c := range stripped {
		v := decodeTable[c]
		if v < 0 {
			return nil, ErrCorrupt
		}
		acc = acc<<5 | uint64(v)
		bits += 5
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(acc>>bits))
		}
	}
	return out, nil
}
