package bbqr

import (
	"encoding/hex"
	"strings"

	"github.com/krux-signer/core/internal/base32"
	"github.com/krux-signer/core/internal/deflate"
)

// decompressCeiling bounds the inflate this package will perform on a
// "Z"-encoded transfer, mirroring KEF's envelope decompression ceiling.
const decompressCeiling = 16 << 20

// wbits is the fixed DEFLATE window used when producing "Z" transfers.
const wbits = 10

// DecodePayload turns the full concatenated, still-encoded transfer
// string into its final bytes, dispatching on enc:
//
//   - H: hex decode.
//   - 2: base32 decode.
//   - Z: base32 decode, then inflate — tolerating producers that wrap
//     the DEFLATE stream in a zlib header as well as ones that don't.
func DecodePayload(enc Encoding, encoded []byte) ([]byte, error) {
	switch enc {
	case EncodingHex:
		out, err := hex.DecodeString(strings.TrimSpace(string(encoded)))
		if err != nil {
			return nil, ErrBadEncoding
		}
		return out, nil

	case EncodingBase32:
		out, err := base32.Decode(string(encoded))
		if err != nil {
			return nil, ErrBadEncoding
		}
		return out, nil

	case EncodingCompressed:
		decoded, err := base32.Decode(string(encoded))
		if err != nil {
			return nil, ErrBadEncoding
		}
		out, err := deflate.DecompressAuto(decoded, decompressCeiling)
		if err != nil {
			return nil, ErrBadEncoding
		}
		return out, nil

	default:
		return nil, ErrBadEncoding
	}
}

// EncodePayload picks between plain base32 ("2") and compressed
// base32 ("Z") by actually compressing and comparing: "Z" is used
// only when raw DEFLATE plus base32 is shorter than plain base32 of
// the uncompressed data.
func EncodePayload(data []byte) (Encoding, []byte) {
	plain := base32.Encode(data)

	compressed, err := deflate.CompressRaw(data, wbits)
	if err != nil {
		return EncodingBase32, []byte(plain)
	}
	compressedEncoded := base32.Encode(compressed)

	if len(compressedEncoded) < len(plain) {
		return EncodingCompressed, []byte(compressedEncoded)
	}
	return EncodingBase32, []byte(plain)
}
