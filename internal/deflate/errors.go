// Package deflate implements RFC 1951 raw DEFLATE and an RFC 1950 zlib
// wrapper, compatible byte-for-byte with the miniz-derived decoder this
// device's QR transport and KEF envelope compression were built
// against.
package deflate

import "errors"

var (
	// ErrData is returned for corrupt or structurally invalid compressed
	// input: a bad block type, an out-of-range Huffman symbol, a
	// back-reference past the start of output, a stored-block length
	// mismatch, or a zlib header/checksum failure.
	ErrData = errors.New("deflate: corrupt compressed data")

	// ErrBuf is returned when decompression would exceed the caller's
	// output size ceiling.
	ErrBuf = errors.New("deflate: output buffer limit exceeded")

	// ErrMem is returned if an internal allocation fails.
	ErrMem = errors.New("deflate: allocation failed")
)
