// Package bbqr implements the BBQr multi-frame QR transport: an
// 8-byte ASCII header on every part, three payload encodings (hex,
// plain base32, compressed-then-base32), and an index-ordered
// assembler for reconstructing the full transfer.
package bbqr

import "errors"

var (
	// ErrBadHeader is returned when a part is shorter than 8 bytes or
	// does not start with the "B$" magic.
	ErrBadHeader = errors.New("bbqr: bad header")
	// ErrBadEncoding is returned for an encoding character outside {H,2,Z}.
	ErrBadEncoding = errors.New("bbqr: bad encoding character")
	// ErrBadFileType is returned for a file type character outside {P,T,J,U}.
	ErrBadFileType = errors.New("bbqr: bad file type character")
	// ErrBadBase36 is returned when the total or index field is not
	// valid base36, or decodes to an out-of-range value.
	ErrBadBase36 = errors.New("bbqr: bad base36 field")
	// ErrInconsistent is returned when parts claiming to belong to the
	// same transfer disagree on encoding, file type, or total.
	ErrInconsistent = errors.New("bbqr: inconsistent part header")
	// ErrDuplicateIndex is returned when two parts claim the same index
	// with different payloads; an identical resubmission is accepted.
	ErrDuplicateIndex = errors.New("bbqr: duplicate part index")
	// ErrIncomplete is returned when Assemble is called before every
	// index in 0..total has been seen.
	ErrIncomplete = errors.New("bbqr: transfer incomplete")
)
