package kef

import "errors"

// Sentinel errors for the closed set of KEF failure kinds. Callers use
// errors.Is to check for a specific condition; nothing in this package
// retries internally, every error surfaces to the caller.
var (
	ErrInvalidArg         = errors.New("kef: invalid argument")
	ErrUnsupportedVersion = errors.New("kef: unsupported version")
	ErrAlloc              = errors.New("kef: allocation failed")
	ErrCrypto             = errors.New("kef: cryptographic operation failed")
	ErrAuth               = errors.New("kef: authentication failed")
	ErrCompress           = errors.New("kef: compression failed")
	ErrDecompress         = errors.New("kef: decompression failed")
	ErrEnvelopeTooShort   = errors.New("kef: envelope too short")
	ErrDuplicateBlocks    = errors.New("kef: duplicate ECB blocks detected")
)
