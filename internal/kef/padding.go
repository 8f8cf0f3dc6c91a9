package kef

// blockSize is the AES block size every block-mode padding rule rounds
// to.
const blockSize = 16

// padNulZero right-pads with 0x00 to the next 16-byte multiple, rounding
// a zero-length input up to a full block rather than leaving it empty.
func padNulZero(in []byte) []byte {
	padded := ((len(in) + blockSize - 1) / blockSize) * blockSize
	if padded == 0 {
		padded = blockSize
	}
	out := make([]byte, padded)
	copy(out, in)
	return out
}

// padPkcs7 applies standard PKCS#7 padding, including the mandatory
// full extra block when len(in) is already a multiple of 16.
func padPkcs7(in []byte) []byte {
	padLen := blockSize - len(in)%blockSize
	out := make([]byte, len(in)+padLen)
	copy(out, in)
	for i := len(in); i < len(out); i++ {
		out[i] = byte(padLen)
	}
	return out
}

// unpadPkcs7 removes PKCS#7 padding, returning ok=false if the trailing
// padding byte does not describe a valid padding run.
func unpadPkcs7(in []byte) (out []byte, ok bool) {
	if len(in) == 0 || len(in)%blockSize != 0 {
		return nil, false
	}
	padLen := int(in[len(in)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(in) {
		return nil, false
	}
	for i := len(in) - padLen; i < len(in); i++ {
		if in[i] != byte(padLen) {
			return nil, false
		}
	}
	return in[:len(in)-padLen], true
}

// applyPadding dispatches on the row's padding rule. PaddingNone returns
// a copy of in unchanged.
func applyPadding(p Padding, in []byte) ([]byte, error) {
	switch p {
	case PaddingNulZero:
		return padNulZero(in), nil
	case PaddingPkcs7:
		return padPkcs7(in), nil
	case PaddingNone:
		out := make([]byte, len(in))
		copy(out, in)
		return out, nil
	default:
		return nil, ErrInvalidArg
	}
}
