package kef

import (
	"bytes"

	"github.com/krux-signer/core/internal/deflate"
)

// deflateWbits is the fixed window-size parameter used for every
// compressed KEF row: every version that sets Compress shares one
// DEFLATE profile.
const deflateWbits = 10

// Header is the result of parsing a KEF envelope's fixed prefix: the
// id, the version row it names, the decoded effective iteration count,
// and the byte offsets of the sections that follow.
type Header struct {
	ID         []byte
	Version    byte
	Row        Row
	Iterations uint32

	ivStart         int
	ciphertextStart int
	ciphertextEnd   int
	authStart       int
}

// ParseHeader validates and decodes the fixed prefix of env: len_id,
// id, version, and the encoded iteration field. It does not validate
// that env is long enough to hold iv+ciphertext+trailer; callers that
// need that guarantee use IsEnvelope or rely on Decrypt's own check.
func ParseHeader(env []byte) (Header, error) {
	if len(env) < 6 {
		return Header{}, ErrEnvelopeTooShort
	}
	lenID := int(env[0])
	if lenID < 1 {
		return Header{}, ErrInvalidArg
	}
	if len(env) < 1+lenID+4 {
		return Header{}, ErrEnvelopeTooShort
	}

	id := env[1 : 1+lenID]
	version := env[1+lenID]
	row, ok := Lookup(version)
	if !ok {
		return Header{}, ErrUnsupportedVersion
	}

	var iterBytes [3]byte
	copy(iterBytes[:], env[2+lenID:5+lenID])
	iterations := DecodeIterations(iterBytes)

	ivStart := 5 + lenID
	ciphertextStart := ivStart + row.IVSize

	authTrailerSize := 0
	if row.HasExposedTrailer() {
		authTrailerSize = row.AuthSize
	}
	ciphertextEnd := len(env) - authTrailerSize
	authStart := ciphertextEnd

	return Header{
		ID:              id,
		Version:         version,
		Row:             row,
		Iterations:      iterations,
		ivStart:         ivStart,
		ciphertextStart: ciphertextStart,
		ciphertextEnd:   ciphertextEnd,
		authStart:       authStart,
	}, nil
}

// IsEnvelope reports whether data parses as a structurally valid KEF
// envelope: a clean header naming a known version, with enough
// remaining length to hold iv, a minimum-size ciphertext, and any
// trailer the row requires.
func IsEnvelope(data []byte) bool {
	h, err := ParseHeader(data)
	if err != nil {
		return false
	}
	minCiphertext := h.Row.MinCiphertextLen()
	trailer := 0
	if h.Row.HasExposedTrailer() {
		trailer = h.Row.AuthSize
	}
	need := h.ivStart + h.Row.IVSize + minCiphertext + trailer
	return len(data) >= need && h.ciphertextEnd >= h.ciphertextStart
}

// Encrypt builds a KEF envelope for plaintext under the named version:
// derive the key, generate the IV, optionally compress, attach a
// hidden auth trailer if the row wants one, pad, encrypt, then attach
// an exposed or GCM trailer if the row wants one.
func Encrypt(id []byte, version byte, password []byte, iterations uint32, plaintext []byte, rng Rng) ([]byte, error) {
	if len(id) < 1 || len(id) > 255 {
		return nil, ErrInvalidArg
	}
	if len(plaintext) == 0 || iterations == 0 {
		return nil, ErrInvalidArg
	}
	row, ok := Lookup(version)
	if !ok {
		return nil, ErrUnsupportedVersion
	}
	if rng == nil {
		rng = DefaultRng
	}

	// The key is derived from the count the header records, so the
	// envelope decrypts under the count DecodeIterations recovers.
	iterBytes := EncodeIterations(iterations)
	key := deriveKey(password, id, DecodeIterations(iterBytes))
	defer secureZero(key)

	iv := make([]byte, row.IVSize)
	if row.IVSize > 0 {
		if err := rng.Fill(iv); err != nil {
			return nil, ErrCrypto
		}
	}

	working := make([]byte, len(plaintext))
	copy(working, plaintext)
	defer secureZero(working)

	if row.Compress {
		compressed, err := deflate.CompressRaw(working, deflateWbits)
		if err != nil {
			return nil, ErrCompress
		}
		secureZero(working)
		working = compressed
	}

	if row.AuthType == AuthHidden {
		trailer := hiddenAuth(working, row.AuthSize)
		withAuth := make([]byte, 0, len(working)+len(trailer))
		withAuth = append(append(withAuth, working...), trailer...)
		secureZero(working)
		working = withAuth
	}

	padded, err := applyPadding(row.Padding, working)
	secureZero(working)
	if err != nil {
		return nil, err
	}
	defer secureZero(padded)

	ciphertext, tag, err := encryptBlock(row, key, iv, padded)
	if err != nil {
		return nil, err
	}

	var trailer []byte
	switch row.AuthType {
	case AuthExposed:
		trailer = exposedAuth(version, iv, plaintext, key, row.AuthSize)
	case AuthGCM:
		trailer = tag
	}

	out := make([]byte, 0, 1+len(id)+4+len(iv)+len(ciphertext)+len(trailer))
	out = append(out, byte(len(id)))
	out = append(out, id...)
	out = append(out, version)
	out = append(out, iterBytes[:]...)
	out = append(out, iv...)
	out = append(out, ciphertext...)
	out = append(out, trailer...)

	return out, nil
}

// Decrypt reverses Encrypt, recovering plaintext from env under
// password, including the NUL-strip-and-retry auth recovery search
// for NulZero-padded rows.
func Decrypt(env []byte, password []byte) ([]byte, error) {
	h, err := ParseHeader(env)
	if err != nil {
		return nil, err
	}
	row := h.Row

	minCiphertext := row.MinCiphertextLen()
	trailerSize := 0
	if row.HasExposedTrailer() {
		trailerSize = row.AuthSize
	}
	if len(env) < h.ivStart+row.IVSize+minCiphertext+trailerSize {
		return nil, ErrEnvelopeTooShort
	}

	iv := env[h.ivStart : h.ivStart+row.IVSize]
	ciphertext := env[h.ciphertextStart:h.ciphertextEnd]
	var storedTrailer []byte
	if trailerSize > 0 {
		storedTrailer = env[h.authStart : h.authStart+trailerSize]
	}

	key := deriveKey(password, h.ID, h.Iterations)
	defer secureZero(key)

	if row.Mode == ModeGCM {
		plain, err := decryptBlock(row, key, iv, ciphertext, storedTrailer)
		if err != nil {
			return nil, err
		}
		if row.Compress {
			defer secureZero(plain)
			return inflateChecked(plain)
		}
		return plain, nil
	}

	decrypted, err := decryptBlock(row, key, iv, ciphertext, nil)
	if err != nil {
		return nil, err
	}
	defer secureZero(decrypted)

	recovered, err := recoverPayload(row, h.Version, iv, key, decrypted, storedTrailer)
	if err != nil {
		return nil, err
	}

	if row.Compress {
		defer secureZero(recovered)
		return inflateChecked(recovered)
	}
	return recovered, nil
}

// recoverPayload strips padding and validates/recovers the
// authentication trailer, branching on the row's (padding, auth_type)
// pair.
func recoverPayload(row Row, version byte, iv, key, decrypted, storedTrailer []byte) ([]byte, error) {
	switch {
	case row.Padding == PaddingNulZero && row.AuthType == AuthHidden:
		return recoverNulHidden(decrypted, row.AuthSize)

	case row.Padding == PaddingNulZero && row.AuthType == AuthExposed:
		return recoverNulExposed(decrypted, version, iv, key, row.AuthSize, storedTrailer)

	case row.Padding == PaddingPkcs7 && row.AuthType == AuthHidden:
		unpadded, ok := unpadPkcs7(decrypted)
		if !ok {
			return nil, ErrAuth
		}
		return splitHiddenAuth(unpadded, row.AuthSize)

	case row.Padding == PaddingNone && row.AuthType == AuthHidden:
		return splitHiddenAuth(decrypted, row.AuthSize)

	default:
		return nil, ErrInvalidArg
	}
}

// recoverNulHidden strips trailing zero bytes, then for nuls in
// 0..=auth_size tries restoring that many zeros and checking the hidden
// auth hash, accepting the first match.
func recoverNulHidden(decrypted []byte, authSize int) ([]byte, error) {
	stripped := bytes.TrimRight(decrypted, "\x00")
	for nuls := 0; nuls <= authSize; nuls++ {
		candidateLen := len(stripped) + nuls
		if candidateLen > len(decrypted) || candidateLen < authSize {
			continue
		}
		candidate := decrypted[:candidateLen]
		data := candidate[:len(candidate)-authSize]
		wantAuth := candidate[len(candidate)-authSize:]
		if authEqual(hiddenAuth(data, authSize), wantAuth) {
			out := make([]byte, len(data))
			copy(out, data)
			return out, nil
		}
	}
	return nil, ErrAuth
}

// recoverNulExposed mirrors recoverNulHidden but validates against the
// exposed-auth trailer stored outside the ciphertext instead of a
// hidden trailer recovered from the decrypted bytes.
func recoverNulExposed(decrypted []byte, version byte, iv, key []byte, authSize int, storedTrailer []byte) ([]byte, error) {
	stripped := bytes.TrimRight(decrypted, "\x00")
	for k := 0; k <= authSize; k++ {
		candidateLen := len(stripped) + k
		if candidateLen > len(decrypted) {
			continue
		}
		candidate := decrypted[:candidateLen]
		if authEqual(exposedAuth(version, iv, candidate, key, authSize), storedTrailer) {
			out := make([]byte, len(candidate))
			copy(out, candidate)
			return out, nil
		}
	}
	return nil, ErrAuth
}

// splitHiddenAuth peels the trailing auth_size bytes off data and
// verifies them as a hidden auth hash over the remainder.
func splitHiddenAuth(data []byte, authSize int) ([]byte, error) {
	if len(data) < authSize {
		return nil, ErrAuth
	}
	payload := data[:len(data)-authSize]
	wantAuth := data[len(data)-authSize:]
	if !authEqual(hiddenAuth(payload, authSize), wantAuth) {
		return nil, ErrAuth
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}

// inflateChecked inflates a raw-DEFLATE compressed buffer, applying the
// codec-wide 16 MiB decompression ceiling.
func inflateChecked(compressed []byte) ([]byte, error) {
	out, err := deflate.DecompressRaw(compressed, 16<<20)
	if err != nil {
		return nil, ErrDecompress
	}
	return out, nil
}
