package kef

import (
	"crypto/sha256"
	"crypto/subtle"
)

// hiddenAuth computes the trailer appended inside the padded region: a
// truncated SHA-256 of the working buffer (post-compression,
// pre-padding data). Because it is appended before padding/encryption,
// it travels inside the ciphertext rather than in cleartext.
func hiddenAuth(working []byte, authSize int) []byte {
	sum := sha256.Sum256(working)
	return sum[:authSize]
}

// exposedAuth computes the trailer appended outside the ciphertext in
// cleartext: a truncated SHA-256 of (version, iv, plaintext, key), where
// plaintext is the pre-compression data, never the compressed working
// buffer.
func exposedAuth(version byte, iv, plaintext, key []byte, authSize int) []byte {
	h := sha256.New()
	h.Write([]byte{version})
	h.Write(iv)
	h.Write(plaintext)
	h.Write(key)
	sum := h.Sum(nil)
	return sum[:authSize]
}

// authEqual compares two auth trailers in constant time.
func authEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
