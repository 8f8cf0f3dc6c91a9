package kef

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// KeySize is the AES-256 key length derived for every KEF version.
const KeySize = 32

// deriveKey runs PBKDF2-HMAC-SHA256(password, salt=id, iterations, dkLen=32).
// The envelope's own id doubles as the KDF salt.
func deriveKey(password, id []byte, iterations uint32) []byte {
	return pbkdf2.Key(password, id, int(iterations), KeySize, sha256.New)
}
