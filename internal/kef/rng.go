package kef

import "github.com/krux-signer/core/internal/util"

// Rng is the injectable randomness source for IV generation. Encrypt
// falls back to DefaultRng, a crypto/rand-backed implementation, when
// passed a nil Rng; tests may substitute a deterministic Rng to pin IV
// values.
type Rng interface {
	Fill(b []byte) error
}

type cryptoRng struct{}

func (cryptoRng) Fill(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	random, err := util.RandomBytes(len(b))
	if err != nil {
		return err
	}
	copy(b, random)
	return nil
}

// DefaultRng is the platform CSPRNG used when no Rng is supplied.
var DefaultRng Rng = cryptoRng{}
