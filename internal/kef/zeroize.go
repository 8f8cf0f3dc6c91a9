package kef

import "crypto/subtle"

// secureZero overwrites b with zeros in a way the compiler cannot fold
// away, mitigating memory-dump exposure of key material and intermediate
// buffers. Every Encrypt/Decrypt exit path (success or failure) zeroes
// every transient buffer it allocated.
func secureZero(b []byte) {
	if len(b) == 0 {
		return
	}
	zeros := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zeros)
}

func secureZeroAll(bs ...[]byte) {
	for _, b := range bs {
		secureZero(b)
	}
}
