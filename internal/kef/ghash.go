package kef

import (
	"crypto/cipher"
	"encoding/binary"
)

// gcmBlockSize is the GHASH/AES block size in bytes.
const gcmBlockSize = 16

// ghashMul multiplies two 128-bit blocks in the GF(2^128) field GCM
// defines (the "reflected" representation of NIST SP 800-38D), writing
// the result into y. This is the textbook shift-and-xor algorithm: slow
// compared to a table-driven reduction, but the row's tag is always
// truncated to a handful of bytes, so GCM is never used here for
// high-throughput bulk transport.
func ghashMul(x, y *[gcmBlockSize]byte) {
	var z, v [gcmBlockSize]byte
	copy(v[:], y[:])

	for i := 0; i < gcmBlockSize; i++ {
		for bit := 0; bit < 8; bit++ {
			if x[i]&(0x80>>uint(bit)) != 0 {
				xorBlock(&z, &v)
			}
			lsb := v[15] & 1
			shiftRight(&v)
			if lsb != 0 {
				v[0] ^= 0xe1
			}
		}
	}
	*y = z
}

func xorBlock(dst, src *[gcmBlockSize]byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

func shiftRight(v *[gcmBlockSize]byte) {
	var carry byte
	for i := 0; i < gcmBlockSize; i++ {
		next := v[i] & 1
		v[i] = v[i]>>1 | carry<<7
		carry = next
	}
}

// ghash computes the GHASH of aad and ciphertext under hash subkey h,
// per SP 800-38D section 6.4 (algorithm GHASH_H), with aad always empty
// in this codec.
func ghash(h *[gcmBlockSize]byte, aad, ciphertext []byte) [gcmBlockSize]byte {
	var y [gcmBlockSize]byte

	absorb := func(data []byte) {
		for len(data) > 0 {
			var block [gcmBlockSize]byte
			n := copy(block[:], data)
			xorBlock(&y, &block)
			ghashMul(h, &y)
			data = data[n:]
		}
	}
	absorb(aad)
	absorb(ciphertext)

	var lenBlock [gcmBlockSize]byte
	binary.BigEndian.PutUint64(lenBlock[0:8], uint64(len(aad))*8)
	binary.BigEndian.PutUint64(lenBlock[8:16], uint64(len(ciphertext))*8)
	xorBlock(&y, &lenBlock)
	ghashMul(h, &y)

	return y
}

// gcmCounterIV builds the J0 initial counter block for a 96-bit IV per
// SP 800-38D section 7.1: IV || 0x00000001.
func gcmCounterIV(iv []byte) [gcmBlockSize]byte {
	var j0 [gcmBlockSize]byte
	copy(j0[:12], iv)
	j0[15] = 1
	return j0
}

// incr32 increments the low 32 bits of a counter block, matching the
// standard GCM counter increment (the rest of the block is untouched).
func incr32(ctr *[gcmBlockSize]byte) {
	for i := 15; i >= 12; i-- {
		ctr[i]++
		if ctr[i] != 0 {
			return
		}
	}
}

// gcmSealTruncated performs GCM encryption with a 96-bit IV and no AAD,
// returning ciphertext and a tag truncated to tagSize bytes. Go's
// standard library AEAD only supports tag sizes of 12-16 bytes via
// NewGCMWithTagSize; this codec's GCM rows truncate to 4 bytes, so the primitive is assembled by hand from the block cipher
// per SP 800-38D instead.
func gcmSealTruncated(block cipher.Block, iv, plaintext []byte, tagSize int) (ciphertext, tag []byte) {
	var h [gcmBlockSize]byte
	block.Encrypt(h[:], h[:])

	j0 := gcmCounterIV(iv)
	ctr := j0
	incr32(&ctr)

	stream := cipher.NewCTR(block, ctr[:])
	ciphertext = make([]byte, len(plaintext))
	stream.XORKeyStream(ciphertext, plaintext)

	s := ghash(&h, nil, ciphertext)
	var e0 [gcmBlockSize]byte
	block.Encrypt(e0[:], j0[:])
	xorBlock(&s, &e0)

	return ciphertext, s[:tagSize]
}

// gcmOpenTruncated reverses gcmSealTruncated, reporting ok=false (and
// mapping to ErrAuth at the call site) if the recomputed tag does not
// match the stored truncated tag in constant time.
func gcmOpenTruncated(block cipher.Block, iv, ciphertext, wantTag []byte) (plaintext []byte, ok bool) {
	var h [gcmBlockSize]byte
	block.Encrypt(h[:], h[:])

	j0 := gcmCounterIV(iv)

	s := ghash(&h, nil, ciphertext)
	var e0 [gcmBlockSize]byte
	block.Encrypt(e0[:], j0[:])
	xorBlock(&s, &e0)

	if !authEqual(s[:len(wantTag)], wantTag) {
		return nil, false
	}

	ctr := j0
	incr32(&ctr)
	stream := cipher.NewCTR(block, ctr[:])
	plaintext = make([]byte, len(ciphertext))
	stream.XORKeyStream(plaintext, ciphertext)
	return plaintext, true
}
