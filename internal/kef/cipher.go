package kef

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
)

// hasDuplicateBlocks reports whether any two 16-byte blocks of buf are
// bytewise identical. ECB leaks block-level patterns, so encrypt refuses
// to run on input that would make that leakage visible.
func hasDuplicateBlocks(buf []byte) bool {
	n := len(buf) / blockSize
	for i := 0; i < n; i++ {
		bi := buf[i*blockSize : (i+1)*blockSize]
		for j := i + 1; j < n; j++ {
			bj := buf[j*blockSize : (j+1)*blockSize]
			if bytes.Equal(bi, bj) {
				return true
			}
		}
	}
	return false
}

// ecbEncrypt and ecbDecrypt implement AES-ECB by hand: crypto/cipher
// deliberately omits an ECB mode, since it is unsafe for general use.
// This codec needs it anyway to stay bit-compatible with the oldest
// registered KEF rows.
func ecbEncrypt(block cipher.Block, buf []byte) {
	for off := 0; off < len(buf); off += blockSize {
		block.Encrypt(buf[off:off+blockSize], buf[off:off+blockSize])
	}
}

func ecbDecrypt(block cipher.Block, buf []byte) {
	for off := 0; off < len(buf); off += blockSize {
		block.Decrypt(buf[off:off+blockSize], buf[off:off+blockSize])
	}
}

// encryptBlock dispatches padded on row.Mode, returning ciphertext and,
// for GCM, the truncated tag. padded must already satisfy the row's
// duplicate-block and block-size constraints.
func encryptBlock(row Row, key, iv, padded []byte) (ciphertext, tag []byte, err error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, ErrCrypto
	}

	switch row.Mode {
	case ModeECB:
		if hasDuplicateBlocks(padded) {
			return nil, nil, ErrDuplicateBlocks
		}
		out := make([]byte, len(padded))
		copy(out, padded)
		ecbEncrypt(block, out)
		return out, nil, nil

	case ModeCBC:
		out := make([]byte, len(padded))
		cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
		return out, nil, nil

	case ModeCTR:
		out := make([]byte, len(padded))
		cipher.NewCTR(block, padIVToBlock(iv)).XORKeyStream(out, padded)
		return out, nil, nil

	case ModeGCM:
		ct, tg := gcmSealTruncated(block, iv, padded, row.AuthSize)
		return ct, tg, nil

	default:
		return nil, nil, ErrInvalidArg
	}
}

// decryptBlock reverses encryptBlock. For GCM, tag is the stored
// truncated tag read from the envelope tail; a mismatch maps to
// ErrAuth.
func decryptBlock(row Row, key, iv, ciphertext, tag []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, ErrCrypto
	}

	switch row.Mode {
	case ModeECB:
		if len(ciphertext)%blockSize != 0 {
			return nil, ErrCrypto
		}
		out := make([]byte, len(ciphertext))
		copy(out, ciphertext)
		ecbDecrypt(block, out)
		return out, nil

	case ModeCBC:
		if len(ciphertext)%blockSize != 0 {
			return nil, ErrCrypto
		}
		out := make([]byte, len(ciphertext))
		cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ciphertext)
		return out, nil

	case ModeCTR:
		out := make([]byte, len(ciphertext))
		cipher.NewCTR(block, padIVToBlock(iv)).XORKeyStream(out, ciphertext)
		return out, nil

	case ModeGCM:
		pt, ok := gcmOpenTruncated(block, iv, ciphertext, tag)
		if !ok {
			return nil, ErrAuth
		}
		return pt, nil

	default:
		return nil, ErrInvalidArg
	}
}

// padIVToBlock right-pads a 12-byte CTR nonce to a full 16-byte initial
// counter block (counter starting at zero), as crypto/cipher.NewCTR
// requires an iv the length of the block size.
func padIVToBlock(iv []byte) []byte {
	if len(iv) == blockSize {
		return iv
	}
	block := make([]byte, blockSize)
	copy(block, iv)
	return block
}
