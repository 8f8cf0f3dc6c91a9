package detector

import (
	"errors"
	"strconv"
	"strings"
)

// ErrMalformed is returned when data matches a format's shape by
// length/character-class but fails to decode against the Bip39
// collaborator (an out-of-range word index, an invalid checksum word).
var ErrMalformed = errors.New("detector: malformed payload for detected format")

// DecodeSeedQR parses a 48 or 96 digit string as four-digit decimal
// BIP39 word indices and resolves each through bip39.
func DecodeSeedQR(data []byte, bip39 Bip39) ([]string, error) {
	if len(data)%4 != 0 {
		return nil, ErrMalformed
	}
	words := make([]string, 0, len(data)/4)
	for i := 0; i < len(data); i += 4 {
		idx, err := strconv.Atoi(string(data[i : i+4]))
		if err != nil {
			return nil, ErrMalformed
		}
		word, ok := bip39.WordByIndex(idx)
		if !ok {
			return nil, ErrMalformed
		}
		words = append(words, word)
	}
	return words, nil
}

// DecodePlainMnemonic splits a space-separated mnemonic string into
// words, validating it against bip39.
func DecodePlainMnemonic(data []byte, bip39 Bip39) ([]string, error) {
	words := strings.Fields(string(data))
	if len(words) == 0 || !bip39.Validate(words) {
		return nil, ErrMalformed
	}
	return words, nil
}

// DecodeCompactEntropy resolves raw BIP39 entropy bytes to their
// mnemonic word list via bip39.
func DecodeCompactEntropy(data []byte, bip39 Bip39) ([]string, error) {
	words, err := bip39.MnemonicFromEntropy(data)
	if err != nil {
		return nil, ErrMalformed
	}
	return words, nil
}

// Decode classifies data and decodes it to a mnemonic word list in one
// step, returning FormatUnknown and a nil word list if nothing
// matched.
func Decode(data []byte, bip39 Bip39) (Format, []string, error) {
	format := DetectFormat(data)
	switch format {
	case FormatCompactEntropy:
		words, err := DecodeCompactEntropy(data, bip39)
		return format, words, err
	case FormatSeedQR:
		words, err := DecodeSeedQR(data, bip39)
		return format, words, err
	case FormatPlainMnemonic:
		words, err := DecodePlainMnemonic(data, bip39)
		return format, words, err
	default:
		return FormatUnknown, nil, nil
	}
}
