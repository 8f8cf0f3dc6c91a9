package detector

import (
	"fmt"
	"testing"
)

// fakeBip39 is a tiny in-memory word list sufficient to exercise the
// detector's decode paths without depending on the real BIP39 word
// list, which lives outside this package's scope.
type fakeBip39 struct {
	words []string
	index map[string]int
}

func newFakeBip39() *fakeBip39 {
	words := make([]string, 2048)
	index := make(map[string]int, 2048)
	for i := range words {
		w := fmt.Sprintf("word%04d", i)
		words[i] = w
		index[w] = i
	}
	return &fakeBip39{words: words, index: index}
}

func (f *fakeBip39) WordByIndex(i int) (string, bool) {
	if i < 0 || i >= len(f.words) {
		return "", false
	}
	return f.words[i], true
}

func (f *fakeBip39) IndexOfWord(word string) (int, bool) {
	i, ok := f.index[word]
	return i, ok
}

func (f *fakeBip39) Validate(words []string) bool {
	for _, w := range words {
		if _, ok := f.index[w]; !ok {
			return false
		}
	}
	return len(words) > 0
}

func (f *fakeBip39) MnemonicFromEntropy(entropy []byte) ([]string, error) {
	n := len(entropy)
	if n != 16 && n != 32 {
		return nil, fmt.Errorf("unsupported entropy length %d", n)
	}
	count := n / 4 * 3 // 12 words for 16 bytes, 24 for 32, matching BIP39 ratios
	words := make([]string, count)
	for i := range words {
		words[i] = f.words[int(entropy[i%n])%len(f.words)]
	}
	return words, nil
}

func (f *fakeBip39) EntropyFromMnemonic(words []string) ([]byte, error) {
	out := make([]byte, len(words))
	for i, w := range words {
		idx, ok := f.index[w]
		if !ok {
			return nil, fmt.Errorf("unknown word %q", w)
		}
		out[i] = byte(idx)
	}
	return out, nil
}

func TestDetectCompactEntropyNonPrintable(t *testing.T) {
	data := make([]byte, 16)
	data[0] = 0x00
	data[1] = 0xFF
	if got := DetectFormat(data); got != FormatCompactEntropy {
		t.Fatalf("got %v, want CompactEntropy", got)
	}
}

func TestDetectCompactEntropyFallbackAllPrintable(t *testing.T) {
	data := make([]byte, 32)
	for i := range data {
		data[i] = 'a'
	}
	if got := DetectFormat(data); got != FormatCompactEntropy {
		t.Fatalf("got %v, want CompactEntropy (printable fallback)", got)
	}
}

func TestDetectSeedQR(t *testing.T) {
	data := []byte("000100020003000400050006000700080009001000110012")[:48]
	if got := DetectFormat(data); got != FormatSeedQR {
		t.Fatalf("got %v, want SeedQR", got)
	}
}

func TestDetectPlainMnemonic(t *testing.T) {
	data := []byte("word0001 word0002 word0003 word0004 word0005 word0006")
	if got := DetectFormat(data); got != FormatPlainMnemonic {
		t.Fatalf("got %v, want PlainMnemonic", got)
	}
}

func TestDetectUnknown(t *testing.T) {
	data := []byte("12345")
	if got := DetectFormat(data); got != FormatUnknown {
		t.Fatalf("got %v, want Unknown", got)
	}
}

func TestDecodeSeedQRResolvesWords(t *testing.T) {
	bip39 := newFakeBip39()
	data := []byte("000100020003000400050006000700080009001000110012")
	data = data[:48]
	words, err := DecodeSeedQR(data, bip39)
	if err != nil {
		t.Fatalf("DecodeSeedQR: %v", err)
	}
	if len(words) != 12 {
		t.Fatalf("expected 12 words, got %d", len(words))
	}
	if words[0] != "word0001" {
		t.Fatalf("got %q", words[0])
	}
}

func TestDecodePlainMnemonicValidatesAgainstBip39(t *testing.T) {
	bip39 := newFakeBip39()
	data := []byte("word0001 word0002 notaword")
	if _, err := DecodePlainMnemonic(data, bip39); err != ErrMalformed {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestDecodeDispatchesOnFormat(t *testing.T) {
	bip39 := newFakeBip39()
	data := []byte("word0001 word0002 word0003 word0004 word0005 word0006")
	format, words, err := Decode(data, bip39)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if format != FormatPlainMnemonic {
		t.Fatalf("got format %v", format)
	}
	if len(words) != 6 {
		t.Fatalf("got %d words", len(words))
	}
}
