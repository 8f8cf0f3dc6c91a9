package deflate

// maxBits is the longest Huffman code DEFLATE allows.
const maxBits = 15

// lengthBase and lengthExtra give, for length codes 257..285 (indexed
// from 0), the smallest match length the code represents and how many
// extra bits follow it in the stream.
var lengthBase = []int{3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31, 35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258}
var lengthExtra = []int{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0}

// distBase and distExtra give the same for distance codes 0..29.
var distBase = []int{1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129, 193, 257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577}
var distExtra = []int{0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13}

// clcOrder is the order code-length codes are transmitted in a dynamic
// Huffman block header.
var clcOrder = []int{16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15}

// fixedLitLengths are the literal/length code bit-lengths RFC 1951
// 3.2.6 fixes for BTYPE=01 blocks.
var fixedLitLengths = buildFixedLitLengths()

// fixedDistLengths are the fixed distance code bit-lengths: all 30
// codes use 5 bits.
var fixedDistLengths = buildFixedDistLengths()

func buildFixedLitLengths() []int {
	lengths := make([]int, 288)
	for i := 0; i <= 143; i++ {
		lengths[i] = 8
	}
	for i := 144; i <= 255; i++ {
		lengths[i] = 9
	}
	for i := 256; i <= 279; i++ {
		lengths[i] = 7
	}
	for i := 280; i <= 287; i++ {
		lengths[i] = 8
	}
	return lengths
}

func buildFixedDistLengths() []int {
	lengths := make([]int, 30)
	for i := range lengths {
		lengths[i] = 5
	}
	return lengths
}

var (
	fixedLitDecodeTable  = buildHuffmanDecode(fixedLitLengths)
	fixedDistDecodeTable = buildHuffmanDecode(fixedDistLengths)
	fixedLitCodes        = buildCanonicalCodes(fixedLitLengths)
	fixedDistCodes       = buildCanonicalCodes(fixedDistLengths)
)

// huffmanDecode is a canonical Huffman decode table in the shape
// zlib's puff.c reference decoder uses: per-length symbol counts plus
// symbols sorted into code order.
type huffmanDecode struct {
	count  [maxBits + 1]int
	symbol []int
}

// buildHuffmanDecode constructs a decode table from per-symbol code
// lengths (0 meaning "symbol unused").
func buildHuffmanDecode(lengths []int) *huffmanDecode {
	h := &huffmanDecode{symbol: make([]int, len(lengths))}
	for _, l := range lengths {
		if l > 0 {
			h.count[l]++
		}
	}
	var offs [maxBits + 2]int
	for l := 1; l <= maxBits; l++ {
		offs[l+1] = offs[l] + h.count[l]
	}
	for sym, l := range lengths {
		if l > 0 {
			h.symbol[offs[l]] = sym
			offs[l]++
		}
	}
	return h
}

// buildCanonicalCodes computes the canonical Huffman code for each
// symbol per RFC 1951 3.2.2, used by the encoder to emit codes that
// buildHuffmanDecode's construction is guaranteed to decode correctly.
func buildCanonicalCodes(lengths []int) []int {
	var blCount [maxBits + 1]int
	for _, l := range lengths {
		if l > 0 {
			blCount[l]++
		}
	}
	var nextCode [maxBits + 1]int
	code := 0
	for bits := 1; bits <= maxBits; bits++ {
		code = (code + blCount[bits-1]) << 1
		nextCode[bits] = code
	}
	codes := make([]int, len(lengths))
	for sym, l := range lengths {
		if l > 0 {
			codes[sym] = nextCode[l]
			nextCode[l]++
		}
	}
	return codes
}
