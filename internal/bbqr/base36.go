package bbqr

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var base36Decode = buildBase36Decode()

func buildBase36Decode() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i, c := range base36Alphabet {
		t[c] = int8(i)
	}
	return t
}

// encodeBase36Pair renders v (0..1295) as two base36 digits, most
// significant first.
func encodeBase36Pair(v int) (hi, lo byte) {
	return base36Alphabet[v/36], base36Alphabet[v%36]
}

// decodeBase36Pair reverses encodeBase36Pair, tolerating lowercase
// input the way the reference bbqr_base36_decode does.
func decodeBase36Pair(hi, lo byte) (int, error) {
	h := base36Decode[toUpper(hi)]
	l := base36Decode[toUpper(lo)]
	if h < 0 || l < 0 {
		return 0, ErrBadBase36
	}
	return int(h)*36 + int(l), nil
}

// toUpper uppercases a single ASCII letter, leaving other bytes
// unchanged.
func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
