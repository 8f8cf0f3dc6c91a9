package kef

// IterThreshold is the compaction threshold: an effective iteration
// count that is an exact multiple of this value, and whose quotient is
// at most IterThreshold, is stored as that quotient instead of the raw
// count.
const IterThreshold = 10000

// EncodeIterations packs an effective PBKDF2 iteration count into the
// envelope's 3-byte big-endian stored field, using the compact form
// whenever the count qualifies for it; other counts are stored as-is.
func EncodeIterations(effective uint32) [3]byte {
	stored := effective
	if effective >= IterThreshold &&
		effective%IterThreshold == 0 &&
		effective/IterThreshold <= IterThreshold {
		stored = effective / IterThreshold
	}
	return [3]byte{
		byte(stored >> 16),
		byte(stored >> 8),
		byte(stored),
	}
}

// DecodeIterations reads the stored field back as an effective count: a
// stored value of at most IterThreshold is a compact quotient and is
// multiplied by IterThreshold, a larger one is the raw count. It inverts
// EncodeIterations for counts from IterThreshold up to 2^24-1; a count
// below IterThreshold is stored as-is and so decodes multiplied by
// IterThreshold.
func DecodeIterations(stored [3]byte) uint32 {
	val := uint32(stored[0])<<16 | uint32(stored[1])<<8 | uint32(stored[2])
	if val <= IterThreshold {
		return val * IterThreshold
	}
	return val
}
