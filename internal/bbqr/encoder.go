package bbqr

// Encode splits data into BBQr parts no larger than maxPayloadPerPart
// encoded bytes each, picking "Z" or "2" encoding by whichever is
// shorter (see EncodePayload) and sizing parts with the reference
// two-step formula: first estimate a part count from a rounded-down
// per-part budget, then redistribute the encoded payload evenly across
// that many parts, rounded back up to a multiple of 8.
func Encode(ft FileType, data []byte, maxPayloadPerPart int) ([]Part, error) {
	if maxPayloadPerPart < 8 {
		maxPayloadPerPart = 8
	}
	enc, encoded := EncodePayload(data)

	estimate := (maxPayloadPerPart / 8) * 8
	if estimate == 0 {
		estimate = 8
	}
	numParts := ceilDiv(len(encoded), estimate)
	if numParts < 1 {
		numParts = 1
	}

	payloadPerPart := roundUp8(ceilDiv(len(encoded), numParts))
	if payloadPerPart < 8 {
		payloadPerPart = 8
	}
	numParts = ceilDiv(len(encoded), payloadPerPart)
	if numParts < 1 {
		numParts = 1
	}
	if numParts > maxTotal {
		return nil, ErrBadBase36
	}

	parts := make([]Part, 0, numParts)
	for i := 0; i < numParts; i++ {
		start := i * payloadPerPart
		end := start + payloadPerPart
		if end > len(encoded) {
			end = len(encoded)
		}
		parts = append(parts, Part{
			Encoding: enc,
			FileType: ft,
			Total:    numParts,
			Index:    i,
			Payload:  encoded[start:end],
		})
	}
	return parts, nil
}

// RenderPart renders a part back to its full wire form: 8-byte header
// followed by its payload slice.
func RenderPart(p Part) []byte {
	out := EncodeHeader(p.Encoding, p.FileType, p.Total, p.Index)
	return append(out, p.Payload...)
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

func roundUp8(n int) int {
	return ((n + 7) / 8) * 8
}
