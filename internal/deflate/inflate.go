package deflate

// decodeSymbol walks bit by bit, exactly as zlib's puff.c reference
// decoder does, building a candidate code and checking it against the
// per-length symbol ranges until one matches.
func decodeSymbol(r *bitReader, h *huffmanDecode) (int, error) {
	code, first, index := 0, 0, 0
	for length := 1; length <= maxBits; length++ {
		bit, err := r.needBits(1)
		if err != nil {
			return 0, err
		}
		code |= int(bit)
		count := h.count[length]
		if code-first < count {
			return h.symbol[index+(code-first)], nil
		}
		index += count
		first += count
		first <<= 1
		code <<= 1
	}
	return 0, ErrData
}

// InflateRaw inflates a raw DEFLATE stream (no zlib/gzip wrapper),
// refusing to grow the output past maxOut bytes.
func InflateRaw(compressed []byte, maxOut int) ([]byte, error) {
	r := newBitReader(compressed)

	initCap := 4 * len(compressed)
	if initCap < 1024 {
		initCap = 1024
	}
	if initCap > maxOut {
		initCap = maxOut
	}
	out := make([]byte, 0, initCap)

	for {
		final, err := r.needBits(1)
		if err != nil {
			return nil, ErrData
		}
		btype, err := r.needBits(2)
		if err != nil {
			return nil, ErrData
		}

		switch btype {
		case 0:
			out, err = inflateStored(r, out, maxOut)
		case 1:
			out, err = inflateBlock(r, out, fixedLitDecodeTable, fixedDistDecodeTable, maxOut)
		case 2:
			var lit, dist *huffmanDecode
			lit, dist, err = readDynamicTables(r)
			if err == nil {
				out, err = inflateBlock(r, out, lit, dist, maxOut)
			}
		default:
			err = ErrData
		}
		if err != nil {
			return nil, err
		}
		if final == 1 {
			break
		}
	}
	return out, nil
}

func inflateStored(r *bitReader, out []byte, maxOut int) ([]byte, error) {
	r.alignByte()
	lenLo, err := r.readByte()
	if err != nil {
		return nil, ErrData
	}
	lenHi, err := r.readByte()
	if err != nil {
		return nil, ErrData
	}
	nlenLo, err := r.readByte()
	if err != nil {
		return nil, ErrData
	}
	nlenHi, err := r.readByte()
	if err != nil {
		return nil, ErrData
	}
	n := int(lenLo) | int(lenHi)<<8
	nlen := int(nlenLo) | int(nlenHi)<<8
	if n != nlen^0xFFFF {
		return nil, ErrData
	}
	if len(out)+n > maxOut {
		return nil, ErrBuf
	}
	for i := 0; i < n; i++ {
		b, err := r.readByte()
		if err != nil {
			return nil, ErrData
		}
		out = append(out, b)
	}
	return out, nil
}

func inflateBlock(r *bitReader, out []byte, lit, dist *huffmanDecode, maxOut int) ([]byte, error) {
	for {
		sym, err := decodeSymbol(r, lit)
		if err != nil {
			return nil, err
		}
		if sym < 256 {
			if len(out)+1 > maxOut {
				return nil, ErrBuf
			}
			out = append(out, byte(sym))
			continue
		}
		if sym == 256 {
			return out, nil
		}

		idx := sym - 257
		if idx < 0 || idx >= len(lengthBase) {
			return nil, ErrData
		}
		length := lengthBase[idx]
		if lengthExtra[idx] > 0 {
			extra, err := r.needBits(uint(lengthExtra[idx]))
			if err != nil {
				return nil, ErrData
			}
			length += int(extra)
		}

		dsym, err := decodeSymbol(r, dist)
		if err != nil {
			return nil, err
		}
		if dsym < 0 || dsym >= len(distBase) {
			return nil, ErrData
		}
		distance := distBase[dsym]
		if distExtra[dsym] > 0 {
			extra, err := r.needBits(uint(distExtra[dsym]))
			if err != nil {
				return nil, ErrData
			}
			distance += int(extra)
		}

		if distance > len(out) {
			return nil, ErrData
		}
		if len(out)+length > maxOut {
			return nil, ErrBuf
		}
		for i := 0; i < length; i++ {
			out = append(out, out[len(out)-distance])
		}
	}
}

// readDynamicTables parses a BTYPE=10 block header per RFC 1951
// 3.2.7: code-length alphabet, then the literal/length and distance
// code-length sequences it encodes (with run-length symbols 16-18).
func readDynamicTables(r *bitReader) (lit, dist *huffmanDecode, err error) {
	hlitBits, err := r.needBits(5)
	if err != nil {
		return nil, nil, ErrData
	}
	hdistBits, err := r.needBits(5)
	if err != nil {
		return nil, nil, ErrData
	}
	hclenBits, err := r.needBits(4)
	if err != nil {
		return nil, nil, ErrData
	}
	hlit := int(hlitBits) + 257
	hdist := int(hdistBits) + 1
	hclen := int(hclenBits) + 4
	if hlit > 286 || hdist > 30 {
		return nil, nil, ErrData
	}

	var clcLengths [19]int
	for i := 0; i < hclen; i++ {
		v, err := r.needBits(3)
		if err != nil {
			return nil, nil, ErrData
		}
		clcLengths[clcOrder[i]] = int(v)
	}
	clcTable := buildHuffmanDecode(clcLengths[:])

	total := hlit + hdist
	lengths := make([]int, total)
	i := 0
	for i < total {
		sym, err := decodeSymbol(r, clcTable)
		if err != nil {
			return nil, nil, err
		}
		switch {
		case sym < 16:
			lengths[i] = sym
			i++
		case sym == 16:
			if i == 0 {
				return nil, nil, ErrData
			}
			repBits, err := r.needBits(2)
			if err != nil {
				return nil, nil, ErrData
			}
			rep := int(repBits) + 3
			prev := lengths[i-1]
			if i+rep > total {
				return nil, nil, ErrData
			}
			for j := 0; j < rep; j++ {
				lengths[i] = prev
				i++
			}
		case sym == 17:
			repBits, err := r.needBits(3)
			if err != nil {
				return nil, nil, ErrData
			}
			rep := int(repBits) + 3
			if i+rep > total {
				return nil, nil, ErrData
			}
			for j := 0; j < rep; j++ {
				lengths[i] = 0
				i++
			}
		case sym == 18:
			repBits, err := r.needBits(7)
			if err != nil {
				return nil, nil, ErrData
			}
			rep := int(repBits) + 11
			if i+rep > total {
				return nil, nil, ErrData
			}
			for j := 0; j < rep; j++ {
				lengths[i] = 0
				i++
			}
		default:
			return nil, nil, ErrData
		}
	}

	return buildHuffmanDecode(lengths[:hlit]), buildHuffmanDecode(lengths[hlit:]), nil
}
