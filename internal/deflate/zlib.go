package deflate

import (
	"encoding/binary"
	"hash/adler32"
)

// zlibHeader computes the CMF/FLG pair for a given window size: CMF
// encodes CM=8 (deflate) and CINFO=wbits-8; FLG is the smallest value
// with FDICT=0 and FLEVEL=0 that makes the 16-bit (CMF,FLG) pair a
// multiple of 31, per RFC 1950 section 2.2.
func zlibHeader(wbits int) (cmf, flg byte) {
	cmf = byte((wbits-8)<<4 | 8)
	for f := 0; f < 32; f++ {
		if (int(cmf)*256+f)%31 == 0 {
			return cmf, byte(f)
		}
	}
	return cmf, 0
}

// CompressZlib wraps a raw DEFLATE stream in the RFC 1950 zlib
// envelope: a two-byte header and a big-endian Adler-32 trailer over
// the uncompressed data.
func CompressZlib(data []byte, wbits int) ([]byte, error) {
	raw, err := CompressRaw(data, wbits)
	if err != nil {
		return nil, err
	}
	cmf, flg := zlibHeader(wbits)
	out := make([]byte, 0, 2+len(raw)+4)
	out = append(out, cmf, flg)
	out = append(out, raw...)
	var trailer [4]byte
	binary.BigEndian.PutUint32(trailer[:], adler32.Checksum(data))
	return append(out, trailer[:]...), nil
}

// DecompressZlib validates the zlib header and trailer and inflates
// the payload between them. FDICT streams are rejected: this codec
// never uses a preset dictionary.
func DecompressZlib(data []byte, maxOut int) ([]byte, error) {
	if len(data) < 6 {
		return nil, ErrData
	}
	cmf, flg := data[0], data[1]
	if (int(cmf)*256+int(flg))%31 != 0 {
		return nil, ErrData
	}
	if cmf&0x0F != 8 {
		return nil, ErrData
	}
	if flg&0x20 != 0 {
		return nil, ErrData
	}

	payload := data[2 : len(data)-4]
	out, err := InflateRaw(payload, maxOut)
	if err != nil {
		return nil, err
	}
	want := binary.BigEndian.Uint32(data[len(data)-4:])
	if adler32.Checksum(out) != want {
		return nil, ErrData
	}
	return out, nil
}

// DecompressAuto sniffs for a zlib header and falls back to raw
// DEFLATE when the header check fails, mirroring the transport
// decoder's leniency toward producers that forget the wrapper.
func DecompressAuto(data []byte, maxOut int) ([]byte, error) {
	if out, err := DecompressZlib(data, maxOut); err == nil {
		return out, nil
	}
	return InflateRaw(data, maxOut)
}
