package bbqr

// Encoding is a BBQr part's payload encoding character.
type Encoding byte

const (
	EncodingHex        Encoding = 'H'
	EncodingBase32     Encoding = '2'
	EncodingCompressed Encoding = 'Z'
)

func (e Encoding) valid() bool {
	return e == EncodingHex || e == EncodingBase32 || e == EncodingCompressed
}

// FileType is a BBQr part's file type character.
type FileType byte

const (
	FileTypePSBT        FileType = 'P'
	FileTypeTransaction FileType = 'T'
	FileTypeJSON        FileType = 'J'
	FileTypeUnicodeText FileType = 'U'
)

func (f FileType) valid() bool {
	switch f {
	case FileTypePSBT, FileTypeTransaction, FileTypeJSON, FileTypeUnicodeText:
		return true
	default:
		return false
	}
}

const (
	headerLen = 8
	magic     = "B$"
	maxTotal  = 1295
)

// Part is one parsed BBQr frame: its header fields and the raw
// (still-encoded) payload bytes that follow the header.
type Part struct {
	Encoding Encoding
	FileType FileType
	Total    int
	Index    int
	Payload  []byte
}

// ParsePart validates an 8-byte BBQr header and returns the part
// it describes, with Payload borrowing the remainder of data.
func ParsePart(data []byte) (Part, error) {
	if len(data) < headerLen || string(data[0:2]) != magic {
		return Part{}, ErrBadHeader
	}
	enc := Encoding(toUpper(data[2]))
	if !enc.valid() {
		return Part{}, ErrBadEncoding
	}
	ft := FileType(toUpper(data[3]))
	if !ft.valid() {
		return Part{}, ErrBadFileType
	}
	total, err := decodeBase36Pair(data[4], data[5])
	if err != nil {
		return Part{}, err
	}
	index, err := decodeBase36Pair(data[6], data[7])
	if err != nil {
		return Part{}, err
	}
	if total < 1 || total > maxTotal || index < 0 || index >= total {
		return Part{}, ErrBadBase36
	}
	return Part{
		Encoding: enc,
		FileType: ft,
		Total:    total,
		Index:    index,
		Payload:  data[headerLen:],
	}, nil
}

// EncodeHeader renders a part's header fields back to the 8-byte ASCII
// form (without the trailing payload).
func EncodeHeader(enc Encoding, ft FileType, total, index int) []byte {
	hdr := make([]byte, headerLen)
	hdr[0], hdr[1] = 'B', '$'
	hdr[2] = byte(enc)
	hdr[3] = byte(ft)
	hi, lo := encodeBase36Pair(total)
	hdr[4], hdr[5] = hi, lo
	hi, lo = encodeBase36Pair(index)
	hdr[6], hdr[7] = hi, lo
	return hdr
}
