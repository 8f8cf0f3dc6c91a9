package bbqr

// Assembler collects BBQr parts arriving in any order and reconstructs
// the original transfer once every index has been seen. It mirrors
// the reference multi-part recombination shape: parts may arrive
// out of order or be resubmitted (a duplicate of an already-seen
// index with identical payload is tolerated; a conflicting one is
// not), and progress can be polled mid-transfer for a status display.
type Assembler struct {
	encoding Encoding
	fileType FileType
	total    int
	started  bool

	parts map[int][]byte
}

// NewAssembler returns an empty Assembler ready to receive parts.
func NewAssembler() *Assembler {
	return &Assembler{parts: make(map[int][]byte)}
}

// Add ingests one part, validating it against the header fields of any
// parts already collected.
func (a *Assembler) Add(p Part) error {
	if !a.started {
		a.encoding = p.Encoding
		a.fileType = p.FileType
		a.total = p.Total
		a.started = true
	} else if p.Encoding != a.encoding || p.FileType != a.fileType || p.Total != a.total {
		return ErrInconsistent
	}

	if existing, ok := a.parts[p.Index]; ok {
		if string(existing) != string(p.Payload) {
			return ErrDuplicateIndex
		}
		return nil
	}
	a.parts[p.Index] = p.Payload
	return nil
}

// Progress reports how many distinct indices have been collected and
// how many the transfer expects in total. Total is 0 until the first
// part has been added.
func (a *Assembler) Progress() (have, total int) {
	return len(a.parts), a.total
}

// Complete reports whether every index in 0..total has been collected.
func (a *Assembler) Complete() bool {
	return a.started && len(a.parts) == a.total
}

// Assemble concatenates the collected payloads in index order and
// decodes the result per the transfer's encoding, returning
// ErrIncomplete if any index is still missing.
func (a *Assembler) Assemble() ([]byte, error) {
	if !a.Complete() {
		return nil, ErrIncomplete
	}

	var concatenated []byte
	for i := 0; i < a.total; i++ {
		concatenated = append(concatenated, a.parts[i]...)
	}
	return DecodePayload(a.encoding, concatenated)
}

// FileType returns the transfer's file type once at least one part has
// been added.
func (a *Assembler) FileType() FileType {
	return a.fileType
}
