// Package kef implements the Key Encryption Format: a versioned,
// authenticated encryption envelope used to protect secrets at rest.
//
// This is AUDIT-CRITICAL code - changes here directly affect on-disk and
// on-wire format compatibility with external wallet coordinators.
package kef

// Mode selects the AES-256 cipher mode a version row uses.
type Mode int

const (
	ModeECB Mode = iota
	ModeCBC
	ModeCTR
	ModeGCM
)

func (m Mode) String() string {
	switch m {
	case ModeECB:
		return "ECB"
	case ModeCBC:
		return "CBC"
	case ModeCTR:
		return "CTR"
	case ModeGCM:
		return "GCM"
	default:
		return "unknown"
	}
}

// Padding selects how the working buffer is padded before encryption.
type Padding int

const (
	PaddingNulZero Padding = iota
	PaddingPkcs7
	PaddingNone
)

func (p Padding) String() string {
	switch p {
	case PaddingNulZero:
		return "NulZero"
	case PaddingPkcs7:
		return "Pkcs7"
	case PaddingNone:
		return "None"
	default:
		return "unknown"
	}
}

// AuthType selects where the authentication trailer lives.
type AuthType int

const (
	// AuthHidden is a truncated SHA-256 of the plaintext (after
	// compression, on compressing rows) appended inside the padded
	// region, and therefore encrypted along with it.
	AuthHidden AuthType = iota
	// AuthExposed is a truncated SHA-256 of (version, iv, plaintext, key)
	// appended outside the ciphertext, in cleartext.
	AuthExposed
	// AuthGCM is the AES-GCM tag, truncated to the row's AuthSize.
	AuthGCM
)

func (a AuthType) String() string {
	switch a {
	case AuthHidden:
		return "Hidden"
	case AuthExposed:
		return "Exposed"
	case AuthGCM:
		return "GCM"
	default:
		return "unknown"
	}
}

// Row describes one registered KEF version: its cipher mode, IV size,
// padding rule, compression flag, authentication style, and auth trailer
// size. The zero Row is never valid; rows are only ever obtained via
// Lookup against the static Versions table.
type Row struct {
	Version  byte
	Mode     Mode
	IVSize   int
	Padding  Padding
	Compress bool
	AuthType AuthType
	AuthSize int
}

// HasExposedTrailer reports whether this row appends an authentication
// trailer outside the ciphertext (Exposed or GCM tag).
func (r Row) HasExposedTrailer() bool {
	return r.AuthType == AuthExposed || r.AuthType == AuthGCM
}

// MinCiphertextLen is the smallest possible ciphertext region for this
// row's mode: one full AES block for ECB/CBC, one byte for stream modes.
func (r Row) MinCiphertextLen() int {
	if r.Mode == ModeECB || r.Mode == ModeCBC {
		return 16
	}
	return 1
}

// Versions is the static, read-only catalog of KEF version rows. It may
// be treated as immutable for the lifetime of the process; the core
// never mutates it.
var Versions = [...]Row{
	{Version: 0, Mode: ModeECB, IVSize: 0, Padding: PaddingNulZero, Compress: false, AuthType: AuthHidden, AuthSize: 16},
	{Version: 1, Mode: ModeCBC, IVSize: 16, Padding: PaddingNulZero, Compress: false, AuthType: AuthHidden, AuthSize: 16},
	{Version: 5, Mode: ModeECB, IVSize: 0, Padding: PaddingNulZero, Compress: false, AuthType: AuthExposed, AuthSize: 3},
	{Version: 6, Mode: ModeECB, IVSize: 0, Padding: PaddingPkcs7, Compress: false, AuthType: AuthHidden, AuthSize: 4},
	{Version: 7, Mode: ModeECB, IVSize: 0, Padding: PaddingPkcs7, Compress: true, AuthType: AuthHidden, AuthSize: 4},
	{Version: 10, Mode: ModeCBC, IVSize: 16, Padding: PaddingNulZero, Compress: false, AuthType: AuthExposed, AuthSize: 4},
	{Version: 11, Mode: ModeCBC, IVSize: 16, Padding: PaddingPkcs7, Compress: false, AuthType: AuthHidden, AuthSize: 4},
	{Version: 12, Mode: ModeCBC, IVSize: 16, Padding: PaddingPkcs7, Compress: true, AuthType: AuthHidden, AuthSize: 4},
	{Version: 15, Mode: ModeCTR, IVSize: 12, Padding: PaddingNone, Compress: false, AuthType: AuthHidden, AuthSize: 4},
	{Version: 16, Mode: ModeCTR, IVSize: 12, Padding: PaddingNone, Compress: true, AuthType: AuthHidden, AuthSize: 4},
	{Version: 20, Mode: ModeGCM, IVSize: 12, Padding: PaddingNone, Compress: false, AuthType: AuthGCM, AuthSize: 4},
	{Version: 21, Mode: ModeGCM, IVSize: 12, Padding: PaddingNone, Compress: true, AuthType: AuthGCM, AuthSize: 4},
}

// Lookup finds the registered row for a version byte.
func Lookup(version byte) (Row, bool) {
	for _, r := range Versions {
		if r.Version == version {
			return r, true
		}
	}
	return Row{}, false
}
