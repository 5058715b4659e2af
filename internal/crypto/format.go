package crypto

import (
	"fmt"

	"github.com/mrz1836/seal/internal/constants"
	"github.com/mrz1836/seal/internal/errors"
)

// Format selects a signing scheme.
type Format int

const (
	// FormatBlake3 is the BLAKE3 keyed-hash scheme. It is the zero value and default.
	FormatBlake3 Format = iota
	// FormatEd25519 is the Ed25519 signature scheme.
	FormatEd25519
)

// Formats returns every supported format in display order.
func Formats() []Format {
	return []Format{FormatBlake3, FormatEd25519}
}

// ParseFormat converts canonical text into a Format.
// Matching is exact and case-sensitive.
func ParseFormat(s string) (Format, error) {
	switch s {
	case constants.FormatBlake3:
		return FormatBlake3, nil
	case constants.FormatEd25519:
		return FormatEd25519, nil
	default:
		return 0, fmt.Errorf("%w: %q (want %s or %s)", errors.ErrFormatParse, s,
			constants.FormatBlake3, constants.FormatEd25519)
	}
}

// String returns the canonical lowercase name.
func (f Format) String() string {
	switch f {
	case FormatBlake3:
		return constants.FormatBlake3
	case FormatEd25519:
		return constants.FormatEd25519
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// SignatureSize returns the number of bytes a signature of this format has,
// or 0 for an unknown format.
func (f Format) SignatureSize() int {
	switch f {
	case FormatBlake3:
		return constants.Blake3SignatureSize
	case FormatEd25519:
		return constants.Ed25519SignatureSize
	default:
		return 0
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	if f != FormatBlake3 && f != FormatEd25519 {
		return nil, fmt.Errorf("%w: %d", errors.ErrFormatParse, int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Set implements pflag.Value so a Format can back a command-line flag.
func (f *Format) Set(s string) error {
	return f.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}
