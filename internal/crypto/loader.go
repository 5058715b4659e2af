package crypto

import (
	"fmt"

	"github.com/mrz1836/seal/internal/constants"
	"github.com/mrz1836/seal/internal/crypto/keyed"
	"github.com/mrz1836/seal/internal/crypto/native"
	"github.com/mrz1836/seal/internal/errors"
)

// LoadSigner builds the signing key for format from raw key material.
// For FormatBlake3 the material is the shared secret; for FormatEd25519 it is
// the private seed.
//
//nolint:ireturn // the format tag decides the concrete scheme
func LoadSigner(format Format, key []byte) (Signer, error) {
	material, err := keyBytes(key)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatBlake3:
		return keyed.New(material), nil
	case FormatEd25519:
		return native.NewSigner(material), nil
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrFormatParse, format)
	}
}

// LoadVerifier builds the verification key for format from raw key material.
// For FormatBlake3 the material is the shared secret; for FormatEd25519 it is
// the public key and must be a valid curve point.
//
//nolint:ireturn // the format tag decides the concrete scheme
func LoadVerifier(format Format, key []byte) (Verifier, error) {
	material, err := keyBytes(key)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatBlake3:
		return keyed.New(material), nil
	case FormatEd25519:
		v, err := native.NewVerifier(material)
		if err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrFormatParse, format)
	}
}

// keyBytes applies the key length contract shared by every scheme: the first
// KeySize bytes are used, anything after them is ignored, and shorter input
// is rejected.
func keyBytes(key []byte) ([constants.KeySize]byte, error) {
	var material [constants.KeySize]byte
	if len(key) < constants.KeySize {
		return material, fmt.Errorf("%w: need %d bytes, got %d", errors.ErrKeyFormat, constants.KeySize, len(key))
	}
	copy(material[:], key[:constants.KeySize])
	return material, nil
}
