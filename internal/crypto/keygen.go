package crypto

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"sort"

	"github.com/mrz1836/seal/internal/constants"
	"github.com/mrz1836/seal/internal/crypto/native"
	"github.com/mrz1836/seal/internal/ctxutil"
	"github.com/mrz1836/seal/internal/errors"
	"github.com/mrz1836/seal/internal/genpass"
)

// KeyBundle maps a key file name to its raw key bytes.
type KeyBundle map[string][]byte

// Names returns the bundle's file names in sorted order.
func (b KeyBundle) Names() []string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PasswordFunc produces a password for the given options.
type PasswordFunc func(r io.Reader, opts genpass.Options) (string, error)

// Generator creates fresh key material. It never touches the filesystem.
type Generator struct {
	// Rand is the entropy source for seeds and passwords.
	Rand io.Reader
	// Password generates the BLAKE3 secret unless RawSymmetric is set.
	Password PasswordFunc
	// RawSymmetric makes BLAKE3 secrets plain random bytes instead of a password.
	RawSymmetric bool
}

// NewGenerator returns a Generator backed by crypto/rand and genpass.
func NewGenerator() *Generator {
	return &Generator{
		Rand:     rand.Reader,
		Password: genpass.GenerateFrom,
	}
}

// Generate creates key material for format.
//
// FormatBlake3 yields {"blake3.txt": secret}. FormatEd25519 yields
// {"ed25519.sk": seed, "ed25519.pk": public key}. Every entry is 32 bytes.
func (g *Generator) Generate(ctx context.Context, format Format) (KeyBundle, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	switch format {
	case FormatBlake3:
		secret, err := g.symmetric()
		if err != nil {
			return nil, err
		}
		return KeyBundle{constants.Blake3KeyFileName: secret}, nil

	case FormatEd25519:
		seed, err := native.GenerateSeed(g.Rand)
		if err != nil {
			return nil, err
		}
		pub := native.NewSigner(seed).PublicKey()
		return KeyBundle{
			constants.Ed25519SeedFileName:      seed[:],
			constants.Ed25519PublicKeyFileName: pub,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrFormatParse, format)
	}
}

func (g *Generator) symmetric() ([]byte, error) {
	if g.RawSymmetric {
		secret := make([]byte, constants.KeySize)
		if _, err := io.ReadFull(g.Rand, secret); err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrEntropySource, err)
		}
		return secret, nil
	}

	opts := genpass.DefaultOptions()
	opts.Length = constants.GeneratedPasswordLength
	password, err := g.Password(g.Rand, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate symmetric key")
	}
	if len(password) != constants.KeySize {
		return nil, errors.Wrapf(errors.ErrKeyFormat, "generated secret is %d bytes", len(password))
	}
	return []byte(password), nil
}
