// Package native provides Ed25519 signing backed by the circl implementation.
package native

import (
	"context"
	"fmt"
	"io"

	"filippo.io/edwards25519"
	"github.com/cloudflare/circl/sign/ed25519"

	"github.com/mrz1836/seal/internal/constants"
	"github.com/mrz1836/seal/internal/ctxutil"
	"github.com/mrz1836/seal/internal/errors"
)

// Signer implements crypto.Signer with a private key derived from a 32-byte seed.
type Signer struct {
	privKey ed25519.PrivateKey
}

// NewSigner derives the Ed25519 key pair for seed. Derivation is deterministic:
// the same seed always yields the same key pair.
func NewSigner(seed [constants.KeySize]byte) *Signer {
	return &Signer{privKey: ed25519.NewKeyFromSeed(seed[:])}
}

// PublicKey returns a copy of the 32-byte public key matching the seed.
func (s *Signer) PublicKey() []byte {
	pub := s.privKey.Public().(ed25519.PublicKey)
	return append([]byte(nil), pub...)
}

// Sign drains r and signs its contents. Ed25519 signing is deterministic,
// so the same seed and message always produce the same 64 bytes.
func (s *Signer) Sign(ctx context.Context, r io.Reader) ([]byte, error) {
	message, err := ctxutil.ReadAll(ctx, r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read message")
	}
	return ed25519.Sign(s.privKey, message), nil
}

// Verifier implements crypto.Verifier with a public key only.
type Verifier struct {
	pubKey ed25519.PublicKey
}

// NewVerifier checks that pub is a valid Edwards25519 point encoding and
// returns a Verifier for it.
func NewVerifier(pub [constants.KeySize]byte) (*Verifier, error) {
	if _, err := new(edwards25519.Point).SetBytes(pub[:]); err != nil {
		return nil, errors.Wrap(errors.ErrKeyFormat, "public key is not a valid curve point")
	}
	return &Verifier{pubKey: append(ed25519.PublicKey(nil), pub[:]...)}, nil
}

// Verify drains r and checks signature against the public key.
// A signature that is not exactly 64 bytes returns ErrSignatureFormat.
func (v *Verifier) Verify(ctx context.Context, r io.Reader, signature []byte) (bool, error) {
	message, err := ctxutil.ReadAll(ctx, r)
	if err != nil {
		return false, errors.Wrap(err, "failed to read message")
	}

	if len(signature) != constants.Ed25519SignatureSize {
		return false, errors.Wrapf(errors.ErrSignatureFormat, "expected %d bytes, got %d",
			constants.Ed25519SignatureSize, len(signature))
	}

	return ed25519.Verify(v.pubKey, message, signature), nil
}

// GenerateSeed draws a fresh private seed from rand.
// A short read from the random source returns ErrEntropySource.
func GenerateSeed(rand io.Reader) ([constants.KeySize]byte, error) {
	var seed [constants.KeySize]byte
	if _, err := io.ReadFull(rand, seed[:]); err != nil {
		return seed, fmt.Errorf("%w: %w", errors.ErrEntropySource, err)
	}
	return seed, nil
}
