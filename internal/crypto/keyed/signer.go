// Package keyed provides message authentication with BLAKE3 in keyed-hash mode.
// The same 32-byte secret both produces and checks a signature.
package keyed

import (
	"context"
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/zeebo/blake3"

	"github.com/mrz1836/seal/internal/constants"
	"github.com/mrz1836/seal/internal/ctxutil"
	"github.com/mrz1836/seal/internal/errors"
)

// Signer signs and verifies messages with a shared BLAKE3 secret.
// It implements both crypto.Signer and crypto.Verifier.
type Signer struct {
	key [constants.KeySize]byte
}

// New creates a Signer for the given secret. The key array is copied.
func New(key [constants.KeySize]byte) *Signer {
	return &Signer{key: key}
}

// Sign drains r and returns the 32-byte keyed hash of its contents.
// The result is deterministic for a given key and message.
func (s *Signer) Sign(ctx context.Context, r io.Reader) ([]byte, error) {
	message, err := ctxutil.ReadAll(ctx, r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read message")
	}
	return s.digest(message)
}

// Verify drains r, recomputes the keyed hash and compares it with signature.
// A signature that is not exactly 32 bytes is reported as false without an
// error; errors are only returned when the message cannot be read.
func (s *Signer) Verify(ctx context.Context, r io.Reader, signature []byte) (bool, error) {
	message, err := ctxutil.ReadAll(ctx, r)
	if err != nil {
		return false, errors.Wrap(err, "failed to read message")
	}

	if len(signature) != constants.Blake3SignatureSize {
		return false, nil
	}

	expected, err := s.digest(message)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(expected, signature) == 1, nil
}

func (s *Signer) digest(message []byte) ([]byte, error) {
	h, err := blake3.NewKeyed(s.key[:])
	if err != nil {
		// NewKeyed only rejects keys that are not 32 bytes.
		return nil, fmt.Errorf("%w: %w", errors.ErrKeyFormat, err)
	}
	_, _ = h.Write(message)
	return h.Sum(nil), nil
}
