// Package crypto provides the signing capability shared by seal's schemes.
//
// Two schemes sit behind the same interfaces: BLAKE3 in keyed-hash mode
// (package keyed) and Ed25519 (package native). Callers pick one with a
// Format tag and never touch scheme-specific types:
//
//	signer, err := crypto.LoadSigner(crypto.FormatEd25519, seedBytes)
//	sig, err := signer.Sign(ctx, os.Stdin)
//
// Signature size policy on Verify:
//   - FormatBlake3: a signature that is not 32 bytes verifies as false, nil.
//   - FormatEd25519: a signature that is not 64 bytes returns false and
//     errors.ErrSignatureFormat.
//
// Neither scheme logs or retries; every error goes back to the caller.
package crypto

import (
	"context"
	"io"
)

// Signer produces a signature over a message stream.
// Implementations drain r completely before computing the signature and
// must be deterministic: the same key and message give the same bytes.
type Signer interface {
	Sign(ctx context.Context, r io.Reader) ([]byte, error)
}

// Verifier checks a signature over a message stream.
// It reports a mismatch as false with a nil error; errors are reserved for
// unreadable input and, for Ed25519, malformed signatures.
type Verifier interface {
	Verify(ctx context.Context, r io.Reader, signature []byte) (bool, error)
}
