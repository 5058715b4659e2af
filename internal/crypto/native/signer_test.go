package native

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/seal/internal/constants"
	sealerrors "github.com/mrz1836/seal/internal/errors"
	"github.com/mrz1836/seal/internal/testutil"
)

func mustDecode32(t *testing.T, s string) [constants.KeySize]byte {
	t.Helper()
	raw, err := hex.DecodeString(s)
	require.NoError(t, err)
	require.Len(t, raw, constants.KeySize)
	var out [constants.KeySize]byte
	copy(out[:], raw)
	return out
}

func newSeed(t *testing.T) [constants.KeySize]byte {
	t.Helper()
	seed, err := GenerateSeed(rand.Reader)
	require.NoError(t, err)
	return seed
}

// TestSigner_RFC8032 checks test vector 1 from RFC 8032 section 7.1.
func TestSigner_RFC8032(t *testing.T) {
	seed := mustDecode32(t, "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")
	const (
		publicKey = "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"
		signature = "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b"
	)

	s := NewSigner(seed)
	assert.Equal(t, publicKey, hex.EncodeToString(s.PublicKey()))

	sig, err := s.Sign(context.Background(), bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Equal(t, signature, hex.EncodeToString(sig))
}

func TestNewSigner(t *testing.T) {
	t.Run("derivation is deterministic", func(t *testing.T) {
		seed := newSeed(t)
		assert.Equal(t, NewSigner(seed).PublicKey(), NewSigner(seed).PublicKey())
	})

	t.Run("PublicKey returns a copy", func(t *testing.T) {
		s := NewSigner(newSeed(t))
		pub := s.PublicKey()
		pub[0] ^= 0xff
		assert.NotEqual(t, pub, s.PublicKey())
	})
}

func TestSigner_Sign(t *testing.T) {
	ctx := context.Background()
	s := NewSigner(newSeed(t))

	t.Run("produces 64-byte signatures", func(t *testing.T) {
		sig, err := s.Sign(ctx, strings.NewReader("hello world"))
		require.NoError(t, err)
		assert.Len(t, sig, constants.Ed25519SignatureSize)
	})

	t.Run("is deterministic", func(t *testing.T) {
		a, err := s.Sign(ctx, strings.NewReader("hello world"))
		require.NoError(t, err)
		b, err := s.Sign(ctx, strings.NewReader("hello world"))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("read error is returned", func(t *testing.T) {
		_, err := s.Sign(ctx, iotest.ErrReader(testutil.ErrMockEntropy))
		require.ErrorIs(t, err, testutil.ErrMockEntropy)
	})
}

func TestNewVerifier(t *testing.T) {
	t.Run("accepts a derived public key", func(t *testing.T) {
		var pub [constants.KeySize]byte
		copy(pub[:], NewSigner(newSeed(t)).PublicKey())

		v, err := NewVerifier(pub)
		require.NoError(t, err)
		assert.NotNil(t, v)
	})

	t.Run("rejects an encoding that is not a curve point", func(t *testing.T) {
		// y = 2 has no matching x on edwards25519.
		var pub [constants.KeySize]byte
		pub[0] = 0x02

		v, err := NewVerifier(pub)
		require.ErrorIs(t, err, sealerrors.ErrKeyFormat)
		assert.Nil(t, v)
	})
}

func TestVerifier_Verify(t *testing.T) {
	ctx := context.Background()
	signer := NewSigner(newSeed(t))
	var pub [constants.KeySize]byte
	copy(pub[:], signer.PublicKey())
	verifier, err := NewVerifier(pub)
	require.NoError(t, err)

	sig, err := signer.Sign(ctx, strings.NewReader("attack at dawn"))
	require.NoError(t, err)

	t.Run("accepts a matching signature", func(t *testing.T) {
		ok, err := verifier.Verify(ctx, strings.NewReader("attack at dawn"), sig)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("rejects a tampered message", func(t *testing.T) {
		ok, err := verifier.Verify(ctx, strings.NewReader("attack at dusk"), sig)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("rejects an unrelated public key", func(t *testing.T) {
		var other [constants.KeySize]byte
		copy(other[:], NewSigner(newSeed(t)).PublicKey())
		otherVerifier, err := NewVerifier(other)
		require.NoError(t, err)

		ok, err := otherVerifier.Verify(ctx, strings.NewReader("attack at dawn"), sig)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("rejects every single bit flip", func(t *testing.T) {
		for i := 0; i < len(sig)*8; i++ {
			flipped := append([]byte(nil), sig...)
			flipped[i/8] ^= 1 << (i % 8)

			ok, err := verifier.Verify(ctx, strings.NewReader("attack at dawn"), flipped)
			require.NoError(t, err)
			require.False(t, ok, "bit %d flip should not verify", i)
		}
	})

	t.Run("wrong-size signatures are format errors", func(t *testing.T) {
		for _, bad := range [][]byte{nil, sig[:32], sig[:63], append(append([]byte(nil), sig...), 0)} {
			ok, err := verifier.Verify(ctx, strings.NewReader("attack at dawn"), bad)
			require.ErrorIs(t, err, sealerrors.ErrSignatureFormat, "len %d", len(bad))
			assert.False(t, ok)
		}
	})

	t.Run("concurrent verification over independent readers", func(t *testing.T) {
		var wg sync.WaitGroup
		results := make([]bool, 16)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				ok, verr := verifier.Verify(ctx, strings.NewReader("attack at dawn"), sig)
				results[i] = ok && verr == nil
			}(i)
		}
		wg.Wait()
		for i, ok := range results {
			assert.True(t, ok, "goroutine %d", i)
		}
	})
}

func TestGenerateSeed(t *testing.T) {
	t.Run("draws fresh seeds", func(t *testing.T) {
		a := newSeed(t)
		b := newSeed(t)
		assert.NotEqual(t, a, b)
	})

	t.Run("uses the supplied reader", func(t *testing.T) {
		src := bytes.Repeat([]byte{0xab}, constants.KeySize)
		seed, err := GenerateSeed(bytes.NewReader(src))
		require.NoError(t, err)
		assert.Equal(t, src, seed[:])
	})

	t.Run("short read is an entropy error", func(t *testing.T) {
		_, err := GenerateSeed(bytes.NewReader(make([]byte, 10)))
		require.ErrorIs(t, err, sealerrors.ErrEntropySource)
	})

	t.Run("reader failure is an entropy error", func(t *testing.T) {
		_, err := GenerateSeed(iotest.ErrReader(testutil.ErrMockEntropy))
		require.ErrorIs(t, err, sealerrors.ErrEntropySource)
		require.ErrorIs(t, err, testutil.ErrMockEntropy)
	})
}
