package genpass

import (
	"bytes"
	"crypto/rand"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/seal/internal/errors"
	"github.com/mrz1836/seal/internal/testutil"
)

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	assert.Equal(t, 16, opts.Length)
	assert.True(t, opts.Upper)
	assert.True(t, opts.Lower)
	assert.True(t, opts.Number)
	assert.True(t, opts.Symbol)
}

func TestGenerate_LengthAndClasses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
		sets []string
	}{
		{"all classes", Options{Length: 32, Upper: true, Lower: true, Number: true, Symbol: true}, []string{Upper, Lower, Number, Symbol}},
		{"minimum length", Options{Length: 4, Upper: true, Lower: true, Number: true, Symbol: true}, []string{Upper, Lower, Number, Symbol}},
		{"digits only", Options{Length: 8, Number: true}, []string{Number}},
		{"letters", Options{Length: 12, Upper: true, Lower: true}, []string{Upper, Lower}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for range 20 {
				pw, err := Generate(tt.opts)
				require.NoError(t, err)
				assert.Len(t, pw, tt.opts.Length)

				union := strings.Join(tt.sets, "")
				for _, c := range pw {
					assert.Contains(t, union, string(c))
				}
				for _, set := range tt.sets {
					assert.True(t, strings.ContainsAny(pw, set), "missing class %q in %q", set, pw)
				}
			}
		})
	}
}

func TestGenerate_ExcludesAmbiguousGlyphs(t *testing.T) {
	t.Parallel()

	pw, err := Generate(Options{Length: 200, Upper: true, Lower: true, Number: true})
	require.NoError(t, err)
	assert.False(t, strings.ContainsAny(pw, "IOl0"))
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	_, err := Generate(Options{Length: 16})
	require.ErrorIs(t, err, errors.ErrNoCharacterClass)

	_, err = Generate(Options{Length: 3, Upper: true, Lower: true, Number: true, Symbol: true})
	require.ErrorIs(t, err, errors.ErrPasswordTooShort)

	_, err = Generate(Options{Length: 256, Lower: true})
	require.ErrorIs(t, err, errors.ErrInvalidArgument)
}

func TestGenerateFrom_EntropyFailure(t *testing.T) {
	t.Parallel()

	_, err := GenerateFrom(iotest.ErrReader(testutil.ErrMockEntropy), DefaultOptions())
	require.ErrorIs(t, err, errors.ErrEntropySource)
	require.ErrorIs(t, err, testutil.ErrMockEntropy)

	_, err = GenerateFrom(bytes.NewReader(nil), DefaultOptions())
	require.ErrorIs(t, err, errors.ErrEntropySource)
}

func TestGenerateFrom_Varies(t *testing.T) {
	t.Parallel()

	a, err := GenerateFrom(rand.Reader, DefaultOptions())
	require.NoError(t, err)
	b, err := GenerateFrom(rand.Reader, DefaultOptions())
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestStrength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Strength("password"))
	assert.Equal(t, 4, Strength("hJ7#kq9$Wm2!xZ4&pR6*"))

	score := Strength("abc")
	assert.GreaterOrEqual(t, score, 0)
	assert.LessOrEqual(t, score, 4)
}
