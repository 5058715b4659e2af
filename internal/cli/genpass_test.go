package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/seal/internal/errors"
	"github.com/mrz1836/seal/internal/genpass"
)

func TestGenpass_Default(t *testing.T) {
	out, stderr, err := runSeal(t, "", "genpass")
	require.NoError(t, err)

	pw := strings.TrimSpace(out)
	assert.Len(t, pw, 16)
	assert.Contains(t, stderr, "Password strength:")
}

func TestGenpass_Options(t *testing.T) {
	out, _, err := runSeal(t, "", "genpass", "-l", "40", "--no-symbol", "--no-upper")
	require.NoError(t, err)

	pw := strings.TrimSpace(out)
	assert.Len(t, pw, 40)
	assert.False(t, strings.ContainsAny(pw, genpass.Symbol+genpass.Upper))
	assert.True(t, strings.ContainsAny(pw, genpass.Lower))
	assert.True(t, strings.ContainsAny(pw, genpass.Number))
}

func TestGenpass_JSON(t *testing.T) {
	out, _, err := runSeal(t, "", "genpass", "-l", "24", "--output", "json")
	require.NoError(t, err)

	var got genpassResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Password, 24)
	assert.GreaterOrEqual(t, got.Strength, 0)
	assert.LessOrEqual(t, got.Strength, 4)
}

func TestGenpass_Errors(t *testing.T) {
	_, _, err := runSeal(t, "", "genpass", "-l", "2")
	require.ErrorIs(t, err, errors.ErrPasswordTooShort)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))

	_, _, err = runSeal(t, "", "genpass", "--no-upper", "--no-lower", "--no-number", "--no-symbol")
	require.ErrorIs(t, err, errors.ErrNoCharacterClass)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}
