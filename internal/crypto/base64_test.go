package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64URL(t *testing.T) {
	t.Parallel()

	data := []byte{0xfb, 0xff, 0xfe, 0x00, 0x01}

	encoded := ToBase64URL(data)
	assert.Equal(t, "-__-AAE", encoded)
	assert.NotContains(t, encoded, "=")

	decoded, err := FromBase64URL(encoded + "\n")
	require.NoError(t, err)
	assert.Equal(t, data, decoded)

	_, err = FromBase64URL("+//+AAE=")
	require.Error(t, err)
}

func TestBase64Standard(t *testing.T) {
	t.Parallel()

	data := []byte{0xfb, 0xff, 0xfe, 0x00, 0x01}

	encoded := ToBase64(data)
	assert.Equal(t, "+//+AAE=", encoded)

	decoded, err := FromBase64("  " + encoded + "\r\n")
	require.NoError(t, err)
	assert.Equal(t, data, decoded)

	_, err = FromBase64("-__-AAE")
	require.Error(t, err)
}
