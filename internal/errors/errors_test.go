package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sealerrors "github.com/mrz1836/seal/internal/errors"
)

// testError is a custom error type used to exercise the default branches
// in UserMessage and Actionable without matching any sentinel.
type testError struct {
	msg string
}

func (e testError) Error() string {
	return e.msg
}

func allSentinels() []error {
	return []error{
		sealerrors.ErrFormatParse,
		sealerrors.ErrKeyFormat,
		sealerrors.ErrSignatureFormat,
		sealerrors.ErrEntropySource,
		sealerrors.ErrPasswordTooShort,
		sealerrors.ErrNoCharacterClass,
		sealerrors.ErrFileNotFound,
		sealerrors.ErrKeyFileExists,
		sealerrors.ErrInvalidOutputFormat,
		sealerrors.ErrInvalidBase64Format,
		sealerrors.ErrInvalidArgument,
		sealerrors.ErrNonInteractiveMode,
		sealerrors.ErrOperationCanceled,
		sealerrors.ErrSignatureNotVerified,
		sealerrors.ErrConfigNil,
		sealerrors.ErrConfigInvalid,
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	all := allSentinels()
	for i, err1 := range all {
		for j, err2 := range all {
			if i == j {
				require.ErrorIs(t, err1, err2, "error should match itself")
			} else {
				assert.NotErrorIs(t, err1, err2, "different errors should not match")
			}
		}
	}
}

func TestSentinelErrors_Messages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrFormatParse", sealerrors.ErrFormatParse, "unrecognized signing format"},
		{"ErrKeyFormat", sealerrors.ErrKeyFormat, "invalid key material"},
		{"ErrSignatureFormat", sealerrors.ErrSignatureFormat, "invalid signature encoding"},
		{"ErrEntropySource", sealerrors.ErrEntropySource, "entropy source unavailable"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("preserves the error chain", func(t *testing.T) {
		wrapped := sealerrors.Wrap(sealerrors.ErrKeyFormat, "failed to load signing key")

		require.ErrorIs(t, wrapped, sealerrors.ErrKeyFormat)
		assert.Equal(t, "failed to load signing key: invalid key material", wrapped.Error())
	})

	t.Run("nil error stays nil", func(t *testing.T) {
		assert.NoError(t, sealerrors.Wrap(nil, "should not appear"))
	})

	t.Run("works through multiple levels", func(t *testing.T) {
		wrapped := sealerrors.Wrap(sealerrors.Wrap(sealerrors.ErrEntropySource, "first"), "second")

		require.ErrorIs(t, wrapped, sealerrors.ErrEntropySource)
		assert.Contains(t, wrapped.Error(), "first")
		assert.Contains(t, wrapped.Error(), "second")
	})
}

func TestWrapf(t *testing.T) {
	wrapped := sealerrors.Wrapf(sealerrors.ErrFileNotFound, "key file %s (attempt %d)", "key.txt", 1)

	require.ErrorIs(t, wrapped, sealerrors.ErrFileNotFound)
	assert.Equal(t, fmt.Sprintf("key file %s (attempt %d): %s", "key.txt", 1, sealerrors.ErrFileNotFound), wrapped.Error())
	assert.NoError(t, sealerrors.Wrapf(nil, "x %d", 1))
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"format parse", sealerrors.ErrFormatParse, "Unknown signing format"},
		{"key format", sealerrors.ErrKeyFormat, "valid key material"},
		{"wrapped key format", sealerrors.Wrap(sealerrors.ErrKeyFormat, "loading"), "valid key material"},
		{"signature format", sealerrors.ErrSignatureFormat, "could not be decoded"},
		{"unknown error", testError{msg: "something odd"}, "something odd"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, sealerrors.UserMessage(tc.err), tc.contains)
		})
	}

	assert.Empty(t, sealerrors.UserMessage(nil))
}

func TestActionable(t *testing.T) {
	t.Run("known error has an action", func(t *testing.T) {
		msg, action := sealerrors.Actionable(sealerrors.ErrKeyFileExists)
		assert.NotEmpty(t, msg)
		assert.Contains(t, action, "--force")
	})

	t.Run("entropy failure has no action", func(t *testing.T) {
		msg, action := sealerrors.Actionable(sealerrors.ErrEntropySource)
		assert.NotEmpty(t, msg)
		assert.Empty(t, action)
	})

	t.Run("unknown error keeps its message", func(t *testing.T) {
		msg, action := sealerrors.Actionable(testError{msg: "custom"})
		assert.Equal(t, "custom", msg)
		assert.Empty(t, action)
	})

	t.Run("nil error", func(t *testing.T) {
		msg, action := sealerrors.Actionable(nil)
		assert.Empty(t, msg)
		assert.Empty(t, action)
	})
}

func TestExitCode2Error(t *testing.T) {
	err := sealerrors.NewExitCode2Error(sealerrors.ErrFormatParse)

	assert.True(t, sealerrors.IsExitCode2Error(err))
	assert.True(t, sealerrors.IsExitCode2Error(fmt.Errorf("outer: %w", err)))
	assert.False(t, sealerrors.IsExitCode2Error(sealerrors.ErrFormatParse))
	require.ErrorIs(t, err, sealerrors.ErrFormatParse)
	assert.Equal(t, sealerrors.ErrFormatParse.Error(), err.Error())
}
