package testutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockErrors(t *testing.T) {
	assert.EqualError(t, ErrMockRead, "read failed")
	assert.EqualError(t, ErrMockEntropy, "entropy exhausted")
	assert.NotErrorIs(t, ErrMockRead, ErrMockEntropy)
}

func TestMockErrorsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to read message: %w", ErrMockRead)
	assert.ErrorIs(t, wrapped, ErrMockRead)
}
