package ctxutil_test

import (
	"context"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/seal/internal/ctxutil"
	"github.com/mrz1836/seal/internal/testutil"
)

func TestCanceled(t *testing.T) {
	t.Parallel()

	t.Run("returns nil for active context", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, ctxutil.Canceled(context.Background()))
	})

	t.Run("returns error for canceled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, ctxutil.Canceled(ctx), context.Canceled)
	})

	t.Run("returns error for deadline exceeded", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithTimeout(context.Background(), 0)
		defer cancel()
		<-ctx.Done()
		assert.ErrorIs(t, ctxutil.Canceled(ctx), context.DeadlineExceeded)
	})
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	t.Run("drains the whole reader", func(t *testing.T) {
		t.Parallel()
		data, err := ctxutil.ReadAll(context.Background(), iotest.OneByteReader(strings.NewReader("hello world")))
		require.NoError(t, err)
		assert.Equal(t, []byte("hello world"), data)
	})

	t.Run("empty reader yields empty buffer", func(t *testing.T) {
		t.Parallel()
		data, err := ctxutil.ReadAll(context.Background(), strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("canceled context does not read", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		r := strings.NewReader("untouched")
		_, err := ctxutil.ReadAll(ctx, r)
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 9, r.Len(), "reader should not have been consumed")
	})

	t.Run("read errors propagate", func(t *testing.T) {
		t.Parallel()
		_, err := ctxutil.ReadAll(context.Background(), iotest.ErrReader(testutil.ErrMockRead))
		assert.ErrorIs(t, err, testutil.ErrMockRead)
	})
}
