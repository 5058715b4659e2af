// Package ctxutil provides context utility functions.
package ctxutil

import (
	"context"
	"io"
)

// Canceled checks if the context has been canceled or exceeded its deadline.
// Returns the context error if done (Canceled or DeadlineExceeded), nil otherwise.
func Canceled(ctx context.Context) error {
	return ctx.Err()
}

// ReadAll drains r into memory after checking ctx for cancellation.
// The context is only checked once, before the first read.
func ReadAll(ctx context.Context, r io.Reader) ([]byte, error) {
	if err := Canceled(ctx); err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}
