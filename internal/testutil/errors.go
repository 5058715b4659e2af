// Package testutil provides testing utilities for seal.
//
// It should only be imported by test files (*_test.go).
package testutil

import "errors"

// Mock errors injected through failing readers in tests.
var (
	// ErrMockRead simulates a message source that fails mid-stream.
	ErrMockRead = errors.New("read failed")

	// ErrMockEntropy simulates an exhausted randomness source.
	ErrMockEntropy = errors.New("entropy exhausted")
)
