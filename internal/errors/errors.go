// Package errors provides centralized error handling for seal.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrFormatParse indicates that a scheme tag was not one of the known formats.
	ErrFormatParse = errors.New("unrecognized signing format")

	// ErrKeyFormat indicates that key material was shorter than 32 bytes, or that
	// a public key was not a valid curve point encoding.
	ErrKeyFormat = errors.New("invalid key material")

	// ErrSignatureFormat indicates that signature bytes had the wrong length or
	// could not be decoded.
	ErrSignatureFormat = errors.New("invalid signature encoding")

	// ErrEntropySource indicates that the secure random source could not supply
	// the requested bytes.
	ErrEntropySource = errors.New("entropy source unavailable")

	// ErrPasswordTooShort indicates that the requested password length cannot hold
	// one character from every enabled character class.
	ErrPasswordTooShort = errors.New("password length is too short")

	// ErrNoCharacterClass indicates that every character class was disabled.
	ErrNoCharacterClass = errors.New("no character class enabled")

	// ErrFileNotFound indicates that an input or key file does not exist.
	ErrFileNotFound = errors.New("file does not exist")

	// ErrKeyFileExists indicates that key generation would overwrite an existing file.
	ErrKeyFileExists = errors.New("key file already exists")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrInvalidBase64Format indicates an unknown base64 variant was specified.
	ErrInvalidBase64Format = errors.New("invalid base64 format")

	// ErrInvalidArgument indicates that an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNonInteractiveMode indicates that an operation requiring confirmation
	// was attempted in non-interactive mode without the force flag.
	ErrNonInteractiveMode = errors.New("use --force in non-interactive mode")

	// ErrOperationCanceled indicates the user canceled an operation.
	ErrOperationCanceled = errors.New("operation canceled by user")

	// ErrSignatureNotVerified indicates that verification ran and the signature did
	// not match. Only returned by the CLI in strict mode; the core reports a bool.
	ErrSignatureNotVerified = errors.New("signature not verified")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalid indicates that a configuration value is out of range or unknown.
	ErrConfigInvalid = errors.New("invalid configuration")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
