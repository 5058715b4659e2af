// Package constants provides centralized constant values used throughout seal.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

// Key and signature sizes shared by the signing schemes.
const (
	// KeySize is the number of key bytes consumed by every scheme.
	// Longer key material is truncated to this size; shorter material is rejected.
	KeySize = 32

	// Blake3SignatureSize is the size of a BLAKE3 keyed-hash signature.
	Blake3SignatureSize = 32

	// Ed25519SignatureSize is the size of an Ed25519 signature.
	Ed25519SignatureSize = 64

	// GeneratedPasswordLength is the length of the password used as a BLAKE3 secret.
	GeneratedPasswordLength = KeySize
)

// Generated key file names. Each entry of a generated key bundle is written
// verbatim to a file with exactly this name inside the output directory.
const (
	// Blake3KeyFileName holds the 32-byte BLAKE3 shared secret.
	Blake3KeyFileName = "blake3.txt"

	// Ed25519SeedFileName holds the 32-byte Ed25519 private seed.
	Ed25519SeedFileName = "ed25519.sk"

	// Ed25519PublicKeyFileName holds the 32-byte Ed25519 public key.
	Ed25519PublicKeyFileName = "ed25519.pk"
)

// Format tags as they appear on the command line and in config files.
const (
	// FormatBlake3 selects the BLAKE3 keyed-hash scheme.
	FormatBlake3 = "blake3"

	// FormatEd25519 selects the Ed25519 signature scheme.
	FormatEd25519 = "ed25519"
)

// Base64 variants accepted by the base64 commands.
const (
	// Base64Standard is standard base64 with padding.
	Base64Standard = "standard"

	// Base64URLSafe is URL-safe base64 without padding.
	Base64URLSafe = "urlsafe"
)

// StdinPath is the input path token that means "read from standard input".
const StdinPath = "-"

// Password generator defaults.
const (
	// DefaultPasswordLength is the default length for `seal genpass`.
	DefaultPasswordLength = 16

	// MaxPasswordLength bounds generated passwords.
	MaxPasswordLength = 255
)

// File permissions.
const (
	// KeyFileMode is the permission used for generated key files.
	KeyFileMode = 0o600

	// KeyDirMode is the permission used when creating the key output directory.
	KeyDirMode = 0o700

	// LogDirMode is the permission used when creating the log directory.
	LogDirMode = 0o750
)

// Output formats for the --output flag.
const (
	// OutputFormatText is styled, human-readable output.
	OutputFormatText = "text"

	// OutputFormatJSON is machine-readable JSON output.
	OutputFormatJSON = "json"
)
