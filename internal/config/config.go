// Package config provides configuration management for seal with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (applied by the commands that own them)
//  2. Environment variables (SEAL_* prefix)
//  3. Project config (.seal/config.yaml)
//  4. Global config (~/.seal/config.yaml)
//  5. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants, internal/errors and the
// value types of internal/crypto and internal/genpass, but MUST NOT import
// internal/cli or internal/tui.
package config

import (
	"github.com/mrz1836/seal/internal/crypto"
	"github.com/mrz1836/seal/internal/genpass"
)

// Config is the root configuration structure for seal.
type Config struct {
	// Text contains settings for the sign and verify commands.
	Text TextConfig `yaml:"text" mapstructure:"text" json:"text"`

	// Keygen contains settings for key generation.
	Keygen KeygenConfig `yaml:"keygen" mapstructure:"keygen" json:"keygen"`

	// Genpass contains the default password generator options.
	Genpass genpass.Options `yaml:"genpass" mapstructure:"genpass" json:"genpass"`

	// Base64 contains settings for the base64 commands.
	Base64 Base64Config `yaml:"base64" mapstructure:"base64" json:"base64"`
}

// TextConfig contains settings for signing and verification.
type TextConfig struct {
	// Format is the signing scheme used when --format is not given.
	// Default: blake3
	Format crypto.Format `yaml:"format" mapstructure:"format" json:"format"`

	// Strict makes a failed verification exit with a non-zero code.
	// Default: false
	Strict bool `yaml:"strict" mapstructure:"strict" json:"strict"`
}

// KeygenConfig contains settings for key generation.
type KeygenConfig struct {
	// OutputDir is where generated key files are written.
	// Default: "." (the current directory)
	OutputDir string `yaml:"output_dir" mapstructure:"output_dir" json:"output_dir"`

	// RawSymmetric generates BLAKE3 secrets as 32 random bytes instead of a
	// 32 character password.
	// Default: false
	RawSymmetric bool `yaml:"raw_symmetric" mapstructure:"raw_symmetric" json:"raw_symmetric"`
}

// Base64Config contains settings for the base64 commands.
type Base64Config struct {
	// Format is the alphabet: "standard" or "urlsafe".
	// Default: standard
	Format string `yaml:"format" mapstructure:"format" json:"format"`
}
