package config

import (
	"github.com/mrz1836/seal/internal/constants"
	"github.com/mrz1836/seal/internal/crypto"
	"github.com/mrz1836/seal/internal/genpass"
)

// DefaultOutputDir is where key files go when nothing else is configured.
const DefaultOutputDir = "."

// DefaultConfig returns a new Config with default values.
// These match the defaults registered on the Viper instance by setDefaults.
func DefaultConfig() *Config {
	return &Config{
		Text: TextConfig{
			Format: crypto.FormatBlake3,
			Strict: false,
		},
		Keygen: KeygenConfig{
			OutputDir:    DefaultOutputDir,
			RawSymmetric: false,
		},
		Genpass: genpass.DefaultOptions(),
		Base64: Base64Config{
			Format: constants.Base64Standard,
		},
	}
}
