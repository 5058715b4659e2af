package config

import (
	"github.com/mrz1836/seal/internal/constants"
	"github.com/mrz1836/seal/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - text.format must name a known scheme
//   - keygen.output_dir must not be empty
//   - genpass options must be able to produce a password
//   - base64.format must be "standard" or "urlsafe"
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if _, err := cfg.Text.Format.MarshalText(); err != nil {
		return errors.Wrapf(errors.ErrConfigInvalid, "text.format: %v", err)
	}

	if cfg.Keygen.OutputDir == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "keygen.output_dir must not be empty")
	}

	if err := cfg.Genpass.Validate(); err != nil {
		return errors.Wrapf(errors.ErrConfigInvalid, "genpass: %v", err)
	}

	switch cfg.Base64.Format {
	case constants.Base64Standard, constants.Base64URLSafe:
	default:
		return errors.Wrapf(errors.ErrConfigInvalid,
			"base64.format must be %q or %q, got %q",
			constants.Base64Standard, constants.Base64URLSafe, cfg.Base64.Format)
	}

	return nil
}
