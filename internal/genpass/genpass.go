// Package genpass generates random passwords from unambiguous character sets.
package genpass

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/nbutton23/zxcvbn-go"

	"github.com/mrz1836/seal/internal/constants"
	"github.com/mrz1836/seal/internal/errors"
)

// Character classes. Glyphs that are easy to confuse (I, O, l, 0) are left out.
const (
	Upper  = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	Lower  = "abcdefghijkmnopqrstuvwxyz"
	Number = "123456789"
	Symbol = "!@#$%^&*_"
)

// Options selects the password length and which character classes to use.
type Options struct {
	Length int  `mapstructure:"length" yaml:"length" json:"length"`
	Upper  bool `mapstructure:"upper"  yaml:"upper"  json:"upper"`
	Lower  bool `mapstructure:"lower"  yaml:"lower"  json:"lower"`
	Number bool `mapstructure:"number" yaml:"number" json:"number"`
	Symbol bool `mapstructure:"symbol" yaml:"symbol" json:"symbol"`
}

// DefaultOptions returns a 16 character password with every class enabled.
func DefaultOptions() Options {
	return Options{
		Length: constants.DefaultPasswordLength,
		Upper:  true,
		Lower:  true,
		Number: true,
		Symbol: true,
	}
}

// classes returns the enabled character sets in a fixed order.
func (o Options) classes() []string {
	var sets []string
	if o.Upper {
		sets = append(sets, Upper)
	}
	if o.Lower {
		sets = append(sets, Lower)
	}
	if o.Number {
		sets = append(sets, Number)
	}
	if o.Symbol {
		sets = append(sets, Symbol)
	}
	return sets
}

// Validate checks that opts can produce a password.
func (o Options) Validate() error {
	sets := o.classes()
	if len(sets) == 0 {
		return errors.ErrNoCharacterClass
	}
	if o.Length < len(sets) {
		return errors.Wrapf(errors.ErrPasswordTooShort, "length %d, need at least %d", o.Length, len(sets))
	}
	if o.Length > constants.MaxPasswordLength {
		return errors.Wrapf(errors.ErrInvalidArgument, "length %d exceeds maximum %d", o.Length, constants.MaxPasswordLength)
	}
	return nil
}

// Generate returns a password drawn from crypto/rand.
func Generate(opts Options) (string, error) {
	return GenerateFrom(rand.Reader, opts)
}

// GenerateFrom returns a password drawn from r. Every enabled class appears at
// least once; the remaining characters come from the union of enabled classes
// and the result is shuffled.
func GenerateFrom(r io.Reader, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	sets := opts.classes()
	var union string
	password := make([]byte, 0, opts.Length)
	for _, set := range sets {
		c, err := pick(r, set)
		if err != nil {
			return "", err
		}
		password = append(password, c)
		union += set
	}

	for len(password) < opts.Length {
		c, err := pick(r, union)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	for i := len(password) - 1; i > 0; i-- {
		j, err := index(r, i+1)
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

// Strength returns the zxcvbn score of password, from 0 (weak) to 4 (strong).
func Strength(password string) int {
	return zxcvbn.PasswordStrength(password, nil).Score
}

func pick(r io.Reader, set string) (byte, error) {
	i, err := index(r, len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func index(r io.Reader, n int) (int, error) {
	v, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errors.ErrEntropySource, err)
	}
	return int(v.Int64()), nil
}
