package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mrz1836/seal/internal/constants"
	"github.com/mrz1836/seal/internal/crypto"
	"github.com/mrz1836/seal/internal/ctxutil"
	"github.com/mrz1836/seal/internal/errors"
)

// openInput opens path for reading. "-" reads from stdin.
func openInput(stdin io.Reader, path string) (io.ReadCloser, error) {
	if path == constants.StdinPath {
		return io.NopCloser(stdin), nil
	}
	if err := ensureFile(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path) //#nosec G304 -- path is user input by design
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	return f, nil
}

// ensureFile checks that path names an existing regular file.
func ensureFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewExitCode2Error(fmt.Errorf("%w: %s", errors.ErrFileNotFound, path))
		}
		return errors.Wrapf(err, "failed to stat %s", path)
	}
	if info.IsDir() {
		return errors.NewExitCode2Error(fmt.Errorf("%w: %s is a directory", errors.ErrFileNotFound, path))
	}
	return nil
}

// stdinSource names a flag whose value may be the stdin token.
type stdinSource struct {
	flag  string
	value string
}

// claimStdin fails when more than one flag asks to read from stdin.
func claimStdin(sources ...stdinSource) error {
	var claimed []string
	for _, src := range sources {
		if src.value == constants.StdinPath {
			claimed = append(claimed, "--"+src.flag)
		}
	}
	if len(claimed) > 1 {
		return errors.NewExitCode2Error(fmt.Errorf("%w: %s cannot all read from stdin",
			errors.ErrInvalidArgument, strings.Join(claimed, " and ")))
	}
	return nil
}

// readKeyFile returns the raw contents of a key file. "-" reads the key
// from stdin.
func readKeyFile(ctx context.Context, stdin io.Reader, path string) ([]byte, error) {
	if path == constants.StdinPath {
		data, err := ctxutil.ReadAll(ctx, stdin)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read key from stdin")
		}
		return data, nil
	}
	if err := ensureFile(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) //#nosec G304 -- path is user input by design
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read key file %s", path)
	}
	return data, nil
}

// readSignature decodes a signature given as a file path, "-" for stdin, or
// the base64url text itself.
func readSignature(ctx context.Context, stdin io.Reader, value string) ([]byte, error) {
	text := value
	switch info, statErr := os.Stat(value); {
	case value == constants.StdinPath:
		data, err := ctxutil.ReadAll(ctx, stdin)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read signature from stdin")
		}
		text = string(data)
	case statErr == nil && !info.IsDir():
		data, err := os.ReadFile(value) //#nosec G304 -- path is user input by design
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read signature file %s", value)
		}
		text = string(data)
	}

	sig, err := crypto.FromBase64URL(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrSignatureFormat, err)
	}
	return sig, nil
}
