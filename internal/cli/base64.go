package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrz1836/seal/internal/constants"
	"github.com/mrz1836/seal/internal/crypto"
	"github.com/mrz1836/seal/internal/ctxutil"
	"github.com/mrz1836/seal/internal/errors"
)

type base64Flags struct {
	input  string
	format string
}

// AddBase64Command adds the base64 encode and decode commands.
func AddBase64Command(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "base64",
		Short: "Encode and decode base64",
	}

	cmd.AddCommand(newBase64Cmd("encode", "Encode input as base64", runBase64Encode))
	cmd.AddCommand(newBase64Cmd("decode", "Decode base64 input", runBase64Decode))

	root.AddCommand(cmd)
}

type base64RunFunc func(ctx context.Context, cmd *cobra.Command, flags *base64Flags) error

func newBase64Cmd(use, short string, run base64RunFunc) *cobra.Command {
	flags := &base64Flags{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", constants.StdinPath, "input file, or - for stdin")
	cmd.Flags().StringVar(&flags.format, "format", "", "alphabet: standard or urlsafe (default from config, or standard)")

	return cmd
}

// base64Format returns the requested alphabet, falling back to config.
func base64Format(ctx context.Context, flags *base64Flags) (string, error) {
	format := flags.format
	if format == "" {
		format = configFromContext(ctx).Base64.Format
	}
	switch format {
	case constants.Base64Standard, constants.Base64URLSafe:
		return format, nil
	default:
		return "", errors.NewExitCode2Error(fmt.Errorf("%w: %q", errors.ErrInvalidBase64Format, format))
	}
}

func readBase64Input(ctx context.Context, cmd *cobra.Command, path string) ([]byte, error) {
	in, err := openInput(cmd.InOrStdin(), path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	data, err := ctxutil.ReadAll(ctx, in)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input")
	}
	return data, nil
}

func runBase64Encode(ctx context.Context, cmd *cobra.Command, flags *base64Flags) error {
	format, err := base64Format(ctx, flags)
	if err != nil {
		return err
	}
	data, err := readBase64Input(ctx, cmd, flags.input)
	if err != nil {
		return err
	}

	encoded := crypto.ToBase64(data)
	if format == constants.Base64URLSafe {
		encoded = crypto.ToBase64URL(data)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), encoded)
	return err
}

func runBase64Decode(ctx context.Context, cmd *cobra.Command, flags *base64Flags) error {
	format, err := base64Format(ctx, flags)
	if err != nil {
		return err
	}
	data, err := readBase64Input(ctx, cmd, flags.input)
	if err != nil {
		return err
	}

	decode := crypto.FromBase64
	if format == constants.Base64URLSafe {
		decode = crypto.FromBase64URL
	}
	decoded, err := decode(string(data))
	if err != nil {
		return errors.Wrapf(err, "failed to decode %s base64", format)
	}
	_, err = cmd.OutOrStdout().Write(decoded)
	return err
}
