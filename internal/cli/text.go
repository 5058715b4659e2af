package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/seal/internal/constants"
	"github.com/mrz1836/seal/internal/crypto"
	"github.com/mrz1836/seal/internal/errors"
	"github.com/mrz1836/seal/internal/flock"
	"github.com/mrz1836/seal/internal/tui"
)

// terminalCheck is a variable for the terminal check function, allowing tests to override it.
//
//nolint:gochecknoglobals // Test seam
var terminalCheck = tui.IsInteractive

// confirmOverwrite asks before replacing existing key files. Tests override it.
//
//nolint:gochecknoglobals // Test seam
var confirmOverwrite = func(msg string) (bool, error) {
	return tui.Confirm(msg, false)
}

// AddTextCommand adds the text command group (sign, verify, generate).
func AddTextCommand(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Sign and verify messages",
	}

	cmd.AddCommand(newTextSignCmd())
	cmd.AddCommand(newTextVerifyCmd())
	cmd.AddCommand(newTextGenerateCmd())

	root.AddCommand(cmd)
}

type textSignFlags struct {
	input  string
	key    string
	format crypto.Format
}

type signResult struct {
	Format    crypto.Format `json:"format"`
	Signature string        `json:"signature"`
}

func newTextSignCmd() *cobra.Command {
	flags := &textSignFlags{}

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message",
		Long: `Sign a message and print the signature as URL-safe base64.

For blake3 the key file holds the shared secret; for ed25519 it holds the
private seed (ed25519.sk). Only the first 32 bytes of the key file are used.

Examples:
  seal text sign -k blake3.txt < message.txt
  seal text sign -i message.txt -k ed25519.sk --format ed25519`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextSign(cmd.Context(), cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", constants.StdinPath, "message file, or - for stdin")
	cmd.Flags().StringVarP(&flags.key, "key", "k", "", "key file, or - for stdin")
	cmd.Flags().Var(&flags.format, "format", "signing format (blake3|ed25519)")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func runTextSign(ctx context.Context, cmd *cobra.Command, flags *textSignFlags) error {
	logger := zerolog.Ctx(ctx)
	format := resolveFormat(ctx, cmd, flags.format)

	if err := claimStdin(
		stdinSource{flag: "input", value: flags.input},
		stdinSource{flag: "key", value: flags.key},
	); err != nil {
		return err
	}

	key, err := readKeyFile(ctx, cmd.InOrStdin(), flags.key)
	if err != nil {
		return err
	}
	signer, err := crypto.LoadSigner(format, key)
	if err != nil {
		return errors.Wrapf(err, "failed to load %s signing key %s", format, flags.key)
	}

	in, err := openInput(cmd.InOrStdin(), flags.input)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	sig, err := signer.Sign(ctx, in)
	if err != nil {
		return errors.Wrap(err, "failed to sign message")
	}

	logger.Debug().
		Str("format", format.String()).
		Str("input", flags.input).
		Int("signature_bytes", len(sig)).
		Msg("message signed")

	encoded := crypto.ToBase64URL(sig)
	w := cmd.OutOrStdout()
	if getOutputFormat(cmd) == OutputJSON {
		return tui.NewJSONOutput(w).JSON(signResult{Format: format, Signature: encoded})
	}
	_, err = fmt.Fprintln(w, encoded)
	return err
}

type textVerifyFlags struct {
	input     string
	key       string
	signature string
	format    crypto.Format
	strict    bool
}

type verifyResult struct {
	Format   crypto.Format `json:"format"`
	Verified bool          `json:"verified"`
}

func newTextVerifyCmd() *cobra.Command {
	flags := &textVerifyFlags{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a message signature",
		Long: `Verify a signature produced by 'seal text sign'.

For blake3 the key file holds the shared secret; for ed25519 it holds the
public key (ed25519.pk). The signature is either a file or the base64 text.

A signature that does not match is reported but exits 0 unless --strict is set.

Examples:
  seal text verify -k blake3.txt -s "$SIG" < message.txt
  seal text verify -i message.txt -k ed25519.pk -s message.sig --format ed25519 --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextVerify(cmd.Context(), cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", constants.StdinPath, "message file, or - for stdin")
	cmd.Flags().StringVarP(&flags.key, "key", "k", "", "key file, or - for stdin")
	cmd.Flags().StringVarP(&flags.signature, "signature", "s", "", "signature file, base64url text, or - for stdin")
	cmd.Flags().Var(&flags.format, "format", "signing format (blake3|ed25519)")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "exit with an error when the signature does not verify")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("signature")

	return cmd
}

func runTextVerify(ctx context.Context, cmd *cobra.Command, flags *textVerifyFlags) error {
	logger := zerolog.Ctx(ctx)
	cfg := configFromContext(ctx)
	format := resolveFormat(ctx, cmd, flags.format)

	strict := flags.strict
	if !cmd.Flags().Changed("strict") {
		strict = cfg.Text.Strict
	}

	if err := claimStdin(
		stdinSource{flag: "input", value: flags.input},
		stdinSource{flag: "key", value: flags.key},
		stdinSource{flag: "signature", value: flags.signature},
	); err != nil {
		return err
	}

	key, err := readKeyFile(ctx, cmd.InOrStdin(), flags.key)
	if err != nil {
		return err
	}
	verifier, err := crypto.LoadVerifier(format, key)
	if err != nil {
		return errors.Wrapf(err, "failed to load %s verification key %s", format, flags.key)
	}

	sig, err := readSignature(ctx, cmd.InOrStdin(), flags.signature)
	if err != nil {
		return err
	}
	sizeMismatch := len(sig) != format.SignatureSize()

	in, err := openInput(cmd.InOrStdin(), flags.input)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	ok, err := verifier.Verify(ctx, in, sig)
	if err != nil {
		return errors.Wrap(err, "failed to verify signature")
	}

	logger.Debug().
		Str("format", format.String()).
		Str("input", flags.input).
		Bool("verified", ok).
		Int("signature_bytes", len(sig)).
		Msg("signature checked")

	w := cmd.OutOrStdout()
	if getOutputFormat(cmd) == OutputJSON {
		if err := tui.NewJSONOutput(w).JSON(verifyResult{Format: format, Verified: ok}); err != nil {
			return err
		}
	} else {
		out := tui.NewTTYOutput(w)
		if ok {
			out.Success("Signature verified")
		} else {
			out.Warning("Signature not verified")
			if sizeMismatch {
				out.Info(fmt.Sprintf("Signature is %d bytes; %s signatures are %d bytes",
					len(sig), format, format.SignatureSize()))
			}
		}
	}

	if !ok && strict {
		return errors.ErrSignatureNotVerified
	}
	return nil
}

type textGenerateFlags struct {
	format    crypto.Format
	outputDir string
	raw       bool
	force     bool
}

type generateResult struct {
	Format crypto.Format `json:"format"`
	Files  []string      `json:"files"`
}

func newTextGenerateCmd() *cobra.Command {
	flags := &textGenerateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate signing keys",
		Long: `Generate fresh key material and write it to the output directory.

  blake3   writes blake3.txt (a 32 character password used as the secret,
           or 32 random bytes with --raw)
  ed25519  writes ed25519.sk (private seed) and ed25519.pk (public key)

Files are written with mode 0600. Existing files are only replaced after
confirmation, or with --force.

Examples:
  seal text generate
  seal text generate --format ed25519 -d ./keys`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextGenerate(cmd.Context(), cmd, flags)
		},
	}

	cmd.Flags().Var(&flags.format, "format", "signing format (blake3|ed25519)")
	cmd.Flags().StringVarP(&flags.outputDir, "output-dir", "d", "", "directory for key files (default from config, or .)")
	cmd.Flags().BoolVar(&flags.raw, "raw", false, "use 32 random bytes for blake3 instead of a password")
	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite existing key files without asking")

	return cmd
}

func runTextGenerate(ctx context.Context, cmd *cobra.Command, flags *textGenerateFlags) error {
	cfg := configFromContext(ctx)
	format := resolveFormat(ctx, cmd, flags.format)

	dir := flags.outputDir
	if dir == "" {
		dir = cfg.Keygen.OutputDir
	}

	gen := crypto.NewGenerator()
	gen.RawSymmetric = cfg.Keygen.RawSymmetric
	if cmd.Flags().Changed("raw") {
		gen.RawSymmetric = flags.raw
	}

	bundle, err := gen.Generate(ctx, format)
	if err != nil {
		return errors.Wrapf(err, "failed to generate %s keys", format)
	}

	w := cmd.OutOrStdout()
	paths, err := writeBundle(ctx, dir, bundle, flags.force)
	if err != nil {
		if stderrors.Is(err, errors.ErrOperationCanceled) {
			tui.NewOutput(w, getOutputFormat(cmd)).Info("Key generation canceled")
			return nil
		}
		return err
	}

	if getOutputFormat(cmd) == OutputJSON {
		return tui.NewJSONOutput(w).JSON(generateResult{Format: format, Files: paths})
	}
	out := tui.NewTTYOutput(w)
	for _, path := range paths {
		out.Success("Wrote " + path)
	}
	return nil
}

// writeBundle writes every bundle entry to dir/<name> with mode 0600 and
// returns the written paths in name order. Existing files are only replaced
// with force or after interactive confirmation.
func writeBundle(ctx context.Context, dir string, bundle crypto.KeyBundle, force bool) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	if err := os.MkdirAll(dir, constants.KeyDirMode); err != nil {
		return nil, errors.Wrapf(err, "failed to create key directory %s", dir)
	}

	lock, err := flock.Acquire(filepath.Join(dir, flock.LockFileName))
	if err != nil {
		return nil, err
	}
	defer func() {
		if releaseErr := lock.Release(); releaseErr != nil {
			logger.Warn().Err(releaseErr).Msg("failed to release key directory lock")
		}
	}()

	names := bundle.Names()
	paths := make([]string, 0, len(names))
	var existing []string
	for _, name := range names {
		path := filepath.Join(dir, name)
		paths = append(paths, path)
		if _, err := os.Stat(path); err == nil {
			existing = append(existing, path)
		}
	}

	if len(existing) > 0 && !force {
		if err := confirmReplace(existing); err != nil {
			return nil, err
		}
	}

	// Stage every file before renaming any into place.
	staged := make([]string, 0, len(names))
	discardStaged := func() {
		for _, tmp := range staged {
			_ = os.Remove(tmp)
		}
	}
	for _, name := range names {
		tmp, err := stageKeyFile(dir, name, bundle[name])
		if err != nil {
			discardStaged()
			return nil, err
		}
		staged = append(staged, tmp)
	}

	for i, tmp := range staged {
		if err := os.Rename(tmp, paths[i]); err != nil {
			discardStaged()
			removeCreated(ctx, paths[:i], existing)
			return nil, errors.Wrapf(err, "failed to write key file %s", paths[i])
		}
		logger.Debug().Str("path", paths[i]).Msg("key file written")
	}
	return paths, nil
}

// removeCreated deletes the bundle files this run added. Files that existed
// before were already replaced and cannot be restored.
func removeCreated(ctx context.Context, written, existing []string) {
	for _, path := range written {
		if slices.Contains(existing, path) {
			zerolog.Ctx(ctx).Warn().Str("path", path).Msg("key file was replaced before the bundle failed")
			continue
		}
		_ = os.Remove(path)
	}
}

func confirmReplace(existing []string) error {
	if !terminalCheck() {
		return fmt.Errorf("%w: %s", errors.ErrKeyFileExists, existing[0])
	}

	msg := fmt.Sprintf("Overwrite %s?", existing[0])
	if len(existing) > 1 {
		msg = fmt.Sprintf("Overwrite %d existing key files in %s?", len(existing), filepath.Dir(existing[0]))
	}

	confirmed, err := confirmOverwrite(msg)
	if err != nil {
		return err
	}
	if !confirmed {
		return errors.ErrOperationCanceled
	}
	return nil
}

// stageKeyFile writes data to a hidden temporary file in dir with key file
// permissions and returns its path.
func stageKeyFile(dir, name string, data []byte) (string, error) {
	f, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return "", errors.Wrapf(err, "failed to create key file %s", name)
	}
	tmp := f.Name()

	_, writeErr := f.Write(data)
	closeErr := f.Close()
	if err := stderrors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(tmp)
		return "", errors.Wrapf(err, "failed to write key file %s", name)
	}
	if err := os.Chmod(tmp, constants.KeyFileMode); err != nil {
		_ = os.Remove(tmp)
		return "", errors.Wrapf(err, "failed to set permissions on %s", name)
	}
	return tmp, nil
}

// resolveFormat returns the --format flag when given and the configured
// default otherwise.
func resolveFormat(ctx context.Context, cmd *cobra.Command, flagValue crypto.Format) crypto.Format {
	if cmd.Flags().Changed("format") {
		return flagValue
	}
	return configFromContext(ctx).Text.Format
}
