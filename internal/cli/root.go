// Package cli provides the command-line interface for seal.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/seal/internal/errors"
	"github.com/mrz1836/seal/internal/tui"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// newRootCmd creates and returns the root command for the seal CLI.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "seal",
		Short: "seal - sign and verify messages with BLAKE3 or Ed25519",
		Long: `seal signs and verifies messages with interchangeable schemes.

Schemes:
  • blake3   keyed hash with a shared 32-byte secret
  • ed25519  signatures with a private seed and a public key

Signatures are printed as URL-safe base64 without padding.`,
		Version: formatVersion(info),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			if !IsValidOutputFormat(flags.Output) {
				return errors.NewExitCode2Error(fmt.Errorf("%w: %q must be one of %v",
					errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats()))
			}

			logger := InitLogger(flags.Verbose, flags.Quiet)

			ctx := logger.WithContext(cmd.Context())
			cfg, err := loadConfig(ctx, flags.ConfigFile)
			if err != nil {
				return err
			}
			cmd.SetContext(withConfig(ctx, cfg))

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	AddGlobalFlags(cmd, flags)

	AddTextCommand(cmd)
	AddGenpassCommand(cmd)
	AddBase64Command(cmd)
	AddConfigCommand(cmd)

	return cmd
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
// Errors are reported on stderr before being returned.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, info)
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		ReportError(cmd.ErrOrStderr(), flags.Output, err)
	}
	return err
}

// ReportError prints err with a user-facing message and suggested action.
func ReportError(w io.Writer, outputFormat string, err error) {
	msg, action := errors.Actionable(err)
	ae := tui.NewActionableError(msg, action)
	if msg != err.Error() {
		ae = ae.WithContext(err.Error())
	}
	tui.NewOutput(w, outputFormat).Error(ae)
}
