package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/seal/internal/genpass"
	"github.com/mrz1836/seal/internal/tui"
)

type genpassFlags struct {
	length   int
	noUpper  bool
	noLower  bool
	noNumber bool
	noSymbol bool
}

type genpassResult struct {
	Password string `json:"password"`
	Strength int    `json:"strength"`
}

// AddGenpassCommand adds the genpass command.
func AddGenpassCommand(root *cobra.Command) {
	flags := &genpassFlags{}

	cmd := &cobra.Command{
		Use:   "genpass",
		Short: "Generate a random password",
		Long: `Generate a random password from unambiguous characters.

Every enabled character class appears at least once. The password is printed
on stdout and its strength (0-4) on stderr.

Examples:
  seal genpass
  seal genpass -l 32 --no-symbol`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenpass(cmd.Context(), cmd, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.length, "length", "l", 0, "password length (default from config, or 16)")
	cmd.Flags().BoolVar(&flags.noUpper, "no-upper", false, "exclude upper case letters")
	cmd.Flags().BoolVar(&flags.noLower, "no-lower", false, "exclude lower case letters")
	cmd.Flags().BoolVar(&flags.noNumber, "no-number", false, "exclude digits")
	cmd.Flags().BoolVar(&flags.noSymbol, "no-symbol", false, "exclude symbols")

	root.AddCommand(cmd)
}

// genpassOptions merges the command flags over the configured defaults.
func genpassOptions(cmd *cobra.Command, cfg genpass.Options, flags *genpassFlags) genpass.Options {
	opts := cfg
	if cmd.Flags().Changed("length") {
		opts.Length = flags.length
	}
	if flags.noUpper {
		opts.Upper = false
	}
	if flags.noLower {
		opts.Lower = false
	}
	if flags.noNumber {
		opts.Number = false
	}
	if flags.noSymbol {
		opts.Symbol = false
	}
	return opts
}

func runGenpass(ctx context.Context, cmd *cobra.Command, flags *genpassFlags) error {
	opts := genpassOptions(cmd, configFromContext(ctx).Genpass, flags)

	password, err := genpass.Generate(opts)
	if err != nil {
		return err
	}
	score := genpass.Strength(password)

	zerolog.Ctx(ctx).Debug().
		Int("length", opts.Length).
		Int("strength", score).
		Msg("password generated")

	if getOutputFormat(cmd) == OutputJSON {
		return tui.NewJSONOutput(cmd.OutOrStdout()).JSON(genpassResult{Password: password, Strength: score})
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), password); err != nil {
		return err
	}
	tui.NewTTYOutput(cmd.ErrOrStderr()).Info(fmt.Sprintf("Password strength: %d (%s)", score, tui.StrengthLabel(score)))
	return nil
}
