package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/seal/internal/config"
	"github.com/mrz1836/seal/internal/tui"
)

// AddConfigCommand adds the config command group.
func AddConfigCommand(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect seal configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective configuration after merging defaults,
~/.seal/config.yaml, .seal/config.yaml and SEAL_* environment variables.

Examples:
  seal config show
  seal config show --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd.Context(), cmd.OutOrStdout(), getOutputFormat(cmd))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Display configuration and log file locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigPath(cmd.OutOrStdout(), getOutputFormat(cmd))
		},
	})

	root.AddCommand(cmd)
}

func runConfigShow(ctx context.Context, w io.Writer, outputFormat string) error {
	cfg := configFromContext(ctx)

	if outputFormat == OutputJSON {
		return tui.NewJSONOutput(w).JSON(cfg)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}

type configPaths struct {
	Global  string `json:"global"`
	Project string `json:"project"`
	Log     string `json:"log"`
}

func runConfigPath(w io.Writer, outputFormat string) error {
	global, err := config.GlobalConfigPath()
	if err != nil {
		return err
	}
	logPath, err := LogFilePath()
	if err != nil {
		return err
	}
	paths := configPaths{Global: global, Project: config.ProjectConfigPath(), Log: logPath}

	if outputFormat == OutputJSON {
		return tui.NewJSONOutput(w).JSON(paths)
	}
	_, err = fmt.Fprintf(w, "global:  %s\nproject: %s\nlog:     %s\n", paths.Global, paths.Project, paths.Log)
	return err
}
