package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wonderfulspam/jsondiff/pkg/config"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage jsondiff configuration",
		Long:  `Manage jsondiff configuration files, including initialization and validation.`,
	}

	configCmd.AddCommand(newConfigInitCmd())
	configCmd.AddCommand(newConfigValidateCmd())
	configCmd.AddCommand(newConfigShowCmd(root))

	return configCmd
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [file]",
		Short: "Generate a default configuration file",
		Long: `Generate a configuration file holding the default settings. The format
follows the file extension (.yml, .toml or .json). If no file is specified,
creates ` + config.DefaultFile + ` in the current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFile := config.DefaultFile
			if len(args) > 0 {
				outputFile = args[0]
			}

			if _, err := os.Stat(outputFile); err == nil {
				return fmt.Errorf("configuration file %s already exists", outputFile)
			}

			if err := config.SaveConfig(config.DefaultConfig(), outputFile); err != nil {
				return fmt.Errorf("writing configuration file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file %s\n", outputFile)
			return nil
		},
	}
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(args[0])
			if err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Configuration is valid!\n\n")
			fmt.Fprintf(out, "Summary:\n")
			fmt.Fprintf(out, "  Version: %d\n", cfg.Version)
			fmt.Fprintf(out, "  Context Lines: %d\n", cfg.Diff.Context)
			fmt.Fprintf(out, "  Array Normalization: %t\n", cfg.Normalize.Arrays)
			fmt.Fprintf(out, "  Input Format: %s\n", cfg.Input.Format)
			fmt.Fprintf(out, "  Output Format: %s\n", cfg.Output.Format)
			if cfg.Diff.OutputNormalized {
				fmt.Fprintf(out, "  Normalized Files: %s, %s\n", cfg.Diff.NormalizedFiles[0], cfg.Diff.NormalizedFiles[1])
			}
			return nil
		},
	}
}

func newConfigShowCmd(root *rootOptions) *cobra.Command {
	var as string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch as {
			case "yaml", "toml", "json":
			default:
				return fmt.Errorf("unsupported format: %s (supported: yaml, toml, json)", as)
			}

			cfg, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}

			data, err := config.Marshal(cfg, "config."+as)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&as, "as", "yaml", "output format (yaml, toml, json)")

	return cmd
}
