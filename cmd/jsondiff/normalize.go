package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wonderfulspam/jsondiff/pkg/normalizer"
	"github.com/wonderfulspam/jsondiff/pkg/parser"
	"github.com/wonderfulspam/jsondiff/pkg/renderer"
)

func newNormalizeCmd(root *rootOptions) *cobra.Command {
	var (
		arrays      bool
		outputFile  string
		inputFormat string
	)

	cmd := &cobra.Command{
		Use:   "normalize <file>",
		Short: "Print the canonical form of a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("arrays") {
				cfg.Normalize.Arrays = arrays
			}
			if cmd.Flags().Changed("input-format") {
				cfg.Input.Format = inputFormat
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			format, err := parser.ParseFormat(cfg.Input.Format)
			if err != nil {
				return err
			}

			v, err := parser.Load(args[0], format)
			if err != nil {
				return err
			}

			output := renderer.Pretty(normalizer.Normalize(v, cfg.Normalize.Arrays))

			if outputFile != "" {
				if err := os.WriteFile(outputFile, []byte(output), 0644); err != nil {
					return fmt.Errorf("writing output file: %w", err)
				}
				logger.Info("wrote canonical document", "file", outputFile)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().BoolVar(&arrays, "arrays", true, "sort array elements into canonical order")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&inputFormat, "input-format", string(parser.FormatAuto), "input document format (auto, json, yaml)")

	return cmd
}
