package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/wonderfulspam/jsondiff/pkg/config"
	"github.com/wonderfulspam/jsondiff/pkg/parser"
	"github.com/wonderfulspam/jsondiff/pkg/renderer"
)

type diffOptions struct {
	context          int
	outputNormalized bool
	format           string
	color            string
	inputFormat      string
	exitCode         bool
}

func newDiffCmd(root *rootOptions) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <file1> <file2>",
		Short: "Show the semantic differences between two JSON documents",
		Long: `Canonicalizes both documents, pretty-prints them and shows a line diff of the
results. Documents that differ only in object key order or array element order
produce no output.

Inputs may be gzip or zstd compressed, and YAML documents are accepted too.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}
			opts.apply(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runDiff(cmd, cfg, args[0], args[1])
		},
	}

	cmd.Flags().IntVarP(&opts.context, "unified", "U", renderer.DefaultContext, "number of context lines around each change")
	cmd.Flags().BoolVarP(&opts.outputNormalized, "output-normalized-json", "n", false, "write the canonical documents to normalized1.json and normalized2.json")
	cmd.Flags().StringVar(&opts.format, "format", "text", "output format (text, color, json)")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "when to colour the color format (auto, always, never)")
	cmd.Flags().StringVar(&opts.inputFormat, "input-format", string(parser.FormatAuto), "input document format (auto, json, yaml)")
	cmd.Flags().BoolVar(&opts.exitCode, "exit-code", false, "exit with status 1 when the documents differ")

	return cmd
}

// apply overrides config values with the flags set on the command line
func (o *diffOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("unified") {
		cfg.Diff.Context = o.context
	}
	if flags.Changed("output-normalized-json") {
		cfg.Diff.OutputNormalized = o.outputNormalized
	}
	if flags.Changed("format") {
		cfg.Output.Format = o.format
	}
	if flags.Changed("color") {
		cfg.Output.Color = o.color
	}
	if flags.Changed("input-format") {
		cfg.Input.Format = o.inputFormat
	}
	if flags.Changed("exit-code") {
		cfg.Output.ExitCode = o.exitCode
	}
}

func runDiff(cmd *cobra.Command, cfg *config.Config, file1, file2 string) error {
	logger := loggerFromContext(cmd.Context())

	format, err := parser.ParseFormat(cfg.Input.Format)
	if err != nil {
		return err
	}

	v1, err := parser.Load(file1, format)
	if err != nil {
		return err
	}
	v2, err := parser.Load(file2, format)
	if err != nil {
		return err
	}
	logger.Debug("loaded documents", "file1", file1, "file2", file2)

	r := renderer.New(
		renderer.WithContext(cfg.Diff.Context),
		renderer.WithLogger(logger),
		renderer.WithStyleRenderer(styleRenderer(cmd.OutOrStdout(), cfg.Output.Color)),
	)
	result := r.Diff(v1, v2)

	if cfg.Diff.OutputNormalized {
		if err := writeNormalized(cfg.Diff.NormalizedFiles, result); err != nil {
			return err
		}
		logger.Info("wrote canonical documents", "files", cfg.Diff.NormalizedFiles)
	}

	output, err := r.Format(result, cfg.Output.Format)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)

	logger.Info(result.Stats.String())

	if cfg.Output.ExitCode && result.HasChanges() {
		return errDifferences
	}
	return nil
}

func writeNormalized(files []string, result *renderer.Result) error {
	for i, text := range []string{result.Left, result.Right} {
		if err := os.WriteFile(files[i], []byte(text), 0644); err != nil {
			return fmt.Errorf("writing normalized output %s: %w", files[i], err)
		}
	}
	return nil
}

// styleRenderer returns the lipgloss renderer for w. "auto" detects colour
// support from w.
func styleRenderer(w io.Writer, mode string) *lipgloss.Renderer {
	lr := lipgloss.NewRenderer(w)
	switch mode {
	case "always":
		lr.SetColorProfile(termenv.ANSI256)
	case "never":
		lr.SetColorProfile(termenv.Ascii)
	}
	return lr
}

func loadConfig(cmd *cobra.Command, root *rootOptions) (*config.Config, error) {
	cfg, used, err := config.LoadOrDefault(root.configPath)
	if err != nil {
		return nil, err
	}
	if used != "" {
		loggerFromContext(cmd.Context()).Debug("loaded configuration", "file", used)
	}
	return cfg, nil
}
