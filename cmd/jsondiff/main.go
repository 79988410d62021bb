package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/wonderfulspam/jsondiff/pkg/config"
)

var version = "dev"

// errDifferences signals that the compared documents differ when --exit-code
// is set. main exits with status 1 without printing it.
var errDifferences = errors.New("documents differ")

type rootOptions struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "jsondiff",
		Short: "Semantic diff for JSON documents",
		Long: `jsondiff compares two JSON documents after putting them in canonical form,
so reordered object keys and reordered array elements do not show up as changes.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "configuration file (default: "+config.DefaultFile+" if present)")

	root.AddCommand(newDiffCmd(opts))
	root.AddCommand(newNormalizeCmd(opts))
	root.AddCommand(newConfigCmd(opts))

	return root
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errDifferences) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
