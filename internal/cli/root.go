// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/textutils/textutils/internal/config"
	"github.com/textutils/textutils/internal/logging"
	"github.com/textutils/textutils/internal/uroot"
	"github.com/textutils/textutils/pkg/types"
)

// Version is the semantic version (set via -ldflags).
var Version = "dev"

// streams are the process streams a root command runs with.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func osStreams() streams {
	return streams{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

// newUtilityCommand returns a root command that passes its raw arguments to
// the named built-in utility.
func newUtilityCommand(name, use, short, long string, s streams) *cobra.Command {
	cmd := &cobra.Command{
		Use:                name + " " + use,
		Short:              short,
		Long:               long,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && args[0] == "--help" {
				return cmd.Help()
			}
			return runUtility(cmd.Context(), name, args, s)
		},
	}
	cmd.SetIn(s.in)
	cmd.SetOut(s.out)
	cmd.SetErr(s.err)
	return cmd
}

// runUtility runs one utility from the default registry with a configured
// logger in the context.
func runUtility(ctx context.Context, name string, args []string, s streams) error {
	ctx = log.WithContext(ctx, newLogger(ctx, name, s.err))

	ctx = uroot.WithHandlerContext(ctx, &uroot.HandlerContext{Stdin: s.in, Stdout: s.out, Stderr: s.err})

	argv := append([]string{name}, args...)
	if err := uroot.DefaultRegistry.Run(ctx, name, argv); err != nil {
		return &ExitError{Utility: name, Code: uroot.ExitCodeOf(err), Err: err}
	}
	return nil
}

// newLogger builds the logger from the user configuration. Configuration
// problems are logged and never fail the run.
func newLogger(ctx context.Context, prefix string, w io.Writer) *log.Logger {
	cfg := config.DefaultConfig()
	loaded, cfgErr := config.NewProvider().Load(ctx, config.LoadOptions{})
	if cfgErr == nil {
		cfg = loaded.Config
	}

	logger, err := logging.New(w, cfg.LoggingOptions(prefix))
	if err != nil {
		cfgErr = errors.Join(cfgErr, err)
		logger, _ = logging.New(w, config.DefaultConfig().LoggingOptions(prefix))
	}
	switch {
	case cfgErr != nil:
		logger.Warn("ignoring configuration", "err", cfgErr)
	case loaded.Path != "":
		logger.Debug("configuration loaded", "path", loaded.Path)
	}
	return logger
}

// execute runs root through fang and converts the outcome into a process status.
func execute(ctx context.Context, root *cobra.Command, args []string) types.ExitCode {
	root.SetArgs(args)
	err := fang.Execute(
		ctx,
		root,
		fang.WithVersion(Version),
		fang.WithoutManpage(),
		fang.WithoutCompletions(),
		fang.WithErrorHandler(func(io.Writer, fang.Styles, error) {}),
	)
	return uroot.ExitCodeOf(err)
}
