// SPDX-License-Identifier: MPL-2.0

package uroot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"github.com/textutils/textutils/internal/logging"
	"github.com/textutils/textutils/pkg/types"
)

// ScriptOptions configures RunScript.
type ScriptOptions struct {
	// Dir is the initial working directory. Empty means the process directory.
	Dir string
	// Env is the environment in "KEY=value" form. Nil inherits os.Environ().
	Env []string
	// Stdin, Stdout and Stderr are the script streams. Nil streams are discarded.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Registry resolves built-in commands. Nil means DefaultRegistry.
	Registry *Registry
}

// RunScript parses and runs a POSIX shell script with the built-in utilities
// available as commands. It returns the script's exit status; the error is
// non-nil only when the script cannot be parsed or the interpreter fails.
func RunScript(ctx context.Context, script string, opts ScriptOptions) (types.ExitCode, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(script), "script")
	if err != nil {
		return types.ExitFailure, fmt.Errorf("failed to parse script: %w", err)
	}

	// Utilities log through the context logger; scripts without one stay quiet.
	if log.FromContext(ctx) == log.Default() {
		ctx = log.WithContext(ctx, logging.Discard())
	}

	registry := opts.Registry
	if registry == nil {
		registry = DefaultRegistry
	}
	env := opts.Env
	if env == nil {
		env = os.Environ()
	}
	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	runnerOpts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(opts.Stdin, stdout, stderr),
		interp.ExecHandlers(registry.ExecHandler),
	}
	if opts.Dir != "" {
		runnerOpts = append(runnerOpts, interp.Dir(opts.Dir))
	}

	runner, err := interp.New(runnerOpts...)
	if err != nil {
		return types.ExitFailure, fmt.Errorf("failed to create interpreter: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return types.ExitCode(exitStatus), nil
		}
		return types.ExitFailure, fmt.Errorf("script execution failed: %w", err)
	}
	return types.ExitSuccess, nil
}
