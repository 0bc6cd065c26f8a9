// SPDX-License-Identifier: MPL-2.0

package grep

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/textutils/textutils/pkg/types"
)

// Name is the program name used as the diagnostics prefix.
const Name = "grep"

type (
	// Env holds the I/O streams and working directory of one run.
	Env struct {
		Stdout io.Writer
		Stderr io.Writer
		// Dir resolves relative file and pattern file paths. Empty means the
		// process working directory.
		Dir string
	}

	// FailureError is returned by Run when the run ends with a nonzero status.
	// Its diagnostics have already been written to Env.Stderr.
	FailureError struct {
		Code types.ExitCode
		Err  error
	}
)

// Error implements the error interface.
func (e *FailureError) Error() string {
	return fmt.Sprintf("%s: exit status %s: %v", Name, e.Code, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FailureError) Unwrap() error { return e.Err }

// ExitCode returns the process status of the failed run.
func (e *FailureError) ExitCode() types.ExitCode { return e.Code }

// Run executes one grep invocation. argv[0] is the program name.
//
// Argument and pattern errors abort before any file is opened. File errors
// are reported per file and the remaining files are still scanned.
func Run(ctx context.Context, env Env, argv []string) error {
	logger := log.FromContext(ctx).WithPrefix(Name)
	ctx = log.WithContext(ctx, logger)

	fail := func(err error) error {
		fmt.Fprintf(env.Stderr, "%s: %s\n", Name, err)
		return &FailureError{Code: types.ExitFailure, Err: err}
	}

	c, err := Classify(argv)
	if err != nil {
		return fail(err)
	}
	if logger.GetLevel() <= log.DebugLevel {
		for _, arg := range c.Args {
			logger.Debug("argument classified", "arg", arg.Raw, "role", arg.Role, "value", arg.Value)
		}
	}
	if err := Validate(c); err != nil {
		return fail(err)
	}

	store, err := Build(ctx, c, env.Dir)
	if err != nil {
		return fail(err)
	}

	out := newFormatter(env.Stdout, c.Options)
	scanner := &fileScanner{
		opts:    c.Options,
		dir:     env.Dir,
		matcher: &lineMatcher{opts: c.Options, store: store, out: out},
		out:     out,
		stderr:  env.Stderr,
		logger:  logger,
	}

	var (
		errs      []error
		attempted int
	)
	for _, path := range c.Values(RoleFilePath) {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		// An unreadable operand still counts; its own diagnostic is enough.
		attempted++
		if err := scanner.scan(path); err != nil {
			errs = append(errs, err)
		}
	}

	if attempted == 0 && !c.Options.SuppressErrors {
		fmt.Fprintf(env.Stderr, "%s: %s\n", Name, ErrNoFiles)
		errs = append(errs, ErrNoFiles)
	}

	if err := out.flush(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &FailureError{Code: types.ExitFailure, Err: errors.Join(errs...)}
	}
	return nil
}
