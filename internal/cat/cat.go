// SPDX-License-Identifier: MPL-2.0

package cat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/textutils/textutils/pkg/types"
)

// Name is the program name used as the diagnostics prefix.
const Name = "cat"

// Env holds the I/O streams and working directory of one run.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	// Dir resolves relative file paths. Empty means the process working directory.
	Dir string
}

// Run executes one cat invocation. argv[0] is the program name.
func Run(ctx context.Context, env Env, argv []string) error {
	logger := log.FromContext(ctx).WithPrefix(Name)

	opts, files, err := ParseArgs(argv)
	if err != nil {
		fmt.Fprintf(env.Stderr, "%s: %s\n%s\n", Name, err, Usage)
		return &FailureError{Code: types.ExitFailure, Err: err}
	}
	if len(files) == 0 {
		fmt.Fprintf(env.Stderr, "%s: %s\n", Name, ErrNoFiles)
		return &FailureError{Code: types.ExitFailure, Err: ErrNoFiles}
	}
	logger.Debug("options parsed", "options", fmt.Sprintf("%+v", opts), "files", len(files))

	out := bufio.NewWriter(env.Stdout)
	rd := newRenderer(out, opts)

	var errs []error
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := copyFile(rd, env.Dir, path); err != nil {
			// Pending output precedes the diagnostic.
			_ = out.Flush()
			fmt.Fprintf(env.Stderr, "%s: %s\n", Name, err)
			errs = append(errs, err)
			continue
		}
		logger.Debug("file copied", "path", path)
	}

	if err := out.Flush(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &FailureError{Code: types.ExitFailure, Err: errors.Join(errs...)}
	}
	return nil
}

func copyFile(rd *renderer, dir, path string) error {
	resolved := path
	if dir != "" && !filepath.IsAbs(path) {
		resolved = filepath.Join(dir, path)
	}

	f, err := os.Open(resolved)
	if err != nil {
		return &OpenError{Path: path, Err: err}
	}
	defer f.Close()

	if err := rd.Render(f); err != nil {
		return &ReadError{Path: path, Err: err}
	}
	return nil
}
