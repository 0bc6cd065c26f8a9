// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

var (
	// ErrConfigNotFound is returned when an explicitly requested file does not exist.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrInvalidConfig is the sentinel error wrapped by ValidationError.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ValidationError describes a config file that does not satisfy the schema.
type ValidationError struct {
	// FilePath is the file being validated.
	FilePath string
	// Issues holds one "path: message" entry per CUE error.
	Issues []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Issues) == 1 {
		return fmt.Sprintf("%s: %s", e.FilePath, e.Issues[0])
	}
	return fmt.Sprintf("%s: validation failed:\n  %s", e.FilePath, strings.Join(e.Issues, "\n  "))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *ValidationError) Unwrap() error { return ErrInvalidConfig }

// FormatError converts a CUE error into a ValidationError with
// "<file>: <field path>: <message>" entries.
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	cueErrs := cueerrors.Errors(err)
	if len(cueErrs) == 0 {
		return &ValidationError{FilePath: filePath, Issues: []string{err.Error()}}
	}

	issues := make([]string, 0, len(cueErrs))
	for _, e := range cueErrs {
		path := strings.Join(cueerrors.Path(e), ".")
		msg := e.Error()
		if path != "" && strings.HasPrefix(msg, path) {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, path), ":"))
		}
		if path != "" {
			issues = append(issues, path+": "+msg)
			continue
		}
		issues = append(issues, msg)
	}
	return &ValidationError{FilePath: filePath, Issues: issues}
}
