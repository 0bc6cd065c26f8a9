// SPDX-License-Identifier: MPL-2.0

package cat

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/textutils/textutils/pkg/types"
)

// Usage is the synopsis printed after an invalid option diagnostic.
const Usage = "usage: cat [-bEnstTeEvA] FILE..."

var (
	// ErrNoFiles is returned when no file operand is given.
	ErrNoFiles = errors.New("No files specified") //nolint:staticcheck // diagnostic text is fixed
	// ErrInvalidOption is the sentinel error wrapped by OptionError.
	ErrInvalidOption = errors.New("invalid option")
	// ErrOpen is the sentinel error wrapped by OpenError.
	ErrOpen = errors.New("cannot open file")
	// ErrRead is the sentinel error wrapped by ReadError.
	ErrRead = errors.New("cannot read file")
)

type (
	// OptionError is returned for an option character outside the option set.
	OptionError struct {
		Char byte
	}

	// OpenError is returned when a file operand cannot be opened.
	OpenError struct {
		Path string
		Err  error
	}

	// ReadError is returned when copying an opened file fails, for example
	// because the operand is a directory.
	ReadError struct {
		Path string
		Err  error
	}

	// FailureError is returned by Run when the run ends with a nonzero status.
	// Its diagnostics have already been written to Env.Stderr.
	FailureError struct {
		Code types.ExitCode
		Err  error
	}
)

// Error implements the error interface.
func (e *OptionError) Error() string {
	return "invalid option -- " + string([]byte{e.Char})
}

// Unwrap returns ErrInvalidOption for errors.Is() compatibility.
func (e *OptionError) Unwrap() error { return ErrInvalidOption }

// Error implements the error interface.
func (e *OpenError) Error() string {
	return e.Path + ": No such file or directory"
}

// Unwrap returns ErrOpen for errors.Is() compatibility.
func (e *OpenError) Unwrap() error { return ErrOpen }

// Error implements the error interface.
func (e *ReadError) Error() string {
	if errors.Is(e.Err, syscall.EISDIR) {
		return e.Path + ": Is a directory"
	}
	return e.Path + ": " + e.Err.Error()
}

// Unwrap returns ErrRead for errors.Is() compatibility.
func (e *ReadError) Unwrap() error { return ErrRead }

// Error implements the error interface.
func (e *FailureError) Error() string {
	return fmt.Sprintf("%s: exit status %s: %v", Name, e.Code, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FailureError) Unwrap() error { return e.Err }

// ExitCode returns the process status of the failed run.
func (e *FailureError) ExitCode() types.ExitCode { return e.Code }
