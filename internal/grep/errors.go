// SPDX-License-Identifier: MPL-2.0

package grep

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

const (
	// InvalidOption marks a cluster character that names no flag.
	InvalidOption ArgumentErrorKind = iota + 1
	// MissingValue marks -e or -f at the end of the argument list.
	MissingValue
	// MissingOperand marks a run without a file operand or pattern source.
	MissingOperand
	// ConflictingOptions marks -o combined with -v.
	ConflictingOptions
)

var (
	// ErrInvalidArguments is the sentinel error wrapped by ArgumentError.
	ErrInvalidArguments = errors.New("invalid arguments")
	// ErrInvalidPattern is the sentinel error wrapped by PatternCompileError.
	ErrInvalidPattern = errors.New("invalid regular expression")
	// ErrPatternFile is the sentinel error wrapped by PatternFileError.
	ErrPatternFile = errors.New("unreadable pattern file")
	// ErrScanFile is the sentinel error wrapped by ScanFileError.
	ErrScanFile = errors.New("unreadable file")
	// ErrIsDirectory is the cause recorded when an operand names a directory.
	ErrIsDirectory = errors.New("is a directory")
	// ErrNoFiles is returned when no file operand was attempted.
	ErrNoFiles = errors.New("no files to process")
)

type (
	// ArgumentErrorKind distinguishes the argument errors of a run.
	ArgumentErrorKind int

	// ArgumentError is returned when the argument list cannot be classified
	// or fails validation. It wraps ErrInvalidArguments.
	ArgumentError struct {
		Kind ArgumentErrorKind
		// Option is the offending flag character for InvalidOption and MissingValue.
		Option byte
		// Arg is the raw argument that carried the error, when there is one.
		Arg string
	}

	// PatternCompileError is returned when a pattern source is not a valid
	// extended regular expression. It wraps ErrInvalidPattern.
	PatternCompileError struct {
		Expr  string
		Cause error
	}

	// PatternFileError is returned when a -f file cannot be opened or read.
	// It wraps ErrPatternFile.
	PatternFileError struct {
		Path  string
		Cause error
	}

	// ScanFileError is returned when a file operand cannot be scanned.
	// It wraps ErrScanFile.
	ScanFileError struct {
		Path  string
		Cause error
	}
)

// Error implements the error interface. The text is the diagnostic body.
func (e *ArgumentError) Error() string {
	switch e.Kind {
	case InvalidOption:
		return "invalid option -- " + string([]byte{e.Option})
	case MissingValue:
		return "option requires an argument -- " + string([]byte{e.Option})
	case ConflictingOptions:
		return "options -o and -v cannot be combined"
	default:
		return "missing pattern or file operand"
	}
}

// Unwrap returns ErrInvalidArguments for errors.Is() compatibility.
func (e *ArgumentError) Unwrap() error { return ErrInvalidArguments }

// Error implements the error interface.
func (e *PatternCompileError) Error() string {
	return "invalid regular expression: " + e.Expr
}

// Unwrap returns ErrInvalidPattern for errors.Is() compatibility.
func (e *PatternCompileError) Unwrap() error { return ErrInvalidPattern }

// Error implements the error interface.
func (e *PatternFileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, describeIOError(e.Cause))
}

// Unwrap returns ErrPatternFile for errors.Is() compatibility.
func (e *PatternFileError) Unwrap() error { return ErrPatternFile }

// Error implements the error interface.
func (e *ScanFileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, describeIOError(e.Cause))
}

// Unwrap returns ErrScanFile for errors.Is() compatibility.
func (e *ScanFileError) Unwrap() error { return ErrScanFile }

// describeIOError renders an open/read failure the way coreutils does.
func describeIOError(err error) string {
	switch {
	case err == nil:
		return "unknown error"
	case errors.Is(err, ErrIsDirectory), errors.Is(err, syscall.EISDIR):
		return "Is a directory"
	case errors.Is(err, fs.ErrNotExist):
		return "No such file or directory"
	case errors.Is(err, fs.ErrPermission):
		return "Permission denied"
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}
