// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// ExitSuccess: the run completed without a fatal condition, whether or
	// not anything matched.
	ExitSuccess ExitCode = 0
	// ExitFailure covers argument, pattern and file errors.
	ExitFailure ExitCode = 1
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode is the process status a utility run ends with. POSIX limits
	// it to 0-255.
	ExitCode int

	// InvalidExitCodeError reports an ExitCode outside 0-255.
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be in range 0-255)", e.Value)
}

// Unwrap returns ErrInvalidExitCode.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate returns an *InvalidExitCodeError if c is outside 0-255.
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// Status returns c as a shell exit status byte. Codes outside 0-255 become
// ExitFailure rather than wrapping around to success.
func (c ExitCode) Status() uint8 {
	if c.Validate() != nil {
		return uint8(ExitFailure)
	}
	return uint8(c)
}

func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
