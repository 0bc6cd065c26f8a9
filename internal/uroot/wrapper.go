// SPDX-License-Identifier: MPL-2.0

package uroot

import (
	"errors"
	"fmt"

	"github.com/textutils/textutils/pkg/types"
)

// baseCommand provides the Name and SupportedFlags of a built-in command.
type baseCommand struct {
	name  string
	flags []FlagInfo
}

// Name returns the command name.
func (c *baseCommand) Name() string {
	return c.name
}

// SupportedFlags returns the flags supported by this command.
func (c *baseCommand) SupportedFlags() []FlagInfo {
	return c.flags
}

// wrapError wraps an error with the [uroot] prefix format.
// Returns nil if err is nil.
func wrapError(cmdName string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("[uroot] %s: %w", cmdName, err)
}

// ExitCodeOf returns the process status for an error returned by a Command:
// success for nil, the carried code for an ExitCoder, and failure otherwise.
func ExitCodeOf(err error) types.ExitCode {
	if err == nil {
		return types.ExitSuccess
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return types.ExitFailure
}
