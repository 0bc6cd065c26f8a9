// SPDX-License-Identifier: MPL-2.0

package uroot

import (
	"context"

	"github.com/textutils/textutils/pkg/types"
)

type (
	// Command defines the interface for built-in utility implementations.
	Command interface {
		// Name returns the command name (e.g., "grep", "cat").
		Name() string

		// Run executes the command. args[0] is the command name. Streams and
		// the working directory come from HandlerContextFrom(ctx).
		Run(ctx context.Context, args []string) error

		// SupportedFlags lists the options in help order.
		SupportedFlags() []FlagInfo
	}

	// FlagInfo describes a single-character option of a built-in command.
	FlagInfo struct {
		// Name is the option character (e.g., "i" for -i).
		Name string
		// Value names the option argument, empty for boolean options.
		Value string
		// Description explains what the flag does.
		Description string
	}

	// ExitCoder is implemented by errors that carry the process status of a
	// failed utility run.
	ExitCoder interface {
		ExitCode() types.ExitCode
	}
)

// TakesValue reports whether the option consumes an argument.
func (f FlagInfo) TakesValue() bool { return f.Value != "" }

// Usage renders the option as it appears on a command line, e.g. "-e PATTERN".
func (f FlagInfo) Usage() string {
	if f.TakesValue() {
		return "-" + f.Name + " " + f.Value
	}
	return "-" + f.Name
}
