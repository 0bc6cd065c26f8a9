// SPDX-License-Identifier: MPL-2.0

package uroot

import (
	"context"

	"github.com/textutils/textutils/internal/cat"
)

// catCommand exposes the cat utility.
type catCommand struct {
	baseCommand
}

func newCatCommand() *catCommand {
	return &catCommand{
		baseCommand: baseCommand{
			name: cat.Name,
			flags: []FlagInfo{
				{Name: "b", Description: "number non-blank output lines (overrides -n)"},
				{Name: "n", Description: "number all output lines"},
				{Name: "s", Description: "squeeze repeated blank lines"},
				{Name: "E", Description: "display $ at the end of each line"},
				{Name: "e", Description: "equivalent to -vE"},
				{Name: "T", Description: "display TAB characters as ^I"},
				{Name: "t", Description: "equivalent to -vT"},
				{Name: "v", Description: "use ^ and M- notation, except for newline and TAB"},
				{Name: "A", Description: "equivalent to -vET"},
			},
		},
	}
}

// Run executes cat with the handler context streams and working directory.
func (c *catCommand) Run(ctx context.Context, args []string) error {
	return wrapError(c.name, cat.Run(ctx, HandlerContextFrom(ctx).catEnv(), args))
}
