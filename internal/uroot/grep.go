// SPDX-License-Identifier: MPL-2.0

package uroot

import (
	"context"

	"github.com/textutils/textutils/internal/grep"
)

// grepCommand exposes the grep utility.
type grepCommand struct {
	baseCommand
}

func newGrepCommand() *grepCommand {
	return &grepCommand{
		baseCommand: baseCommand{
			name: grep.Name,
			flags: []FlagInfo{
				{Name: "e", Value: "PATTERN", Description: "use PATTERN for matching (repeatable)"},
				{Name: "f", Value: "FILE", Description: "obtain patterns from FILE, one per line"},
				{Name: "i", Description: "ignore case distinctions"},
				{Name: "v", Description: "select non-matching lines"},
				{Name: "c", Description: "print only a count of selected lines per file"},
				{Name: "l", Description: "print only names of files with selected lines"},
				{Name: "n", Description: "prefix each line with its line number"},
				{Name: "h", Description: "never prefix lines with the file name"},
				{Name: "s", Description: "suppress messages about unreadable files"},
				{Name: "o", Description: "print only the matched parts of lines"},
			},
		},
	}
}

// Run executes grep with the handler context streams and working directory.
func (c *grepCommand) Run(ctx context.Context, args []string) error {
	return wrapError(c.name, grep.Run(ctx, HandlerContextFrom(ctx).grepEnv(), args))
}
