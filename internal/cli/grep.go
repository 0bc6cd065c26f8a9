// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/textutils/textutils/internal/grep"
)

func newGrepCommand(s streams) *cobra.Command {
	long := TitleStyle.Render("grep") + SubtitleStyle.Render(" - print lines that match patterns") + `

Each PATTERN is a POSIX extended regular expression. Without -e or -f the
first operand is the pattern and the rest are files. With several files,
every output line is prefixed by the file name.

` + SubtitleStyle.Render("Options:") + "\n" + flagTable(grep.Name) + `
` + SubtitleStyle.Render("Examples:") + `
  grep -n main *.go
  grep -e foo -e bar notes.txt
  grep -c -f patterns.txt log.txt`

	return newUtilityCommand(
		grep.Name,
		"[-ivclnhsfeo]... [-e PATTERN]... [-f FILE]... [PATTERN] FILE...",
		"Print lines that match patterns",
		long,
		s,
	)
}

// GrepMain runs the grep binary with the process arguments and returns its exit status.
func GrepMain() int {
	return int(execute(context.Background(), newGrepCommand(osStreams()), os.Args[1:]))
}
