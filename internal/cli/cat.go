// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/textutils/textutils/internal/cat"
)

func newCatCommand(s streams) *cobra.Command {
	long := TitleStyle.Render("cat") + SubtitleStyle.Render(" - concatenate files to standard output") + `

` + SubtitleStyle.Render("Options:") + "\n" + flagTable(cat.Name) + `
` + SubtitleStyle.Render("Examples:") + `
  cat -n main.go
  cat -s notes.txt todo.txt`

	return newUtilityCommand(cat.Name, "[-bEnstTeEvA] FILE...", "Concatenate files to standard output", long, s)
}

// CatMain runs the cat binary with the process arguments and returns its exit status.
func CatMain() int {
	return int(execute(context.Background(), newCatCommand(osStreams()), os.Args[1:]))
}
