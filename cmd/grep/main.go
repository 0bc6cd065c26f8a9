// SPDX-License-Identifier: MPL-2.0

// Command grep prints lines that match extended regular expressions.
package main

import (
	"os"

	"github.com/textutils/textutils/internal/cli"
)

func main() {
	os.Exit(cli.GrepMain())
}
