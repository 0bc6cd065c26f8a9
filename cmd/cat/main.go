// SPDX-License-Identifier: MPL-2.0

// Command cat copies files to standard output.
package main

import (
	"os"

	"github.com/textutils/textutils/internal/cli"
)

func main() {
	os.Exit(cli.CatMain())
}
