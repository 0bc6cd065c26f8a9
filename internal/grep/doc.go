// SPDX-License-Identifier: MPL-2.0

// Package grep implements the pattern-search utility.
//
// A run is a single forward pipeline:
//
//	raw arguments -> Classify -> Validate -> Build (pattern store) -> file scans -> stdout
//
// Classify tags every argument with a Role and accumulates the Options
// snapshot in argument order, because whether a bare operand is the pattern
// or a file depends on the flags seen before it. Build compiles the pattern
// sources (inline, -e and -f files) with POSIX extended syntax. Each file
// operand is then scanned line by line by an independent state machine that
// feeds the line matcher and the output formatter.
//
// # Diagnostics
//
// Diagnostics are written to the error sink as "grep: <message>". Fatal
// conditions (bad arguments, malformed expressions, unreadable pattern files)
// stop the run before any file is opened. Unreadable file operands fail only
// their own scan; the run continues and reports failure at the end. The -s
// flag silences diagnostics for unreadable files and pattern files.
package grep
