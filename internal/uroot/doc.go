// SPDX-License-Identifier: MPL-2.0

// Package uroot provides the built-in text utilities as registry commands that
// can be invoked directly or from a POSIX shell script interpreted by mvdan/sh.
//
// # Supported Commands
//
//   - cat: Concatenate and display files
//   - grep: Search for patterns in files
//
// # Shell Integration
//
// RunScript parses a script and runs it with an exec handler that checks the
// Registry for each command before falling back to system binaries. A failed
// utility becomes the exit status of the shell command, so constructs like
// "grep x notes.txt || echo unreadable" react to a failed run.
//
// # Error Format
//
// Errors that are not plain exit statuses are prefixed with "[uroot]":
//
//	[uroot] grep: exit status 1: no files to process
//
// The utilities write their own "prog: message" diagnostics to the handler's
// stderr before returning.
package uroot
