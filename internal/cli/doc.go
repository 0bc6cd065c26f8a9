// SPDX-License-Identifier: MPL-2.0

// Package cli contains the cobra root commands of the grep and cat binaries.
//
// Both commands hand their raw arguments to the utilities untouched: option
// handling, diagnostics and exit status belong to the utilities themselves.
// This package only wires configuration, logging and process streams.
package cli
