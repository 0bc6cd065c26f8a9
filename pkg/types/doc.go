// SPDX-License-Identifier: MPL-2.0

// Package types defines small value types shared by the command-line layer and
// the utilities it runs. It imports only the standard library.
package types
