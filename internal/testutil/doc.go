// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Common helpers include fixture files (MustWriteFile, WriteFiles, MustMkdirAll),
// environment variable management (MustSetenv, MustUnsetenv, SetHomeDir,
// SetConfigHome) and resource cleanup (MustClose).
package testutil
