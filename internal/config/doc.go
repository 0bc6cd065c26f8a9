// SPDX-License-Identifier: MPL-2.0

// Package config handles textutils configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/textutils/config.cue (or the XDG equivalent on Linux,
// ~/Library/Application Support/textutils/config.cue on macOS, %APPDATA%\textutils\config.cue
// on Windows). It only tunes the diagnostic logger; matching and output never depend on it.
//
// The file is validated against an embedded CUE schema (config_schema.cue).
package config
