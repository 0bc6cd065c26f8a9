// SPDX-License-Identifier: MPL-2.0

// Package logging builds the diagnostic logger shared by the utilities.
//
// The logger writes to stderr beside the utilities' own diagnostics, so the
// default level is warn and every component traces at debug level only.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	// FormatText renders human-readable lines.
	FormatText Format = "text"
	// FormatJSON renders one JSON object per line.
	FormatJSON Format = "json"
	// FormatLogfmt renders logfmt key=value pairs.
	FormatLogfmt Format = "logfmt"

	// DefaultLevel is used when no level is configured.
	DefaultLevel = "warn"
)

var (
	// ErrInvalidLevel is the sentinel error wrapped by InvalidLevelError.
	ErrInvalidLevel = errors.New("invalid log level")
	// ErrInvalidFormat is the sentinel error wrapped by InvalidFormatError.
	ErrInvalidFormat = errors.New("invalid log format")
)

type (
	// Format names a log output format.
	Format string

	// Options configures New.
	Options struct {
		// Prefix is printed before every message, typically the program name.
		Prefix string
		// Level is one of debug, info, warn, error. Empty means DefaultLevel.
		Level string
		// Format is one of text, json, logfmt. Empty means text.
		Format Format
		// Timestamps adds the time to every record.
		Timestamps bool
	}

	// InvalidLevelError is returned when Options.Level is not a known level.
	InvalidLevelError struct {
		Value string
	}

	// InvalidFormatError is returned when Options.Format is not a known format.
	InvalidFormatError struct {
		Value Format
	}
)

// Error implements the error interface.
func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns ErrInvalidLevel for errors.Is() compatibility.
func (e *InvalidLevelError) Unwrap() error { return ErrInvalidLevel }

// Error implements the error interface.
func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid log format %q (valid: text, json, logfmt)", e.Value)
}

// Unwrap returns ErrInvalidFormat for errors.Is() compatibility.
func (e *InvalidFormatError) Unwrap() error { return ErrInvalidFormat }

// New returns a logger writing to w. Invalid options produce an error and no logger.
func New(w io.Writer, opts Options) (*log.Logger, error) {
	levelName := strings.ToLower(strings.TrimSpace(opts.Level))
	if levelName == "" {
		levelName = DefaultLevel
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, &InvalidLevelError{Value: opts.Level}
	}

	formatter, err := opts.Format.formatter()
	if err != nil {
		return nil, err
	}

	return log.NewWithOptions(w, log.Options{
		Prefix:          opts.Prefix,
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: opts.Timestamps,
	}), nil
}

// Discard returns a logger that drops every record.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

func (f Format) formatter() (log.Formatter, error) {
	switch f {
	case "", FormatText:
		return log.TextFormatter, nil
	case FormatJSON:
		return log.JSONFormatter, nil
	case FormatLogfmt:
		return log.LogfmtFormatter, nil
	default:
		return 0, &InvalidFormatError{Value: f}
	}
}
