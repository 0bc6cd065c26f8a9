// SPDX-License-Identifier: MPL-2.0

// Package cat implements the line-display utility: it copies files to
// standard output, optionally numbering lines, squeezing runs of blank lines
// and rendering line ends, tabs and non-printable bytes visibly.
//
// Files are processed byte by byte in argument order. Numbering and squeeze
// state restart for every file. A file that cannot be opened is reported and
// skipped; the run still fails.
package cat
