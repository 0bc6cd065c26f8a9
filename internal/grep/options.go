// SPDX-License-Identifier: MPL-2.0

package grep

type (
	// Options is the flag state accumulated by Classify. It is a value type:
	// downstream components receive a finished copy and never mutate it.
	Options struct {
		// ExplicitPatterns is set once -e has been seen.
		ExplicitPatterns bool
		// PatternsFromFile is set once -f has been seen.
		PatternsFromFile bool
		// IgnoreCase compiles every pattern case-insensitively (-i).
		IgnoreCase bool
		// Invert selects lines that match no pattern (-v).
		Invert bool
		// CountOnly prints one count per file instead of lines (-c).
		CountOnly bool
		// FilesWithMatches prints the names of files with a selected line (-l).
		FilesWithMatches bool
		// LineNumbers prefixes output with the 1-based line number (-n).
		LineNumbers bool
		// NoFilename never prefixes output with the file path (-h).
		NoFilename bool
		// SuppressErrors silences unreadable file diagnostics (-s).
		SuppressErrors bool
		// OnlyMatching prints each matched substring on its own line (-o).
		OnlyMatching bool

		// InlinePatterns counts bare operands promoted to the pattern role.
		InlinePatterns int
		// FileOperands counts arguments classified as file paths.
		FileOperands int
	}
)

// ShowFilename reports whether output lines carry a "path:" prefix.
func (o Options) ShowFilename() bool {
	return o.FileOperands > 1 && !o.NoFilename
}

// perLineOutput reports whether selected lines are printed as they are found.
// Count and list modes only print a per-file summary.
func (o Options) perLineOutput() bool {
	return !o.CountOnly && !o.FilesWithMatches
}
