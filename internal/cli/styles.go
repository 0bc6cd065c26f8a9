// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/textutils/textutils/internal/uroot"
)

// Color palette shared by the help screens.
const (
	// ColorPrimary is purple - used for titles.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for section headers.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorHighlight is blue - used for flags and example invocations.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for the program name.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// FlagStyle is for flag names in option tables.
	FlagStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

// flagTable renders the options of the named utility as "-x  description"
// rows with an aligned, styled flag column.
func flagTable(name string) string {
	cmd, ok := uroot.DefaultRegistry.Lookup(name)
	if !ok {
		return ""
	}
	flags := cmd.SupportedFlags()

	width := 0
	for _, f := range flags {
		width = max(width, len(f.Usage()))
	}

	var b strings.Builder
	for _, f := range flags {
		usage := f.Usage()
		b.WriteString("  ")
		b.WriteString(FlagStyle.Render(usage))
		b.WriteString(strings.Repeat(" ", width-len(usage)+2))
		b.WriteString(f.Description)
		b.WriteByte('\n')
	}
	return b.String()
}
