// SPDX-License-Identifier: MPL-2.0

package cat

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func render(t *testing.T, opts Options, inputs ...string) string {
	t.Helper()

	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	rd := newRenderer(w, opts)
	for _, in := range inputs {
		if err := rd.Render(strings.NewReader(in)); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestRenderer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		opts  Options
		input string
		want  string
	}{
		{name: "plain copy", input: "a\tb\n\x01\n", want: "a\tb\n\x01\n"},
		{name: "number non-blank", opts: Options{NumberNonBlank: true}, input: "a\n\nb\n", want: "     1\ta\n\n     2\tb\n"},
		{name: "number all", opts: Options{NumberAll: true}, input: "a\n\nb\n", want: "     1\ta\n     2\t\n     3\tb\n"},
		{name: "-b overrides -n", opts: Options{NumberAll: true, NumberNonBlank: true}, input: "a\n\nb\n", want: "     1\ta\n\n     2\tb\n"},
		{name: "squeeze three blanks", opts: Options{Squeeze: true}, input: "a\n\n\n\nb\n", want: "a\n\nb\n"},
		{name: "squeeze leading blanks", opts: Options{Squeeze: true}, input: "\n\n\nx\n", want: "\nx\n"},
		{name: "squeeze with numbering", opts: Options{Squeeze: true, NumberAll: true}, input: "a\n\n\nb\n", want: "     1\ta\n     2\t\n     3\tb\n"},
		{name: "show ends", opts: Options{ShowEnds: true}, input: "a\n\n", want: "a$\n$\n"},
		{name: "show tabs", opts: Options{ShowTabs: true}, input: "a\tb\n", want: "a^Ib\n"},
		{name: "tab passes through -v", opts: Options{ShowNonPrinting: true}, input: "a\tb\n", want: "a\tb\n"},
		{name: "caret notation", opts: Options{ShowNonPrinting: true}, input: "\x00\x1b\x7f\n", want: "^@^[^?\n"},
		{name: "meta notation", opts: Options{ShowNonPrinting: true}, input: "\x80\x9f\xa0\xff", want: "M-^@M-^_\xa0\xff"},
		{name: "unterminated last line", opts: Options{NumberAll: true}, input: "a\nb", want: "     1\ta\n     2\tb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := render(t, tt.opts, tt.input); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderer_StateRestartsPerFile(t *testing.T) {
	t.Parallel()

	got := render(t, Options{NumberAll: true}, "a\nb", "c\n")
	if want := "     1\ta\n     2\tb     1\tc\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestIsNonPrinting(t *testing.T) {
	t.Parallel()

	for c := range 256 {
		b := byte(c)
		want := (b < 32 && b != '\n' && b != '\t') || b == 127 || (b >= 128 && b < 160)
		if got := IsNonPrinting(b); got != want {
			t.Errorf("IsNonPrinting(%d) = %v, want %v", c, got, want)
		}
	}
}
