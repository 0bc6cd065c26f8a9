// SPDX-License-Identifier: MPL-2.0

package cat

import (
	"bufio"
	"errors"
	"io"
	"strconv"
)

// renderer copies one input stream at a time to a buffered output, applying
// the selected Options. Its state covers a single file.
type renderer struct {
	opts Options
	w    *bufio.Writer

	prev   byte
	line   int
	blanks int
}

func newRenderer(w *bufio.Writer, opts Options) *renderer {
	return &renderer{opts: opts, w: w}
}

// Render copies r to the output, resetting numbering and squeeze state first.
func (rd *renderer) Render(r io.Reader) error {
	rd.prev = '\n'
	rd.line = 1
	rd.blanks = 0

	br := bufio.NewReader(r)
	for {
		c, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := rd.put(c); err != nil {
			return err
		}
	}
}

func (rd *renderer) put(c byte) error {
	if rd.opts.Squeeze {
		switch {
		case c != '\n' || rd.prev != '\n':
			rd.blanks = 0
		default:
			rd.blanks++
			if rd.blanks > 1 {
				return nil
			}
		}
	}

	if rd.prev == '\n' && rd.numbered(c) {
		buf := rd.w.AvailableBuffer()
		buf = appendLineNumber(buf, rd.line)
		if _, err := rd.w.Write(buf); err != nil {
			return err
		}
		rd.line++
	}

	rd.prev = c
	_, err := rd.w.Write(Visible(rd.w.AvailableBuffer(), c, rd.opts))
	return err
}

func (rd *renderer) numbered(c byte) bool {
	if rd.opts.NumberNonBlank {
		return c != '\n'
	}
	return rd.opts.NumberAll
}

// appendLineNumber appends n right-aligned in six columns followed by a tab.
func appendLineNumber(dst []byte, n int) []byte {
	digits := strconv.Itoa(n)
	for i := len(digits); i < 6; i++ {
		dst = append(dst, ' ')
	}
	dst = append(dst, digits...)
	return append(dst, '\t')
}

// IsNonPrinting reports whether c is rendered in caret or meta notation under -v.
// Newline and tab are printable; bytes 160-255 pass through unchanged.
func IsNonPrinting(c byte) bool {
	return (c < 32 && c != '\n' && c != '\t') || c == 127 || (c >= 128 && c <= 159)
}

// Visible appends the rendering of the single byte c to dst.
func Visible(dst []byte, c byte, opts Options) []byte {
	switch {
	case c == '\t' && opts.ShowTabs:
		return append(dst, '^', 'I')
	case c == '\n':
		if opts.ShowEnds {
			dst = append(dst, '$')
		}
		return append(dst, '\n')
	case opts.ShowNonPrinting && IsNonPrinting(c):
		switch {
		case c == 127:
			return append(dst, '^', '?')
		case c < 127:
			return append(dst, '^', c+64)
		default:
			return append(dst, 'M', '-', '^', c-64)
		}
	default:
		return append(dst, c)
	}
}
