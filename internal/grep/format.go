// SPDX-License-Identifier: MPL-2.0

package grep

import (
	"bufio"
	"io"
	"strconv"
)

// formatter writes formatted output lines through a buffered writer.
type formatter struct {
	opts Options
	w    *bufio.Writer
}

// appendLine appends one formatted output line, including the trailing
// newline, to dst. The path prefix is present iff several file operands were
// given and -h is not set; the line number prefix iff -n is set.
func appendLine(dst []byte, path string, number int, content []byte, opts Options) []byte {
	if opts.ShowFilename() {
		dst = append(dst, path...)
		dst = append(dst, ':')
	}
	if opts.LineNumbers {
		dst = strconv.AppendInt(dst, int64(number), 10)
		dst = append(dst, ':')
	}
	dst = append(dst, content...)
	return append(dst, '\n')
}

func newFormatter(w io.Writer, opts Options) *formatter {
	return &formatter{opts: opts, w: bufio.NewWriter(w)}
}

func (f *formatter) writeLine(path string, number int, content []byte) error {
	buf := f.w.AvailableBuffer()
	_, err := f.w.Write(appendLine(buf, path, number, content, f.opts))
	return err
}

// writeCount prints the per-file count of -c, with the same path prefix rule.
func (f *formatter) writeCount(path string, count int) error {
	buf := f.w.AvailableBuffer()
	if f.opts.ShowFilename() {
		buf = append(buf, path...)
		buf = append(buf, ':')
	}
	buf = strconv.AppendInt(buf, int64(count), 10)
	buf = append(buf, '\n')
	_, err := f.w.Write(buf)
	return err
}

func (f *formatter) writePath(path string) error {
	buf := f.w.AvailableBuffer()
	buf = append(buf, path...)
	buf = append(buf, '\n')
	_, err := f.w.Write(buf)
	return err
}

func (f *formatter) flush() error { return f.w.Flush() }
