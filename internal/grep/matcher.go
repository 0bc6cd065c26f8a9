// SPDX-License-Identifier: MPL-2.0

package grep

import (
	"bufio"
	"errors"
	"io"
)

type (
	// lineRecord is the per-file line state. One instance is reused for every
	// line of a file and its buffer is dropped when the scan ends.
	lineRecord struct {
		path    string
		buf     []byte
		number  int
		matches int
	}

	// lineMatcher decides whether a line matches and, in -o mode, emits each
	// matched substring as it is found.
	lineMatcher struct {
		opts  Options
		store *Store
		out   *formatter
	}
)

// next reads one line into rec.buf without the trailing newline. It reports
// false at end of input.
func (rec *lineRecord) next(r *bufio.Reader) (bool, error) {
	rec.buf = rec.buf[:0]
	for {
		chunk, err := r.ReadSlice('\n')
		rec.buf = append(rec.buf, chunk...)
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		if len(rec.buf) == 0 && err != nil {
			return false, nil
		}
		if n := len(rec.buf); n > 0 && rec.buf[n-1] == '\n' {
			rec.buf = rec.buf[:n-1]
		}
		rec.number++
		return true, nil
	}
}

// release drops the line buffer.
func (rec *lineRecord) release() { rec.buf = nil }

func (m *lineMatcher) evaluate(rec *lineRecord) (bool, error) {
	if !m.opts.OnlyMatching {
		matched := m.store.MatchesAny(rec.buf)
		if m.opts.Invert {
			matched = !matched
		}
		return matched, nil
	}

	var found bool
	for from := 0; from <= len(rec.buf); {
		span, ok := m.store.FindNext(rec.buf, from)
		if !ok {
			break
		}
		found = true
		if m.opts.perLineOutput() {
			if err := m.out.writeLine(rec.path, rec.number, rec.buf[span.Start:span.End]); err != nil {
				return found, err
			}
		}
		from = span.End
	}
	return found, nil
}
