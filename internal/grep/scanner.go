// SPDX-License-Identifier: MPL-2.0

package grep

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

const (
	stateOpening scanState = iota
	stateScanning
	stateClosing
	stateDone
	stateFailed
)

type (
	scanState int

	// fileScanner runs the per-file state machine for every file operand of a run.
	fileScanner struct {
		opts    Options
		dir     string
		matcher *lineMatcher
		out     *formatter
		stderr  io.Writer
		logger  *log.Logger
	}
)

func (s scanState) String() string {
	switch s {
	case stateOpening:
		return "opening"
	case stateScanning:
		return "scanning"
	case stateClosing:
		return "closing"
	case stateDone:
		return "done"
	case stateFailed:
		return "failed"
	default:
		return fmt.Sprintf("scanState(%d)", int(s))
	}
}

// scan processes one file operand. A returned error has already been
// reported on stderr (unless -s is set); the caller only records it.
func (sc *fileScanner) scan(path string) error {
	var (
		f      *os.File
		r      *bufio.Reader
		rec    = &lineRecord{path: path}
		failed error
	)
	defer func() {
		if f != nil {
			_ = f.Close()
		}
	}()

	state := stateOpening
	for state != stateDone {
		sc.logger.Debug("scan state", "path", path, "state", state)

		switch state {
		case stateOpening:
			f, failed = sc.open(path)
			if failed != nil {
				state = stateFailed
				continue
			}
			r = bufio.NewReader(f)
			state = stateScanning

		case stateScanning:
			if failed = sc.scanLines(r, rec); failed != nil {
				failed = &ScanFileError{Path: path, Cause: failed}
			}
			state = stateClosing

		case stateClosing:
			if failed == nil {
				failed = sc.summarize(rec)
			}
			rec.release()
			closeErr := f.Close()
			f = nil
			if failed == nil && closeErr != nil {
				failed = &ScanFileError{Path: path, Cause: closeErr}
			}
			if flushErr := sc.out.flush(); failed == nil {
				failed = flushErr
			}
			if failed != nil {
				state = stateFailed
				continue
			}
			sc.logger.Debug("file scanned", "path", path, "lines", rec.number, "matches", rec.matches)
			state = stateDone

		case stateFailed:
			// Pending output precedes the diagnostic.
			_ = sc.out.flush()
			if !sc.opts.SuppressErrors {
				fmt.Fprintf(sc.stderr, "%s: %s\n", Name, failed)
			}
			return failed

		default:
			state = stateDone
		}
	}
	return nil
}

func (sc *fileScanner) open(path string) (*os.File, error) {
	resolved := resolvePath(sc.dir, path)
	info, err := os.Stat(resolved)
	if err != nil {
		return nil, &ScanFileError{Path: path, Cause: err}
	}
	if info.IsDir() {
		return nil, &ScanFileError{Path: path, Cause: ErrIsDirectory}
	}
	f, err := os.Open(resolved)
	if err != nil {
		return nil, &ScanFileError{Path: path, Cause: err}
	}
	return f, nil
}

func (sc *fileScanner) scanLines(r *bufio.Reader, rec *lineRecord) error {
	for {
		ok, err := rec.next(r)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		matched, err := sc.matcher.evaluate(rec)
		if err != nil {
			return err
		}
		if !matched {
			continue
		}
		rec.matches++
		if !sc.opts.OnlyMatching && sc.opts.perLineOutput() {
			if err := sc.out.writeLine(rec.path, rec.number, rec.buf); err != nil {
				return err
			}
		}
	}
}

// summarize prints the per-file line of -c and -l. With both set, a file
// without matches prints nothing and any other file counts as 1.
func (sc *fileScanner) summarize(rec *lineRecord) error {
	switch {
	case sc.opts.CountOnly && sc.opts.FilesWithMatches:
		if rec.matches == 0 {
			return nil
		}
		return sc.out.writeCount(rec.path, 1)
	case sc.opts.CountOnly:
		return sc.out.writeCount(rec.path, rec.matches)
	case sc.opts.FilesWithMatches && rec.matches > 0:
		return sc.out.writePath(rec.path)
	}
	return nil
}
