// SPDX-License-Identifier: MPL-2.0

package grep

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"regexp/syntax"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

type (
	// Span is a half-open [Start, End) byte range of a match inside one line.
	Span struct {
		Start int
		End   int
	}

	// Pattern is one compiled extended regular expression.
	Pattern struct {
		// source is the pattern text as given on the command line or in a pattern file.
		source string
		re     *regexp.Regexp
		// tail is re with every begin-of-line anchor turned into a no-match,
		// for searching a line suffix that does not start the line.
		tail *regexp.Regexp
	}

	// Store owns the compiled patterns of one run, kept in acquisition order.
	Store struct {
		patterns []*Pattern
	}
)

// CompilePattern compiles expr as a POSIX extended regular expression with
// leftmost-longest match semantics.
func CompilePattern(expr string, ignoreCase bool) (*Pattern, error) {
	// Perl extensions (\d, lazy quantifiers, (?flags)) are rejected up front.
	if _, err := syntax.Parse(expr, syntax.POSIX); err != nil {
		return nil, &PatternCompileError{Expr: expr, Cause: err}
	}

	src := expr
	if ignoreCase {
		src = "(?i)" + expr
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, &PatternCompileError{Expr: expr, Cause: err}
	}
	re.Longest()

	tail, err := compileTail(src, re)
	if err != nil {
		return nil, &PatternCompileError{Expr: expr, Cause: err}
	}

	return &Pattern{source: expr, re: re, tail: tail}, nil
}

// compileTail returns re unchanged when src has no begin-of-line anchor.
func compileTail(src string, re *regexp.Regexp) (*regexp.Regexp, error) {
	tree, err := syntax.Parse(src, syntax.Perl)
	if err != nil {
		return nil, err
	}
	if !dropBeginAnchors(tree) {
		return re, nil
	}
	tail, err := regexp.Compile(tree.String())
	if err != nil {
		return nil, err
	}
	tail.Longest()
	return tail, nil
}

func dropBeginAnchors(re *syntax.Regexp) bool {
	switch re.Op {
	case syntax.OpBeginLine, syntax.OpBeginText:
		re.Op = syntax.OpNoMatch
		return true
	}
	changed := false
	for _, sub := range re.Sub {
		if dropBeginAnchors(sub) {
			changed = true
		}
	}
	return changed
}

// Match reports whether the pattern matches anywhere in line.
func (p *Pattern) Match(line []byte) bool {
	return p.re.Match(line)
}

// nextSpan returns the first non-empty match of p in line starting at or after
// from. The search covers only line[from:]; an empty match moves the search on
// by one rune.
func (p *Pattern) nextSpan(line []byte, from int) (Span, bool) {
	for from <= len(line) {
		re := p.re
		if from > 0 {
			re = p.tail
		}
		loc := re.FindIndex(line[from:])
		if loc == nil {
			return Span{}, false
		}
		start, end := from+loc[0], from+loc[1]
		if end > start {
			return Span{Start: start, End: end}, true
		}
		_, size := utf8.DecodeRune(line[start:])
		from = start + max(size, 1)
	}
	return Span{}, false
}

// NewStore returns a Store holding the given patterns in order.
func NewStore(patterns ...*Pattern) *Store {
	return &Store{patterns: patterns}
}

// Build acquires every pattern of a classified run. Inline and -e patterns are
// compiled first, then each -f file is read line by line when -f was given.
// Relative pattern file paths are resolved against dir.
//
// Any compile failure aborts the build. An unreadable pattern file aborts it
// too, unless suppress-errors is set, in which case the file is skipped.
func Build(ctx context.Context, c *Classification, dir string) (*Store, error) {
	logger := log.FromContext(ctx)
	opts := c.Options
	store := &Store{}

	for _, expr := range c.Values(RolePattern) {
		if err := store.add(expr, opts.IgnoreCase); err != nil {
			return nil, err
		}
	}

	if opts.PatternsFromFile {
		for _, path := range c.Values(RolePatternFile) {
			lines, err := readPatternFile(resolvePath(dir, path))
			if err != nil {
				if opts.SuppressErrors {
					logger.Debug("skipping pattern file", "path", path, "err", err)
					continue
				}
				return nil, &PatternFileError{Path: path, Cause: err}
			}
			for _, expr := range lines {
				if err := store.add(expr, opts.IgnoreCase); err != nil {
					return nil, err
				}
			}
			logger.Debug("pattern file loaded", "path", path, "patterns", len(lines))
		}
	}

	logger.Debug("patterns compiled", "count", store.Len(), "ignore_case", opts.IgnoreCase)
	return store, nil
}

// Len returns the number of stored patterns.
func (s *Store) Len() int { return len(s.patterns) }

// MatchesAny reports whether at least one stored pattern matches line.
func (s *Store) MatchesAny(line []byte) bool {
	for _, p := range s.patterns {
		if p.Match(line) {
			return true
		}
	}
	return false
}

// FindNext returns the next non-empty match span in line at or after from.
// Across patterns the earliest start wins, then the longest span, then the
// pattern acquired first.
func (s *Store) FindNext(line []byte, from int) (Span, bool) {
	var (
		best  Span
		found bool
	)
	for _, p := range s.patterns {
		span, ok := p.nextSpan(line, from)
		if !ok {
			continue
		}
		if !found || span.Start < best.Start || (span.Start == best.Start && span.End > best.End) {
			best, found = span, true
		}
	}
	return best, found
}

func (s *Store) add(expr string, ignoreCase bool) error {
	p, err := CompilePattern(expr, ignoreCase)
	if err != nil {
		// Drop everything compiled so far; the run aborts.
		s.patterns = nil
		return err
	}
	s.patterns = append(s.patterns, p)
	return nil
}

// readPatternFile returns one pattern source per physical line. The trailing
// newline is stripped and a final unterminated line still counts.
func readPatternFile(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, ErrIsDirectory
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimSuffix(line, "\n"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func resolvePath(dir, path string) string {
	if dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
