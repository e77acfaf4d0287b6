// Package split provides field splitting for delimited text lines.
//
// Separators come in three tiers, dispatched at compile time:
//   - " " (the default) splits on runs of ASCII whitespace, ignoring
//     leading and trailing runs, matching AWK's default behavior
//   - a single byte splits on every occurrence of that byte
//   - anything else is compiled as a regular expression (coregex)
//
// The whitespace and single-byte tiers avoid regex machinery entirely.
package split

import (
	"strings"

	"github.com/coregx/coregex"
)

// Whitespace is the default separator: runs of ASCII whitespace.
const Whitespace = " "

type mode int

const (
	modeWhitespace mode = iota
	modeByte
	modeRegex
)

// asciiSpace reports which ASCII bytes count as whitespace for the
// default separator. Matches AWK: space, tab, newline, CR, VT, FF.
var asciiSpace = [256]bool{' ': true, '\t': true, '\n': true, '\v': true, '\f': true, '\r': true}

// Splitter is a compiled field separator.
type Splitter struct {
	fs   string
	mode mode
	sep  byte
	re   *coregex.Regexp
}

// Compile compiles a field separator. A separator of " " selects
// whitespace-run splitting, a single byte selects byte splitting,
// and any other string is compiled as a regular expression.
func Compile(fs string) (*Splitter, error) {
	switch {
	case fs == Whitespace:
		return &Splitter{fs: fs, mode: modeWhitespace}, nil
	case len(fs) == 1:
		return &Splitter{fs: fs, mode: modeByte, sep: fs[0]}, nil
	default:
		re, err := coregex.Compile(fs)
		if err != nil {
			return nil, err
		}
		return &Splitter{fs: fs, mode: modeRegex, re: re}, nil
	}
}

// MustCompile compiles a separator, panicking on error.
func MustCompile(fs string) *Splitter {
	s, err := Compile(fs)
	if err != nil {
		panic(err)
	}
	return s
}

// FS returns the original separator string.
func (s *Splitter) FS() string {
	return s.fs
}

// Split splits line into fields. An empty line always yields a single
// empty field, in every mode.
func (s *Splitter) Split(line string) []string {
	if line == "" {
		return []string{""}
	}
	switch s.mode {
	case modeWhitespace:
		return splitWhitespace(line)
	case modeByte:
		return splitByte(line, s.sep)
	default:
		return s.re.Split(line, -1)
	}
}

// splitWhitespace splits line on runs of whitespace, skipping leading
// and trailing runs.
func splitWhitespace(line string) []string {
	n := len(line)
	fields := make([]string, 0, 8)
	i := 0

	for i < n && asciiSpace[line[i]] {
		i++
	}

	for i < n {
		start := i
		for i < n && !asciiSpace[line[i]] {
			i++
		}
		fields = append(fields, line[start:i])
		for i < n && asciiSpace[line[i]] {
			i++
		}
	}
	return fields
}

// splitByte splits line on every occurrence of sep.
// strings.IndexByte is SIMD-optimized on modern CPUs.
func splitByte(line string, sep byte) []string {
	fields := make([]string, 0, 8)
	for {
		idx := strings.IndexByte(line, sep)
		if idx < 0 {
			break
		}
		fields = append(fields, line[:idx])
		line = line[idx+1:]
	}
	return append(fields, line)
}
