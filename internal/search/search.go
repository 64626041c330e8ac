// Package search implements the line filter and the file source it reads from.
package search

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// FilterLines returns the lines of contents that contain query, in their
// original order. When caseSensitive is false both query and line are lowered
// for the comparison only; the returned lines are never modified.
func FilterLines(query, contents string, caseSensitive bool) []string {
	if caseSensitive {
		return filter(contents, func(line string) bool {
			return strings.Contains(line, query)
		})
	}
	q := lower(query)
	return filter(contents, func(line string) bool {
		return strings.Contains(lower(line), q)
	})
}

func filter(contents string, match func(string) bool) []string {
	out := make([]string, 0)
	for line := range lines(contents) {
		if match(line) {
			out = append(out, line)
		}
	}
	return out
}

// lines yields contents split on "\n". The terminator, and a "\r" directly
// before it, are dropped; a final terminator does not yield an empty line.
func lines(contents string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(contents) {
			if l, ok := strings.CutSuffix(line, "\n"); ok {
				line = strings.TrimSuffix(l, "\r")
			}
			if !yield(line) {
				return
			}
		}
	}
}

// lower maps each rune to lower case. Unlike strings.ToLower, bytes that are
// not valid UTF-8 are copied as they are instead of becoming U+FFFD.
func lower(s string) string {
	if utf8.ValidString(s) {
		return strings.ToLower(s)
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(s[i])
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		i += size
	}
	return b.String()
}
