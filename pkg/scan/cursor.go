// Package scan provides the cursor used to walk table-file text.
//
// A Cursor owns an immutable source string and a mutable (position, line) pair.
// It knows nothing about the table schema: it only offers primitive consumption
// operations (advance, read until a delimiter, skip whitespace and comments).
// A single Cursor is shared by every binder call of one parse and must not be
// used from more than one goroutine.
package scan

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

var versionMarker = regexp.MustCompile(`\A;;FSO\x20\d+(?:\.\d+)+;;`)

// IsVersionMarker reports whether s is exactly one version marker.
func IsVersionMarker(s string) bool {
	return versionMarker.FindString(s) == s && s != ""
}

// Mark is an opaque snapshot of a cursor position, used for exact rollback.
type Mark struct {
	pos  int
	line int
}

// Cursor tracks a position and line count within a source text.
type Cursor struct {
	src     string
	pos     int
	line    int
	version string
}

// New creates a cursor positioned at the start of text.
func New(text string) *Cursor {
	return &Cursor{src: text}
}

// Remaining returns the unconsumed suffix of the text.
func (c *Cursor) Remaining() string {
	return c.src[c.pos:]
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Line returns the 1-based line number of the current position.
func (c *Cursor) Line() int {
	return c.line + 1
}

// AtEnd reports whether the whole text has been consumed.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.src)
}

// Version returns the first version marker seen so far, e.g. ";;FSO 23.0.0;;".
func (c *Cursor) Version() string {
	return c.version
}

// Mark snapshots the current position.
func (c *Cursor) Mark() Mark {
	return Mark{pos: c.pos, line: c.line}
}

// Reset restores a position previously taken with Mark.
func (c *Cursor) Reset(m Mark) {
	c.pos = m.pos
	c.line = m.line
}

// Advance moves forward by n bytes, counting the newlines skipped over.
// n is clamped to the remaining length.
func (c *Cursor) Advance(n int) {
	if n <= 0 {
		return
	}
	if rest := len(c.src) - c.pos; n > rest {
		n = rest
	}
	c.line += strings.Count(c.src[c.pos:c.pos+n], "\n")
	c.pos += n
}

// Consume advances past literal if the remaining text starts with it.
func (c *Cursor) Consume(literal string) bool {
	if !strings.HasPrefix(c.Remaining(), literal) {
		return false
	}
	c.Advance(len(literal))
	return true
}

// Snippet returns at most n bytes of the remaining text, cut at the end of the current line.
func (c *Cursor) Snippet(n int) string {
	rest := c.Remaining()
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[:i]
	}
	if len(rest) > n {
		rest = rest[:n]
		for !utf8.ValidString(rest) {
			rest = rest[:len(rest)-1]
		}
	}
	return rest
}

// SkipInlineWhitespace skips whitespace other than newlines, plus any of the extra runes.
func (c *Cursor) SkipInlineWhitespace(extra ...rune) {
	n := 0
	for _, r := range c.Remaining() {
		if r == '\n' {
			break
		}
		if !unicode.IsSpace(r) && !slices.Contains(extra, r) {
			break
		}
		n += utf8.RuneLen(r)
	}
	c.Advance(n)
}

// SkipWhitespaceAndComments skips whitespace, newlines and comments.
//
// It returns the text of the comments it consumed and, if scanning stopped on a
// version marker, the raw marker. The marker itself is consumed. When
// stopAtNewline is set, a bare newline ends the scan without being consumed.
func (c *Cursor) SkipWhitespaceAndComments(stopAtNewline bool) (comments, version string) {
	var sb strings.Builder
	// newline records whether a line break separates the next comment from the previous one.
	newline := false
	for {
		c.SkipInlineWhitespace()
		rest := c.Remaining()
		if rest == "" {
			break
		}

		var comment string
		lineComment := false
		switch {
		case rest[0] == '\n':
			if stopAtNewline {
				return sb.String(), version
			}
			c.Advance(1)
			newline = true
			continue
		case rest[0] == ';':
			if m := versionMarker.FindString(rest); m != "" {
				c.Advance(len(m))
				version = m
				if c.version == "" {
					c.version = m
				}
				return sb.String(), version
			}
			comment = c.ReadUntil("\n", true)
			lineComment = true
		case strings.HasPrefix(rest, "//"):
			comment = c.ReadUntil("\n", true)
			lineComment = true
		case strings.HasPrefix(rest, "/*"), strings.HasPrefix(rest, "!*"):
			start := rest[:1]
			c.Advance(2)
			comment = start + "*" + c.ReadUntil("*"+start, true) + "*" + start
		default:
			return sb.String(), version
		}

		if newline && sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(comment)
		newline = lineComment
	}
	return sb.String(), version
}

// ReadUntil returns the text up to the first occurrence of target, or to the end
// of input. The target is consumed as well when consumeTarget is set and found.
func (c *Cursor) ReadUntil(target string, consumeTarget bool) string {
	rest := c.Remaining()
	i := strings.Index(rest, target)
	if i < 0 {
		c.Advance(len(rest))
		return rest
	}
	n := i
	if consumeTarget {
		n += len(target)
	}
	c.Advance(n)
	return rest[:i]
}

// ReadToEndOfValue returns the rest of the current line up to a comment start or
// newline, with trailing whitespace trimmed. Only the returned text is consumed.
func (c *Cursor) ReadToEndOfValue() string {
	rest := c.Remaining()
	end := len(rest)
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		end = i
	}
	line := rest[:end]
	for _, start := range commentStarts {
		if i := strings.Index(line, start); i >= 0 {
			line = line[:i]
		}
	}
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	c.Advance(len(line))
	return line
}

var commentStarts = []string{";", "//", "/*", "!*"}
