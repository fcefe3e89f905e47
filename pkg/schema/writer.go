package schema

import (
	"fmt"
	"strings"
)

// Writer accumulates table text. Lines started while indented are prefixed
// with one tab per level.
type Writer struct {
	sb        strings.Builder
	depth     int
	lineStart bool
}

// NewWriter creates an empty writer.
func NewWriter() *Writer {
	return &Writer{lineStart: true}
}

// WriteString appends s, indenting every line that starts inside it.
func (w *Writer) WriteString(s string) {
	for s != "" {
		if w.lineStart && s[0] != '\n' {
			w.sb.WriteString(strings.Repeat("\t", w.depth))
			w.lineStart = false
		}
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			w.sb.WriteString(s)
			return
		}
		w.sb.WriteString(s[:i+1])
		w.lineStart = true
		s = s[i+1:]
	}
}

// Indent increases the indentation of subsequent lines.
func (w *Writer) Indent() { w.depth++ }

// Dedent decreases the indentation of subsequent lines.
func (w *Writer) Dedent() {
	if w.depth > 0 {
		w.depth--
	}
}

// String returns the text written so far.
func (w *Writer) String() string {
	return w.sb.String()
}

// Spew writes v using t and returns the text.
func Spew(t Type, v any) (string, error) {
	w := NewWriter()
	if err := t.Spew(w, v); err != nil {
		return "", err
	}
	return w.String(), nil
}

// Describe renders the grammar of t and of every record or variant reachable from it.
func Describe(t Type) string {
	var sb strings.Builder
	seen := map[string]bool{}
	var walk func(Type)
	walk = func(t Type) {
		if seen[t.Name()] {
			return
		}
		switch tt := t.(type) {
		case *RecordType:
			seen[t.Name()] = true
			fmt.Fprintf(&sb, "%s:\n", tt.name)
			for _, f := range tt.fields {
				if !f.skip {
					fmt.Fprintf(&sb, "\t%s\n", f.describe())
				}
			}
			for _, f := range tt.fields {
				if !f.skip {
					walk(f.typ)
				}
			}
		case *VariantType:
			seen[t.Name()] = true
			fmt.Fprintf(&sb, "%s: one of\n", tt.name)
			for _, c := range tt.cases {
				parts := []string{tt.literal(c)}
				for _, f := range c.fields {
					parts = append(parts, f.describe())
				}
				fmt.Fprintf(&sb, "\t%s\n", strings.Join(parts, " "))
			}
			for _, c := range tt.cases {
				for _, f := range c.fields {
					walk(f.typ)
				}
			}
		}
	}
	walk(t)
	return sb.String()
}
