package schema

import (
	"errors"
	"fmt"

	"github.com/aretw0/curvedit/pkg/scan"
)

// SnippetLength bounds the excerpt of unconsumed input quoted in diagnostics.
const SnippetLength = 20

// State is the scan state shared by every Bind call of one parse.
// It embeds the cursor and remembers the failure that got furthest into the
// text, which is what a caller wants to see once a repetition has swallowed it.
type State struct {
	*scan.Cursor

	deepest *ParseError
}

// NewState creates a state positioned at the start of text.
func NewState(text string) *State {
	return &State{Cursor: scan.New(text)}
}

// Fail builds a ParseError at the current position and records it as a
// candidate for the deepest failure.
func (s *State) Fail(kind error, format string, args ...any) *ParseError {
	err := &ParseError{
		Line:   s.Line(),
		Reason: fmt.Sprintf(format, args...),
		Kind:   kind,
		pos:    s.Pos(),
	}
	s.note(err)
	return err
}

// Deepest returns the failure that was raised furthest into the text, if any.
func (s *State) Deepest() *ParseError {
	return s.deepest
}

// within prefixes the reason of err with the name of the enclosing field or case.
func (s *State) within(name string, err error) error {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return fmt.Errorf("%s: %w", name, err)
	}
	wrapped := &ParseError{
		Line:   pe.Line,
		Reason: name + ": " + pe.Reason,
		Kind:   pe.Kind,
		pos:    pe.pos,
	}
	s.note(wrapped)
	return wrapped
}

// skipTrivia skips whitespace and comments, including any version markers
// along the way; the cursor remembers the first marker.
func (s *State) skipTrivia(stopAtNewline bool) {
	for {
		if _, version := s.SkipWhitespaceAndComments(stopAtNewline); version == "" {
			return
		}
	}
}

func (s *State) note(err *ParseError) {
	if s.deepest == nil || err.pos >= s.deepest.pos {
		s.deepest = err
	}
}

// Bind binds t against the whole of text. Anything but whitespace and comments
// left after the value is an ErrTrailing failure that quotes the deepest
// failure seen along the way.
func Bind(t Type, text string) (any, *State, error) {
	s := NewState(text)
	v, err := t.Bind(s)
	if err != nil {
		return nil, s, err
	}

	s.skipTrivia(false)
	if s.AtEnd() {
		return v, s, nil
	}

	deepest := s.deepest
	trailing := &ParseError{
		Line:   s.Line(),
		Reason: fmt.Sprintf("unexpected input %q", s.Snippet(SnippetLength)),
		Kind:   ErrTrailing,
		pos:    s.Pos(),
	}
	if deepest != nil && deepest.pos >= trailing.pos {
		trailing.Reason += fmt.Sprintf(" (line %d: %s)", deepest.Line, deepest.Reason)
	}
	return nil, s, trailing
}
