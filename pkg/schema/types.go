package schema

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Type defines the contract for a bindable table value.
// Implementations must leave the cursor untouched when Bind fails.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "string", "float").
	Name() string
	// Bind consumes one value at the current position.
	Bind(s *State) (any, error)
	// Spew writes v back in the form Bind accepts.
	Spew(w *Writer, v any) error
}

var (
	floatLiteral = regexp.MustCompile(`\A[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`)
	intLiteral   = regexp.MustCompile(`\A[+-]?\d+`)
	boolLiteral  = regexp.MustCompile(`\A(?i:yes|no|true|false)\b`)
)

// --- Built-in Type Implementations ---

// StringType binds free text up to the end of the value on the current line.
type StringType struct{}

func (t *StringType) Name() string { return "string" }

func (t *StringType) Bind(s *State) (any, error) {
	m := s.Mark()
	s.SkipInlineWhitespace()
	v := s.ReadToEndOfValue()
	if v == "" {
		err := s.Fail(ErrTypeMismatch, "expected string, got %q", s.Snippet(SnippetLength))
		s.Reset(m)
		return nil, err
	}
	return v, nil
}

func (t *StringType) Spew(w *Writer, v any) error {
	str, ok := v.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", v)
	}
	if str == "" || str != strings.TrimSpace(str) || strings.ContainsAny(str, "\r\n") {
		return fmt.Errorf("%w: string %q", ErrUnrepresentable, str)
	}
	for _, start := range []string{";", "//", "/*", "!*"} {
		if strings.Contains(str, start) {
			return fmt.Errorf("%w: string %q contains %q", ErrUnrepresentable, str, start)
		}
	}
	w.WriteString(str)
	return nil
}

// FloatType binds a decimal floating-point literal as float64, or as float32
// when created with Float32.
type FloatType struct {
	bits int
}

func (t *FloatType) Name() string { return "float" }

func (t *FloatType) Bind(s *State) (any, error) {
	m := s.Mark()
	s.SkipInlineWhitespace()
	lit := floatLiteral.FindString(s.Remaining())
	if lit == "" {
		err := s.Fail(ErrTypeMismatch, "expected float, got %q", s.Snippet(SnippetLength))
		s.Reset(m)
		return nil, err
	}
	f, err := strconv.ParseFloat(lit, t.size())
	if err != nil {
		err := s.Fail(ErrTypeMismatch, "float %s out of range for %d bits", lit, t.size())
		s.Reset(m)
		return nil, err
	}
	s.Advance(len(lit))
	s.SkipInlineWhitespace()
	if t.size() == 32 {
		return float32(f), nil
	}
	return f, nil
}

func (t *FloatType) size() int {
	if t.bits == 32 {
		return 32
	}
	return 64
}

func (t *FloatType) Spew(w *Writer, v any) error {
	var f float64
	bits := 64
	switch x := v.(type) {
	case float32:
		f, bits = float64(x), 32
	case float64:
		f = x
	default:
		return fmt.Errorf("expected float, got %T", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: float %v", ErrUnrepresentable, f)
	}
	w.WriteString(strconv.FormatFloat(f, 'g', -1, bits))
	return nil
}

// IntType binds a decimal integer literal as int64.
type IntType struct{}

func (t *IntType) Name() string { return "int" }

func (t *IntType) Bind(s *State) (any, error) {
	m := s.Mark()
	s.SkipInlineWhitespace()
	rest := s.Remaining()
	lit := intLiteral.FindString(rest)
	i, err := strconv.ParseInt(lit, 10, 64)
	if lit == "" || err != nil || strings.HasPrefix(rest[len(lit):], ".") {
		err := s.Fail(ErrTypeMismatch, "expected int, got %q", s.Snippet(SnippetLength))
		s.Reset(m)
		return nil, err
	}
	s.Advance(len(lit))
	s.SkipInlineWhitespace()
	return i, nil
}

func (t *IntType) Spew(w *Writer, v any) error {
	switch i := v.(type) {
	case int:
		w.WriteString(strconv.Itoa(i))
	case int64:
		w.WriteString(strconv.FormatInt(i, 10))
	default:
		return fmt.Errorf("expected int, got %T", v)
	}
	return nil
}

// BoolType binds YES/NO or TRUE/FALSE, case-insensitively.
type BoolType struct{}

func (t *BoolType) Name() string { return "bool" }

func (t *BoolType) Bind(s *State) (any, error) {
	m := s.Mark()
	s.SkipInlineWhitespace()
	lit := boolLiteral.FindString(s.Remaining())
	if lit == "" {
		err := s.Fail(ErrTypeMismatch, "expected bool, got %q", s.Snippet(SnippetLength))
		s.Reset(m)
		return nil, err
	}
	s.Advance(len(lit))
	s.SkipInlineWhitespace()
	switch strings.ToLower(lit) {
	case "yes", "true":
		return true, nil
	default:
		return false, nil
	}
}

func (t *BoolType) Spew(w *Writer, v any) error {
	b, ok := v.(bool)
	if !ok {
		return fmt.Errorf("expected bool, got %T", v)
	}
	if b {
		w.WriteString("YES")
	} else {
		w.WriteString("NO")
	}
	return nil
}

// --- Factory Functions ---

// String creates a free-text type.
func String() Type { return &StringType{} }

// Float creates a floating-point type.
func Float() Type { return &FloatType{bits: 64} }

// Float32 creates a floating-point type whose literals must fit a float32.
func Float32() Type { return &FloatType{bits: 32} }

// Int creates an integer type.
func Int() Type { return &IntType{} }

// Bool creates a boolean type.
func Bool() Type { return &BoolType{} }
