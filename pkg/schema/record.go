package schema

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Record is the bound value of a RecordType or of a variant case: field name to value.
// Repeated fields hold []any, absent optional fields and skipped fields have no entry.
type Record map[string]any

// FieldSpec describes one named, typed field of a record or variant case.
type FieldSpec struct {
	name     string
	typ      Type
	key      string
	keySet   bool
	optional bool
	repeated bool
	atLeast  int
	skip     bool
	sameLine bool

	lead, sep, end string
	layoutSet      bool
}

// FieldOption configures a FieldSpec.
type FieldOption func(*FieldSpec)

// WithKey overrides the synthesized table key. An empty key means the value
// follows without any literal.
func WithKey(key string) FieldOption {
	return func(f *FieldSpec) {
		f.key = key
		f.keySet = true
	}
}

// Optional makes a failed bind leave the field absent instead of failing the record.
func Optional() FieldOption {
	return func(f *FieldSpec) {
		f.optional = true
	}
}

// Repeated binds the key once, then as many consecutive values as succeed.
func Repeated() FieldOption {
	return func(f *FieldSpec) {
		f.repeated = true
	}
}

// AtLeast requires a repeated field to bind at least n values.
func AtLeast(n int) FieldOption {
	return func(f *FieldSpec) {
		f.repeated = true
		f.atLeast = n
	}
}

// Skip excludes the field from binding and writing.
func Skip() FieldOption {
	return func(f *FieldSpec) {
		f.skip = true
	}
}

// SameLine requires the key to appear on the line the previous value ended on.
func SameLine() FieldOption {
	return func(f *FieldSpec) {
		f.sameLine = true
	}
}

// WithLayout sets what the writer emits before the key, between key and value,
// and after the value.
func WithLayout(lead, sep, end string) FieldOption {
	return func(f *FieldSpec) {
		f.lead, f.sep, f.end = lead, sep, end
		f.layoutSet = true
	}
}

// Field declares a field. Its key defaults to "$Name:" built from the field name.
func Field(name string, typ Type, opts ...FieldOption) *FieldSpec {
	f := &FieldSpec{
		name: name,
		typ:  typ,
		key:  DefaultKey(name),
		sep:  " ",
		end:  "\n",
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// DefaultKey synthesizes the table key of a field: "$" + name with its first
// letter upper-cased + ":".
func DefaultKey(name string) string {
	if name == "" {
		return "$:"
	}
	r, size := utf8.DecodeRuneInString(name)
	return "$" + string(unicode.ToUpper(r)) + name[size:] + ":"
}

// Name returns the field name, which is also its key in the bound Record.
func (f *FieldSpec) Name() string { return f.name }

// Key returns the literal that precedes the value in the table text.
func (f *FieldSpec) Key() string { return f.key }

func (f *FieldSpec) bind(s *State) (any, bool, error) {
	if f.optional {
		m := s.Mark()
		v, err := f.bindRequired(s)
		if err != nil {
			s.Reset(m)
			return nil, false, nil
		}
		return v, true, nil
	}
	v, err := f.bindRequired(s)
	if err != nil {
		return nil, false, s.within(f.name, err)
	}
	return v, true, nil
}

func (f *FieldSpec) bindRequired(s *State) (any, error) {
	if err := f.bindKey(s); err != nil {
		return nil, err
	}
	if f.repeated {
		return f.bindRepeated(s)
	}
	return f.typ.Bind(s)
}

func (f *FieldSpec) bindKey(s *State) error {
	if f.key == "" {
		return nil
	}
	m := s.Mark()
	s.skipTrivia(f.sameLine)
	if !s.Consume(f.key) {
		err := s.Fail(ErrKeyNotFound, "expected %q, got %q", f.key, s.Snippet(SnippetLength))
		s.Reset(m)
		return err
	}
	return nil
}

func (f *FieldSpec) bindRepeated(s *State) (any, error) {
	items := []any{}
	for {
		before := s.Mark()
		s.skipTrivia(false)
		m := s.Mark()
		start := s.Pos()
		v, err := f.typ.Bind(s)
		if err != nil {
			s.Reset(m)
			break
		}
		if s.Pos() == start {
			// A value that consumes nothing would repeat forever.
			s.Reset(before)
			break
		}
		items = append(items, v)
	}
	if len(items) < f.atLeast {
		return nil, s.Fail(ErrArity, "expected at least %d %s, got %d", f.atLeast, f.typ.Name(), len(items))
	}
	return items, nil
}

func (f *FieldSpec) spew(w *Writer, v any, present bool) error {
	if !present {
		if f.optional {
			return nil
		}
		return fmt.Errorf("%w: field %s is missing", ErrUnrepresentable, f.name)
	}

	w.WriteString(f.lead)
	if f.key != "" {
		w.WriteString(f.key)
	}

	if !f.repeated {
		if f.key != "" {
			w.WriteString(f.sep)
		}
		if err := f.typ.Spew(w, v); err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		w.WriteString(f.end)
		return nil
	}

	items, ok := v.([]any)
	if !ok {
		return fmt.Errorf("%s: expected []any, got %T", f.name, v)
	}
	if len(items) < f.atLeast {
		return fmt.Errorf("%w: %s needs at least %d elements, has %d", ErrUnrepresentable, f.name, f.atLeast, len(items))
	}
	if f.key != "" {
		w.WriteString(f.end)
		w.Indent()
		defer w.Dedent()
	}
	for i, item := range items {
		if i > 0 && f.key == "" {
			w.WriteString(f.sep)
		}
		if err := f.typ.Spew(w, item); err != nil {
			return fmt.Errorf("%s[%d]: %w", f.name, i, err)
		}
	}
	return nil
}

// RecordType binds an ordered sequence of fields.
type RecordType struct {
	name   string
	fields []*FieldSpec
}

// NewRecord declares a record type. Fields are bound in declaration order.
func NewRecord(name string, fields ...*FieldSpec) *RecordType {
	return &RecordType{name: name, fields: fields}
}

func (t *RecordType) Name() string { return t.name }

// Fields returns the declared fields in order.
func (t *RecordType) Fields() []*FieldSpec { return t.fields }

func (t *RecordType) Bind(s *State) (any, error) {
	m := s.Mark()
	rec := make(Record, len(t.fields))
	for _, f := range t.fields {
		if f.skip {
			continue
		}
		v, ok, err := f.bind(s)
		if err != nil {
			s.Reset(m)
			return nil, err
		}
		if ok {
			rec[f.name] = v
		}
	}
	return rec, nil
}

func (t *RecordType) Spew(w *Writer, v any) error {
	rec, ok := v.(Record)
	if !ok {
		return fmt.Errorf("%s: expected Record, got %T", t.name, v)
	}
	return spewFields(w, t.fields, rec)
}

func spewFields(w *Writer, fields []*FieldSpec, rec Record) error {
	for _, f := range fields {
		if f.skip {
			continue
		}
		val, present := rec[f.name]
		if err := f.spew(w, val, present); err != nil {
			return err
		}
	}
	return nil
}

// describe renders a one-line grammar for the field, e.g. `$Name: string`.
func (f *FieldSpec) describe() string {
	var sb strings.Builder
	if f.key != "" {
		sb.WriteString(f.key)
		sb.WriteByte(' ')
	}
	sb.WriteString(f.typ.Name())
	if f.repeated {
		sb.WriteString("...")
	}
	switch {
	case f.optional:
		return "[" + sb.String() + "]"
	case f.atLeast > 0:
		return fmt.Sprintf("%s (min %d)", sb.String(), f.atLeast)
	}
	return sb.String()
}
