package schema

import (
	"fmt"
	"strings"
)

// Tagged is the bound value of a VariantType: the name of the matched case and
// the values of its sub-fields.
type Tagged struct {
	Tag    string
	Fields Record
}

// CaseSpec is one named alternative of a variant.
type CaseSpec struct {
	name   string
	fields []*FieldSpec
}

// Case declares a variant case. Sub-fields have no key unless one is set with
// WithKey, and they are written on the same line as the case name.
func Case(name string, fields ...*FieldSpec) *CaseSpec {
	cs := &CaseSpec{name: name}
	for _, f := range fields {
		sub := *f
		if !sub.keySet {
			sub.key = ""
		}
		if !sub.layoutSet {
			sub.lead, sub.sep, sub.end = " ", " ", ""
		}
		cs.fields = append(cs.fields, &sub)
	}
	return cs
}

// Name returns the case name.
func (c *CaseSpec) Name() string { return c.name }

// VariantType selects one of several cases by a literal prefix+name+suffix.
type VariantType struct {
	name   string
	prefix string
	suffix string
	cases  []*CaseSpec
}

// Variant declares a tagged variant. Cases are tried in declaration order and
// the first literal that matches wins, so a case whose name is a prefix of
// another must come after it.
func Variant(name, prefix, suffix string, cases ...*CaseSpec) *VariantType {
	return &VariantType{name: name, prefix: prefix, suffix: suffix, cases: cases}
}

func (t *VariantType) Name() string { return t.name }

// Cases returns the declared cases in order.
func (t *VariantType) Cases() []*CaseSpec { return t.cases }

func (t *VariantType) literal(c *CaseSpec) string {
	return t.prefix + c.name + t.suffix
}

func (t *VariantType) Bind(s *State) (any, error) {
	m := s.Mark()
	s.SkipInlineWhitespace()
	for _, c := range t.cases {
		if !s.Consume(t.literal(c)) {
			continue
		}
		rec := make(Record, len(c.fields))
		for _, f := range c.fields {
			if f.skip {
				continue
			}
			v, ok, err := f.bind(s)
			if err != nil {
				s.Reset(m)
				return nil, s.within(c.name, err)
			}
			if ok {
				rec[f.name] = v
			}
		}
		return Tagged{Tag: c.name, Fields: rec}, nil
	}

	literals := make([]string, len(t.cases))
	for i, c := range t.cases {
		literals[i] = t.literal(c)
	}
	err := s.Fail(ErrNoVariant, "expected one of %s, got %q", strings.Join(literals, ", "), s.Snippet(SnippetLength))
	s.Reset(m)
	return nil, err
}

func (t *VariantType) Spew(w *Writer, v any) error {
	tagged, ok := v.(Tagged)
	if !ok {
		return fmt.Errorf("%s: expected Tagged, got %T", t.name, v)
	}
	for _, c := range t.cases {
		if c.name != tagged.Tag {
			continue
		}
		w.WriteString(t.literal(c))
		if err := spewFields(w, c.fields, tagged.Fields); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
		return nil
	}
	return fmt.Errorf("%w: %s has no case %q", ErrUnrepresentable, t.name, tagged.Tag)
}
