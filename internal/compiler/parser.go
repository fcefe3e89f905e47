package compiler

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/curvedit/pkg/curve"
	"github.com/aretw0/curvedit/pkg/schema"
)

var bom = []byte("\xef\xbb\xbf")

// Parser is responsible for converting table file text into a curve.Table.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse binds data against the table grammar and decodes the result.
// Syntax failures are returned as *schema.ParseError.
func (p *Parser) Parse(data []byte) (*curve.Table, error) {
	v, state, err := schema.Bind(tableSchema, string(bytes.TrimPrefix(data, bom)))
	if err != nil {
		return nil, fmt.Errorf("parse table: %w", err)
	}

	var table curve.Table
	if err := decode(v, &table); err != nil {
		return nil, fmt.Errorf("decode table: %w", err)
	}
	table.Version = state.Version()
	return &table, nil
}

// ParseSegment reads a single segment as written after "):" in a keyframe,
// e.g. "Polynomial +Degree: 2 +Ease In: YES".
func ParseSegment(text string) (curve.Segment, error) {
	v, _, err := schema.Bind(segmentSchema, text)
	if err != nil {
		return nil, fmt.Errorf("parse segment: %w", err)
	}
	tagged, _ := v.(schema.Tagged)
	return decodeSegment(tagged)
}

func decode(input, out any) error {
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "tbl",
		ErrorUnused: true,
		DecodeHook:  mapstructure.DecodeHookFuncType(segmentHook),
		Result:      out,
	})
	if err != nil {
		return err
	}
	return d.Decode(input)
}

var segmentType = reflect.TypeOf((*curve.Segment)(nil)).Elem()

// segmentHook turns bound variants into the matching Segment value.
func segmentHook(from, to reflect.Type, data any) (any, error) {
	if to != segmentType {
		return data, nil
	}
	tagged, ok := data.(schema.Tagged)
	if !ok {
		return data, nil
	}
	return decodeSegment(tagged)
}

func decodeSegment(tagged schema.Tagged) (curve.Segment, error) {
	var (
		seg curve.Segment
		err error
	)
	switch tagged.Tag {
	case curve.KindConstant:
		seg = curve.Constant{}
	case curve.KindLinear:
		seg = curve.Linear{}
	case curve.KindPolynomial:
		var p curve.Polynomial
		err = decode(tagged.Fields, &p)
		seg = p
	case curve.KindCircular:
		var c curve.Circular
		err = decode(tagged.Fields, &c)
		seg = c
	case curve.KindSubcurve:
		var s curve.Subcurve
		err = decode(tagged.Fields, &s)
		seg = s
	default:
		return nil, fmt.Errorf("unknown segment %q", tagged.Tag)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tagged.Tag, err)
	}
	return seg, nil
}
