package compiler

import (
	"fmt"

	"github.com/aretw0/curvedit/pkg/curve"
	"github.com/aretw0/curvedit/pkg/scan"
	"github.com/aretw0/curvedit/pkg/schema"
)

// Format writes t in the table grammar. The output parses back to a table
// equal to t. Values the grammar cannot carry (multi-line or commented names,
// non-finite numbers, curves with fewer than two keyframes) are rejected with
// schema.ErrUnrepresentable.
func Format(t *curve.Table) (string, error) {
	w := schema.NewWriter()
	if t.Version != "" {
		if !scan.IsVersionMarker(t.Version) {
			return "", fmt.Errorf("%w: version %q", schema.ErrUnrepresentable, t.Version)
		}
		w.WriteString(t.Version + "\n")
	}
	if err := tableSchema.Spew(w, encodeTable(t)); err != nil {
		return "", fmt.Errorf("format table: %w", err)
	}
	return w.String(), nil
}

// FormatSegment writes seg the way it appears after "):" in a keyframe.
func FormatSegment(seg curve.Segment) (string, error) {
	return schema.Spew(segmentSchema, encodeSegment(seg))
}

func encodeTable(t *curve.Table) schema.Record {
	curves := make([]any, len(t.Curves))
	for i, c := range t.Curves {
		curves[i] = encodeCurve(c)
	}
	return schema.Record{"curves": curves}
}

func encodeCurve(c *curve.Curve) schema.Record {
	kfs := make([]any, len(c.Keyframes))
	for i, kf := range c.Keyframes {
		kfs[i] = schema.Record{
			"x":       kf.X,
			"y":       kf.Y,
			"segment": encodeSegment(kf.Segment),
		}
	}
	return schema.Record{"name": c.Name, "keyframes": kfs}
}

func encodeSegment(seg curve.Segment) schema.Tagged {
	fields := schema.Record{}
	switch s := seg.(type) {
	case curve.Polynomial:
		fields["degree"] = s.Degree
		fields["ease_in"] = s.EaseIn
	case curve.Circular:
		fields["ease_in"] = s.EaseIn
	case curve.Subcurve:
		fields["curve"] = s.Curve
	case nil:
		return schema.Tagged{}
	}
	return schema.Tagged{Tag: seg.Kind(), Fields: fields}
}
