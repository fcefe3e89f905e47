package compiler

import (
	"github.com/aretw0/curvedit/pkg/curve"
	"github.com/aretw0/curvedit/pkg/schema"
)

// Keys of the table grammar that are not synthesized from field names.
const (
	keyX         = "("
	keyY         = ","
	keySegment   = "):"
	keyDegree    = "+Degree:"
	keyEaseIn    = "+Ease In:"
	keySubcurve  = "+Curve:"
	keyKeyframes = "$Keyframes:"
)

var segmentSchema = schema.Variant("segment", "", "",
	schema.Case(curve.KindConstant),
	schema.Case(curve.KindLinear),
	schema.Case(curve.KindPolynomial,
		schema.Field("degree", schema.Float32(), schema.WithKey(keyDegree), schema.SameLine()),
		schema.Field("ease_in", schema.Bool(), schema.WithKey(keyEaseIn), schema.SameLine()),
	),
	schema.Case(curve.KindCircular,
		schema.Field("ease_in", schema.Bool(), schema.WithKey(keyEaseIn), schema.SameLine()),
	),
	schema.Case(curve.KindSubcurve,
		schema.Field("curve", schema.String(), schema.WithKey(keySubcurve), schema.SameLine()),
	),
)

// keyframeSchema reads "(x, y): Segment ..." on one line.
var keyframeSchema = schema.NewRecord("keyframe",
	schema.Field("x", schema.Float32(), schema.WithKey(keyX), schema.WithLayout("", "", "")),
	schema.Field("y", schema.Float32(), schema.WithKey(keyY), schema.SameLine(), schema.WithLayout("", " ", "")),
	schema.Field("segment", segmentSchema, schema.WithKey(keySegment), schema.SameLine(), schema.WithLayout("", " ", "\n")),
)

var curveSchema = schema.NewRecord("curve",
	schema.Field("name", schema.String()),
	schema.Field("keyframes", keyframeSchema, schema.WithKey(keyKeyframes), schema.AtLeast(2)),
)

var tableSchema = schema.NewRecord("table",
	schema.Field("version", schema.String(), schema.Skip()),
	schema.Field("curves", curveSchema, schema.WithKey(""), schema.Repeated(), schema.WithLayout("", "\n", "")),
)

// Grammar returns a readable description of the table file grammar.
func Grammar() string {
	return schema.Describe(tableSchema)
}
