// Package schema provides a data-driven binder for table files.
//
// A schema is an ordered description of named, typed fields. Interpreting it
// against a scan cursor yields generic values (Record, Tagged, []any and
// primitives) that callers decode into their own types; the same schema writes
// those values back as text.
//
// Basic usage:
//
//	curve := schema.NewRecord("curve",
//	    schema.Field("name", schema.String()),             // $Name: <text>
//	    schema.Field("points", point, schema.AtLeast(2)),  // $Points: point...
//	)
//
//	v, _, err := schema.Bind(curve, text)
//	if err != nil {
//	    // *schema.ParseError with line and reason
//	}
//	rec := v.(schema.Record)
//
// Field arity is controlled with options:
//
//   - Optional: a failed bind leaves the field absent and rolls the cursor back.
//   - Repeated: zero or more values, stopping without consuming at the first failure.
//   - AtLeast: a repeated field with a minimum count.
//   - Skip: the field is neither bound nor written.
//
// Tagged variants pick a case by literal:
//
//	segment := schema.Variant("segment", "", "",
//	    schema.Case("Constant"),
//	    schema.Case("Polynomial",
//	        schema.Field("degree", schema.Float(), schema.WithKey("+Degree:"))),
//	)
//
// Cases are tried in declaration order and the first whose literal matches wins.
package schema
