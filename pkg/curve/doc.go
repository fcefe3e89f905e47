/*
Package curve is the document model and evaluator for curve tables.

A Table holds named Curves; each Curve is a list of Keyframes sorted by X,
and the Segment of each keyframe says how to interpolate to the next one.

	c := curve.NewCurve("Fade")
	visible := curve.Visible(table) // builtins, then the table's curves
	y := c.Evaluate(0.25, visible)

Subcurve segments name another visible curve and are resolved on every call,
so renaming a curve only requires rewriting the references
(Table.RewriteReferences); nothing is cached.

The builtin easing curves (Builtins) are built once per process and are
always visible ahead of loaded tables.
*/
package curve
