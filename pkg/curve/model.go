package curve

import "strings"

// Segment kinds as they appear in table text.
const (
	KindConstant   = "Constant"
	KindLinear     = "Linear"
	KindPolynomial = "Polynomial"
	KindCircular   = "Circular"
	KindSubcurve   = "Subcurve"
)

// Table is an ordered collection of curves loaded from one table file.
// Curve order is significant and is preserved when the table is written back.
type Table struct {
	// Version is the raw version marker (e.g. ";;FSO 23.0.0;;") the table was read with.
	Version string   `tbl:"version"`
	Curves  []*Curve `tbl:"curves"`
}

// Curve is a named, piecewise-interpolated function of one variable.
// Keyframes are sorted by ascending X and there are always at least two.
type Curve struct {
	Name      string     `tbl:"name"`
	Keyframes []Keyframe `tbl:"keyframes"`
}

// Keyframe is a control point plus the rule used to interpolate from it to
// the next keyframe. The segment of the last keyframe is never evaluated.
type Keyframe struct {
	X       float32 `tbl:"x"`
	Y       float32 `tbl:"y"`
	Segment Segment `tbl:"segment"`
}

// Segment is the interpolation rule between two adjacent keyframes.
// The set of segments is closed: Constant, Linear, Polynomial, Circular and Subcurve.
type Segment interface {
	// Kind returns the table name of the segment.
	Kind() string
	isSegment()
}

// Constant holds the start value of the transition.
type Constant struct{}

// Linear varies linearly between the two keyframes.
type Linear struct{}

// Polynomial eases in with t^Degree or out with 1-(1-t)^Degree.
type Polynomial struct {
	Degree float32 `tbl:"degree"`
	EaseIn bool    `tbl:"ease_in"`
}

// Circular eases along a quarter circle.
type Circular struct {
	EaseIn bool `tbl:"ease_in"`
}

// Subcurve delegates the normalized position to another curve, looked up by
// name at evaluation time.
type Subcurve struct {
	Curve string `tbl:"curve"`
}

func (Constant) Kind() string   { return KindConstant }
func (Linear) Kind() string     { return KindLinear }
func (Polynomial) Kind() string { return KindPolynomial }
func (Circular) Kind() string   { return KindCircular }
func (Subcurve) Kind() string   { return KindSubcurve }

func (Constant) isSegment()   {}
func (Linear) isSegment()     {}
func (Polynomial) isSegment() {}
func (Circular) isSegment()   {}
func (Subcurve) isSegment()   {}

// NewCurve returns a curve going linearly from (0,0) to (1,1).
func NewCurve(name string) *Curve {
	return &Curve{
		Name: name,
		Keyframes: []Keyframe{
			{X: 0, Y: 0, Segment: Linear{}},
			{X: 1, Y: 1, Segment: Constant{}},
		},
	}
}

// Clone returns a copy of c that shares no keyframe storage with it.
func (c *Curve) Clone() *Curve {
	out := &Curve{Name: c.Name, Keyframes: make([]Keyframe, len(c.Keyframes))}
	copy(out.Keyframes, c.Keyframes)
	return out
}

// References returns the names of the curves c delegates to, in keyframe order.
func (c *Curve) References() []string {
	var refs []string
	for _, kf := range c.Keyframes {
		if sub, ok := kf.Segment.(Subcurve); ok {
			refs = append(refs, sub.Curve)
		}
	}
	return refs
}

// Curve returns the curve of t named name (case-insensitive), or nil.
func (t *Table) Curve(name string) *Curve {
	return Set(t.Curves).Lookup(name)
}

// RewriteReferences re-points every Subcurve segment of t that names from
// (case-insensitive) to to, and reports how many segments changed.
func (t *Table) RewriteReferences(from, to string) int {
	n := 0
	for _, c := range t.Curves {
		for i, kf := range c.Keyframes {
			sub, ok := kf.Segment.(Subcurve)
			if ok && strings.EqualFold(sub.Curve, from) {
				c.Keyframes[i].Segment = Subcurve{Curve: to}
				n++
			}
		}
	}
	return n
}

// Set is the list of curves visible to an evaluation.
type Set []*Curve

// Lookup returns the first curve whose name equals name, ignoring case.
func (s Set) Lookup(name string) *Curve {
	for _, c := range s {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}

// Names returns the curve names in order.
func (s Set) Names() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name
	}
	return names
}

// Visible returns the builtin curves followed by every curve of tables, in order.
func Visible(tables ...*Table) Set {
	b := Builtins()
	n := len(b)
	for _, t := range tables {
		n += len(t.Curves)
	}
	set := make(Set, 0, n)
	set = append(set, b...)
	for _, t := range tables {
		set = append(set, t.Curves...)
	}
	return set
}
