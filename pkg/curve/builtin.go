package curve

import "sync"

type ease int

const (
	easeIn ease = iota
	easeOut
	easeInOut
)

func (e ease) String() string {
	return [...]string{"EaseIn", "EaseOut", "EaseInOut"}[e]
}

// interp is the shape of a builtin; its value is the polynomial degree,
// circ has none.
type interp int

const (
	circ  interp = 0
	quad  interp = 2
	cubic interp = 3
	quart interp = 4
	quint interp = 5
)

var interpNames = map[interp]string{
	circ:  "Circ",
	quad:  "Quad",
	cubic: "Cubic",
	quart: "Quart",
	quint: "Quint",
}

func (i interp) segment(easeIn bool) Segment {
	if i == circ {
		return Circular{EaseIn: easeIn}
	}
	return Polynomial{Degree: float32(i), EaseIn: easeIn}
}

var builtins = sync.OnceValue(func() Set {
	var set Set
	for _, e := range []ease{easeIn, easeOut, easeInOut} {
		for _, reverse := range []bool{true, false} {
			for _, shape := range []interp{circ, quad, cubic, quart, quint} {
				set = append(set, newBuiltin(e, reverse, shape))
			}
		}
	}
	return set
})

func newBuiltin(e ease, reverse bool, shape interp) *Curve {
	name := e.String() + interpNames[shape]
	if reverse {
		name += "Rev"
	}

	var y0, y1 float32 = 0, 1
	if reverse {
		y0, y1 = 1, 0
	}
	in := e != easeOut

	kfs := []Keyframe{{X: 0, Y: y0, Segment: shape.segment(in)}}
	if e == easeInOut {
		kfs = append(kfs, Keyframe{X: 0.5, Y: 0.5, Segment: shape.segment(!in)})
	}
	kfs = append(kfs, Keyframe{X: 1, Y: y1, Segment: Constant{}})

	return &Curve{Name: name, Keyframes: kfs}
}

// Builtins returns the standard easing curves: every combination of
// EaseIn/EaseOut/EaseInOut, reversed or not, and Circ/Quad/Cubic/Quart/Quint,
// named like "EaseInQuad" or "EaseOutCircRev".
//
// The set is built on first use and shared; callers must not modify it.
func Builtins() Set {
	return builtins()
}

// IsBuiltin reports whether name is the name of a builtin curve, ignoring case.
func IsBuiltin(name string) bool {
	return Builtins().Lookup(name) != nil
}
