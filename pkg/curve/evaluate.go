package curve

import (
	"fmt"
	"math"
)

// Evaluate returns the value of c at x.
//
// Inputs at or before the first keyframe yield its Y, inputs at or after the
// last keyframe yield the last Y. In between, the segment of the keyframe
// preceding x maps the normalized position through its delta function, which
// is then rescaled into the Y range of the two keyframes.
//
// Subcurve segments are resolved against visible by name, ignoring case; an
// unknown name contributes a delta of 0. References are followed without
// cycle detection, so a curve reaching itself recurses without bound.
//
// A NaN x yields NaN. Evaluate panics if c has fewer than two keyframes.
func (c *Curve) Evaluate(x float32, visible Set) float32 {
	kfs := c.Keyframes
	if len(kfs) < 2 {
		panic(fmt.Sprintf("curve: %q has %d keyframes, need at least 2", c.Name, len(kfs)))
	}

	first, last := kfs[0], kfs[len(kfs)-1]
	if x <= first.X {
		return first.Y
	}
	if x >= last.X {
		return last.Y
	}

	for i := 1; i < len(kfs); i++ {
		next := kfs[i]
		if x < next.X {
			prev := kfs[i-1]
			t := (x - prev.X) / (next.X - prev.X)
			return Delta(prev.Segment, t, visible)*(next.Y-prev.Y) + prev.Y
		}
	}
	// Only NaN fails every comparison above.
	return float32(math.NaN())
}

// Delta maps a normalized position t in [0,1] through seg.
func Delta(seg Segment, t float32, visible Set) float32 {
	switch s := seg.(type) {
	case Constant:
		return 0
	case Linear:
		return t
	case Polynomial:
		if s.EaseIn {
			return pow(t, s.Degree)
		}
		return 1 - pow(1-t, s.Degree)
	case Circular:
		if s.EaseIn {
			return 1 - sqrt(1-t*t)
		}
		return sqrt(1 - (1-t)*(1-t))
	case Subcurve:
		sub := visible.Lookup(s.Curve)
		if sub == nil {
			return 0
		}
		return sub.Evaluate(t, visible)
	default:
		panic(fmt.Sprintf("curve: unknown segment %T", seg))
	}
}

func pow(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}

func sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
