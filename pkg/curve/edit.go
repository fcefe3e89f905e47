package curve

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

const (
	// MinKeyframeDistance is the default smallest X gap kept between a moved
	// keyframe and its neighbours.
	MinKeyframeDistance float32 = 0.001

	// DefaultSamples is the number of intervals Sample uses when given n <= 0.
	DefaultSamples = 500
)

var (
	ErrKeyframeIndex   = errors.New("keyframe index out of range")
	ErrTooFewKeyframes = errors.New("a curve needs at least 2 keyframes")
	ErrNonFinite       = errors.New("keyframe coordinates must be finite")
)

// Point is an evaluated (x, y) pair.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Bounds is the extent of a curve's keyframes.
type Bounds struct {
	MinX, MaxX float32
	MinY, MaxY float32
}

// Bounds returns the X range spanned by the keyframes and the smallest and
// largest keyframe Y.
func (c *Curve) Bounds() Bounds {
	if len(c.Keyframes) == 0 {
		return Bounds{}
	}
	b := Bounds{
		MinX: c.Keyframes[0].X,
		MaxX: c.Keyframes[len(c.Keyframes)-1].X,
		MinY: c.Keyframes[0].Y,
		MaxY: c.Keyframes[0].Y,
	}
	for _, kf := range c.Keyframes[1:] {
		b.MinY = min(b.MinY, kf.Y)
		b.MaxY = max(b.MaxY, kf.Y)
	}
	return b
}

// Sample evaluates c at n+1 evenly spaced inputs covering its X range.
func (c *Curve) Sample(visible Set, n int) []Point {
	if n <= 0 {
		n = DefaultSamples
	}
	b := c.Bounds()
	step := (b.MaxX - b.MinX) / float32(n)
	points := make([]Point, n+1)
	for i := range points {
		x := b.MinX + float32(i)*step
		points[i] = Point{X: x, Y: c.Evaluate(x, visible)}
	}
	return points
}

// Snap restricts how an edited keyframe follows the requested position.
type Snap int

const (
	// SnapNone takes both coordinates as given.
	SnapNone Snap = iota
	// SnapX changes only X, keeping the keyframe on its horizontal line.
	SnapX
	// SnapY changes only Y.
	SnapY
	// SnapCurve changes X and places Y on the curve as it was before the edit.
	SnapCurve
)

var snapNames = [...]string{"none", "x", "y", "curve"}

func (s Snap) String() string {
	if s < 0 || int(s) >= len(snapNames) {
		return fmt.Sprintf("Snap(%d)", int(s))
	}
	return snapNames[s]
}

// ParseSnap parses "none", "x", "y" or "curve", ignoring case.
func ParseSnap(s string) (Snap, error) {
	for i, name := range snapNames {
		if strings.EqualFold(s, name) {
			return Snap(i), nil
		}
	}
	return SnapNone, fmt.Errorf("unknown snap mode %q (want none, x, y or curve)", s)
}

// InsertKeyframe adds a Constant keyframe at (x, y) before the first keyframe
// whose X is not less than x, and returns its index. With SnapX or SnapCurve
// the requested y is replaced by the value of the curve at x.
func (c *Curve) InsertKeyframe(x, y float32, snap Snap, visible Set) (int, error) {
	if err := checkFinite(x, y); err != nil {
		return 0, err
	}
	if snap == SnapX || snap == SnapCurve {
		y = c.Evaluate(x, visible)
	}
	kf := Keyframe{X: x, Y: y, Segment: Constant{}}

	for i, existing := range c.Keyframes {
		if existing.X >= x {
			c.Keyframes = slices.Insert(c.Keyframes, i, kf)
			return i, nil
		}
	}
	c.Keyframes = append(c.Keyframes, kf)
	return len(c.Keyframes) - 1, nil
}

// RemoveKeyframe deletes keyframe i. A curve never drops below two keyframes.
func (c *Curve) RemoveKeyframe(i int) error {
	if i < 0 || i >= len(c.Keyframes) {
		return fmt.Errorf("%w: %d of %d", ErrKeyframeIndex, i, len(c.Keyframes))
	}
	if len(c.Keyframes) <= 2 {
		return ErrTooFewKeyframes
	}
	c.Keyframes = slices.Delete(c.Keyframes, i, i+1)
	return nil
}

// MoveKeyframe moves keyframe i towards (x, y) under snap and returns its new
// value. X stays at least gap away from both neighbours, so the keyframes
// remain ordered.
func (c *Curve) MoveKeyframe(i int, x, y float32, snap Snap, visible Set, gap float32) (Keyframe, error) {
	if i < 0 || i >= len(c.Keyframes) {
		return Keyframe{}, fmt.Errorf("%w: %d of %d", ErrKeyframeIndex, i, len(c.Keyframes))
	}
	if err := checkFinite(x, y); err != nil {
		return Keyframe{}, err
	}

	lower, upper := float32(math.Inf(-1)), float32(math.Inf(1))
	if i > 0 {
		lower = c.Keyframes[i-1].X + gap
	}
	if i < len(c.Keyframes)-1 {
		upper = c.Keyframes[i+1].X - gap
	}

	kf := c.Keyframes[i]
	switch snap {
	case SnapX:
		kf.X = clamp(x, lower, upper)
	case SnapY:
		kf.Y = y
	case SnapCurve:
		kf.X = clamp(x, lower, upper)
		kf.Y = c.Evaluate(kf.X, visible)
	default:
		kf.X, kf.Y = clamp(x, lower, upper), y
	}

	c.Keyframes[i] = kf
	return kf, nil
}

// SetSegment replaces the interpolation rule leaving keyframe i.
func (c *Curve) SetSegment(i int, seg Segment) error {
	if i < 0 || i >= len(c.Keyframes) {
		return fmt.Errorf("%w: %d of %d", ErrKeyframeIndex, i, len(c.Keyframes))
	}
	c.Keyframes[i].Segment = seg
	return nil
}

func checkFinite(x, y float32) error {
	for _, v := range []float32{x, y} {
		if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: (%v, %v)", ErrNonFinite, x, y)
		}
	}
	return nil
}

func clamp(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}
