package curve_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/curvedit/pkg/curve"
)

func threePoint() *curve.Curve {
	return &curve.Curve{Name: "Three", Keyframes: []curve.Keyframe{
		{X: 0, Y: 0, Segment: curve.Linear{}},
		{X: 0.5, Y: 1, Segment: curve.Linear{}},
		{X: 1, Y: 0, Segment: curve.Constant{}},
	}}
}

func TestNewCurve(t *testing.T) {
	c := curve.NewCurve("Fresh")
	assert.Equal(t, "Fresh", c.Name)
	assert.Equal(t, []curve.Keyframe{
		{X: 0, Y: 0, Segment: curve.Linear{}},
		{X: 1, Y: 1, Segment: curve.Constant{}},
	}, c.Keyframes)
}

func TestBoundsAndSample(t *testing.T) {
	c := threePoint()
	assert.Equal(t, curve.Bounds{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}, c.Bounds())

	pts := c.Sample(nil, 4)
	require.Len(t, pts, 5)
	assert.Equal(t, curve.Point{X: 0, Y: 0}, pts[0])
	assert.InDelta(t, 0.5, pts[1].Y, tolerance)
	assert.InDelta(t, 1, pts[2].Y, tolerance)
	assert.Equal(t, curve.Point{X: 1, Y: 0}, pts[4])

	assert.Len(t, c.Sample(nil, 0), curve.DefaultSamples+1)
}

func TestInsertKeyframe(t *testing.T) {
	tests := []struct {
		name      string
		x, y      float32
		snap      curve.Snap
		wantIndex int
		wantY     float32
	}{
		{"middle free", 0.25, 0.9, curve.SnapNone, 1, 0.9},
		{"middle on curve", 0.25, 0.9, curve.SnapCurve, 1, 0.5},
		{"snap x keeps curve value", 0.75, 0.1, curve.SnapX, 2, 0.5},
		{"equal x goes before", 0.5, 0.2, curve.SnapY, 1, 0.2},
		{"past the end appends", 2, 3, curve.SnapNone, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := threePoint()
			i, err := c.InsertKeyframe(tt.x, tt.y, tt.snap, nil)
			require.NoError(t, err)
			require.Equal(t, tt.wantIndex, i)
			require.Len(t, c.Keyframes, 4)

			kf := c.Keyframes[i]
			assert.Equal(t, tt.x, kf.X)
			assert.InDelta(t, tt.wantY, kf.Y, tolerance)
			assert.Equal(t, curve.Constant{}, kf.Segment)
		})
	}
}

func TestEditRejectsNonFinite(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := []struct {
		name string
		x, y float32
	}{
		{"nan x", nan, 0.5},
		{"nan y", 0.5, nan},
		{"infinite x", inf, 0},
		{"negative infinite y", 0.2, -inf},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := threePoint()

			_, err := c.InsertKeyframe(tt.x, tt.y, curve.SnapNone, nil)
			assert.ErrorIs(t, err, curve.ErrNonFinite)

			_, err = c.MoveKeyframe(1, tt.x, tt.y, curve.SnapNone, nil, curve.MinKeyframeDistance)
			assert.ErrorIs(t, err, curve.ErrNonFinite)

			assert.Equal(t, threePoint().Keyframes, c.Keyframes)
		})
	}
}

func TestRemoveKeyframe(t *testing.T) {
	c := threePoint()
	require.NoError(t, c.RemoveKeyframe(1))
	assert.Equal(t, []float32{0, 1}, []float32{c.Keyframes[0].X, c.Keyframes[1].X})

	assert.ErrorIs(t, c.RemoveKeyframe(0), curve.ErrTooFewKeyframes)
	assert.ErrorIs(t, c.RemoveKeyframe(5), curve.ErrKeyframeIndex)
}

func TestMoveKeyframe(t *testing.T) {
	gap := curve.MinKeyframeDistance

	tests := []struct {
		name  string
		index int
		x, y  float32
		snap  curve.Snap
		want  curve.Keyframe
	}{
		{"free", 1, 0.4, 2, curve.SnapNone, curve.Keyframe{X: 0.4, Y: 2, Segment: curve.Linear{}}},
		{"clamped right", 1, 5, 2, curve.SnapNone, curve.Keyframe{X: 1 - gap, Y: 2, Segment: curve.Linear{}}},
		{"clamped left", 1, -5, 2, curve.SnapX, curve.Keyframe{X: gap, Y: 1, Segment: curve.Linear{}}},
		{"y only", 1, 0.1, 0.3, curve.SnapY, curve.Keyframe{X: 0.5, Y: 0.3, Segment: curve.Linear{}}},
		{"first is unbounded left", 0, -3, 0, curve.SnapNone, curve.Keyframe{X: -3, Y: 0, Segment: curve.Linear{}}},
		{"last is unbounded right", 2, 7, 1, curve.SnapNone, curve.Keyframe{X: 7, Y: 1, Segment: curve.Constant{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := threePoint()
			got, err := c.MoveKeyframe(tt.index, tt.x, tt.y, tt.snap, nil, gap)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.X, got.X, 1e-6)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-6)
			assert.Equal(t, tt.want.Segment, got.Segment)
			assert.Equal(t, got, c.Keyframes[tt.index])
		})
	}
}

func TestMoveKeyframe_SnapCurve(t *testing.T) {
	c := threePoint()
	got, err := c.MoveKeyframe(2, 0.75, 9, curve.SnapCurve, nil, curve.MinKeyframeDistance)
	require.NoError(t, err)
	assert.Equal(t, float32(0.75), got.X)
	assert.InDelta(t, 0.5, got.Y, tolerance)

	_, err = c.MoveKeyframe(-1, 0, 0, curve.SnapNone, nil, curve.MinKeyframeDistance)
	assert.ErrorIs(t, err, curve.ErrKeyframeIndex)
}

func TestParseSnap(t *testing.T) {
	for _, s := range []curve.Snap{curve.SnapNone, curve.SnapX, curve.SnapY, curve.SnapCurve} {
		got, err := curve.ParseSnap(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	got, err := curve.ParseSnap("CURVE")
	require.NoError(t, err)
	assert.Equal(t, curve.SnapCurve, got)

	_, err = curve.ParseSnap("diagonal")
	assert.Error(t, err)
}

func TestRewriteReferences(t *testing.T) {
	table := &curve.Table{Curves: []*curve.Curve{
		{Name: "A", Keyframes: []curve.Keyframe{
			{X: 0, Y: 0, Segment: curve.Subcurve{Curve: "target"}},
			{X: 0.5, Y: 0.5, Segment: curve.Subcurve{Curve: "Other"}},
			{X: 1, Y: 1, Segment: curve.Constant{}},
		}},
		{Name: "B", Keyframes: []curve.Keyframe{
			{X: 0, Y: 0, Segment: curve.Subcurve{Curve: "TARGET"}},
			{X: 1, Y: 1, Segment: curve.Constant{}},
		}},
	}}

	assert.Equal(t, 2, table.RewriteReferences("Target", "Renamed"))
	assert.Equal(t, []string{"Renamed", "Other"}, table.Curves[0].References())
	assert.Equal(t, []string{"Renamed"}, table.Curves[1].References())
	assert.Same(t, table.Curves[1], table.Curve("b"))
}

func TestClone(t *testing.T) {
	c := threePoint()
	d := c.Clone()
	d.Keyframes[0].Y = 42
	assert.Equal(t, float32(0), c.Keyframes[0].Y)
}
