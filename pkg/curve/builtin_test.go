package curve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/curvedit/pkg/curve"
)

func TestBuiltins_Enumeration(t *testing.T) {
	b := curve.Builtins()
	require.Len(t, b, 30)

	names := b.Names()
	assert.Equal(t, "EaseInCircRev", names[0])
	assert.Equal(t, "EaseInQuintRev", names[4])
	assert.Equal(t, "EaseInCirc", names[5])
	assert.Equal(t, "EaseInOutQuint", names[29])
	assert.Contains(t, names, "EaseOutCubicRev")

	seen := map[string]bool{}
	for _, n := range names {
		assert.False(t, seen[n], "duplicate builtin %s", n)
		seen[n] = true
	}
}

func TestBuiltins_Shape(t *testing.T) {
	b := curve.Builtins()

	quartRev := b.Lookup("EaseOutQuartRev")
	require.NotNil(t, quartRev)
	assert.Equal(t, []curve.Keyframe{
		{X: 0, Y: 1, Segment: curve.Polynomial{Degree: 4, EaseIn: false}},
		{X: 1, Y: 0, Segment: curve.Constant{}},
	}, quartRev.Keyframes)

	circInOut := b.Lookup("EaseInOutCirc")
	require.NotNil(t, circInOut)
	assert.Equal(t, []curve.Keyframe{
		{X: 0, Y: 0, Segment: curve.Circular{EaseIn: true}},
		{X: 0.5, Y: 0.5, Segment: curve.Circular{EaseIn: false}},
		{X: 1, Y: 1, Segment: curve.Constant{}},
	}, circInOut.Keyframes)
}

func TestBuiltins_BuiltOnce(t *testing.T) {
	a, b := curve.Builtins(), curve.Builtins()
	assert.Same(t, a[0], b[0])
}

func TestIsBuiltin(t *testing.T) {
	assert.True(t, curve.IsBuiltin("easeincubic"))
	assert.False(t, curve.IsBuiltin("EaseSideways"))
}

func TestVisible_BuiltinsFirst(t *testing.T) {
	mine := &curve.Table{Curves: []*curve.Curve{curve.NewCurve("EaseInQuad"), curve.NewCurve("Mine")}}
	other := &curve.Table{Curves: []*curve.Curve{curve.NewCurve("Other")}}

	v := curve.Visible(mine, other)
	require.Len(t, v, 33)
	assert.Equal(t, []string{"EaseInQuad", "Mine", "Other"}, v[30:].Names())
	assert.Same(t, curve.Builtins().Lookup("EaseInQuad"), v.Lookup("EASEINQUAD"))
}
