package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/curvedit/internal/compiler"
	"github.com/aretw0/curvedit/pkg/curve"
)

func parse(t *testing.T, text string) *curve.Table {
	t.Helper()
	table, err := compiler.NewParser().Parse([]byte(text))
	require.NoError(t, err)
	return table
}

func TestValidate_Clean(t *testing.T) {
	tables := []Source{
		{"a.tbl", parse(t, "$Name: A\n$Keyframes:\n\t(0, 0): Subcurve +Curve: b\n\t(1, 1): Constant\n")},
		{"b.tbl", parse(t, "$Name: B\n$Keyframes:\n\t(0, 0): Subcurve +Curve: EaseInQuad\n\t(1, 1): Constant\n")},
	}
	assert.NoError(t, Validate(tables))
	assert.Empty(t, Lint(tables))
}

func TestLint(t *testing.T) {
	loop := parse(t, `$Name: Ping
$Keyframes:
	(0, 0): Subcurve +Curve: Pong
	(1, 1): Constant

$Name: Pong
$Keyframes:
	(0, 0): Subcurve +Curve: ping
	(1, 1): Constant
`)
	bad := &curve.Table{Curves: []*curve.Curve{
		{Name: "easeinquad", Keyframes: []curve.Keyframe{
			{X: 0, Y: 0, Segment: curve.Linear{}},
			{X: 1, Y: 1, Segment: curve.Constant{}},
		}},
		{Name: "Steps", Keyframes: []curve.Keyframe{
			{X: 0, Y: 0, Segment: curve.Linear{}},
			{X: 0, Y: 1, Segment: curve.Subcurve{Curve: "Ghost"}},
			{X: 1, Y: 1, Segment: curve.Constant{}},
		}},
		{Name: "Lonely", Keyframes: []curve.Keyframe{{X: 0, Y: 0, Segment: curve.Linear{}}}},
	}}

	dup := &curve.Table{Curves: []*curve.Curve{curve.NewCurve("ping")}}

	issues := Lint([]Source{{"bad.tbl", bad}, {"loop.tbl", loop}, {"zz.tbl", dup}})

	got := make([]string, len(issues))
	for i, issue := range issues {
		got[i] = issue.String()
	}
	assert.Equal(t, []string{
		"bad.tbl: easeinquad: name shadowed by builtin curve EaseInQuad",
		"bad.tbl: Steps[1]: x 0 does not follow 0",
		`bad.tbl: Steps[1]: references unknown curve "Ghost"`,
		"bad.tbl: Lonely: has 1 keyframes, needs at least 2",
		"loop.tbl: Ping: references itself: Ping -> Pong -> Ping",
		"loop.tbl: Pong: references itself: Pong -> Ping -> Pong",
		"zz.tbl: ping: name already used in loop.tbl",
	}, got)
}

func TestLint_SelfReference(t *testing.T) {
	table := parse(t, "$Name: Self\n$Keyframes:\n\t(0, 0): Subcurve +Curve: SELF\n\t(1, 1): Constant\n")
	issues := Lint([]Source{{"self.tbl", table}})
	require.Len(t, issues, 1)
	assert.Equal(t, "references itself: Self -> Self", issues[0].Message)
	assert.Equal(t, -1, issues[0].Keyframe)
}

func TestValidate_Aggregates(t *testing.T) {
	table := &curve.Table{Curves: []*curve.Curve{{Name: "Empty"}}}
	err := Validate([]Source{{"x.tbl", table}})
	require.Error(t, err)
	assert.Equal(t, "found 1 errors:\n- x.tbl: Empty: has 0 keyframes, needs at least 2", err.Error())
}

func TestLint_OpenOrderDecidesShadowing(t *testing.T) {
	first := parse(t, "$Name: Fade\n$Keyframes:\n\t(0, 0): Linear\n\t(1, 1): Constant\n")
	second := parse(t, "$Name: fade\n$Keyframes:\n\t(0, 1): Subcurve +Curve: Fade\n\t(1, 0): Constant\n")

	issues := Lint([]Source{{"z.tbl", first}, {"a.tbl", second}})
	require.Len(t, issues, 1)
	assert.Equal(t, "a.tbl: fade: name already used in z.tbl", issues[0].String())

	// The later table resolves Fade to the earlier curve, so there is no cycle.
	// Reversed, the referencing curve is the visible one and refers to itself.
	got := make([]string, 0, 2)
	for _, issue := range Lint([]Source{{"a.tbl", second}, {"z.tbl", first}}) {
		got = append(got, issue.String())
	}
	assert.Equal(t, []string{
		"a.tbl: fade: references itself: fade -> fade",
		"z.tbl: Fade: name already used in a.tbl",
	}, got)
}
