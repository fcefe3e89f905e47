package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/curvedit/internal/presentation/graph"
	"github.com/aretw0/curvedit/pkg/curve"
)

func ref(name, target string) *curve.Curve {
	return &curve.Curve{Name: name, Keyframes: []curve.Keyframe{
		{X: 0, Y: 0, Segment: curve.Linear{}},
		{X: 0.5, Y: 0.5, Segment: curve.Subcurve{Curve: target}},
		{X: 1, Y: 1, Segment: curve.Constant{}},
	}}
}

func TestGenerateMermaid(t *testing.T) {
	tables := []graph.NamedTable{
		{Name: "a.tbl", Table: &curve.Table{Curves: []*curve.Curve{
			ref("Fade In", "base"),
			ref("Broken", "Ghost"),
		}}},
		{Name: "b.tbl", Table: &curve.Table{Curves: []*curve.Curve{
			ref("Base", "EaseInQuad"),
			ref("Local", "Base"),
		}}},
	}

	tests := []struct {
		name     string
		overlay  *graph.GraphOverlay
		contains []string
		excludes []string
	}{
		{
			name: "Shapes and Arrows",
			contains: []string{
				"graph TD\n",
				`c_fade_in["Fade In"]`,
				`c_fade_in -. "1" .-> c_base`,
				`c_ghost[/"Ghost ?"/]`,
				`c_broken -- "1" --> c_ghost`,
				`c_easeinquad(("EaseInQuad"))`,
				`c_local -- "1" --> c_base`,
			},
			excludes: []string{"EaseOutQuad", "Overlay"},
		},
		{
			name:    "Focus Overlay",
			overlay: &graph.GraphOverlay{Focus: "fade in"},
			contains: []string{
				"class c_base uses;",
				"class c_easeinquad uses;",
				"class c_fade_in current;",
			},
			excludes: []string{"class c_local"},
		},
		{
			name:     "Unknown Focus",
			overlay:  &graph.GraphOverlay{Focus: "Nobody"},
			excludes: []string{"Overlay"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tables, tt.overlay)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}

func TestGenerateMermaid_BuiltinDrawnOnce(t *testing.T) {
	tables := []graph.NamedTable{{Name: "x.tbl", Table: &curve.Table{Curves: []*curve.Curve{
		ref("One", "EaseOutCirc"),
		ref("Two", "easeoutcirc"),
	}}}}

	got := graph.GenerateMermaid(tables, nil)
	assert.Equal(t, 1, strings.Count(got, `c_easeoutcirc(("EaseOutCirc"))`))
	assert.Contains(t, got, `c_two -- "1" --> c_easeoutcirc`)
}
