package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/curvedit/pkg/curve"
)

// NamedTable is a table together with the name it was loaded under.
type NamedTable struct {
	Name  string
	Table *curve.Table
}

// GraphOverlay highlights part of the reference graph.
type GraphOverlay struct {
	// Focus is the curve whose references are highlighted. Matched ignoring case.
	Focus string
}

// GenerateMermaid produces a Mermaid flowchart of the Subcurve references
// between the curves of tables. Shapes:
// - Table curve: [Rectangle]
// - Builtin: ((Circle)), only drawn when referenced
// - Unresolved reference: [/Parallelogram/]
// References into another table use a dotted arrow, labelled with the
// keyframe that holds them.
func GenerateMermaid(tables []NamedTable, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	all := make([]*curve.Table, len(tables))
	for i, t := range tables {
		all[i] = t.Table
	}
	visible := curve.Visible(all...)

	home := make(map[*curve.Curve]string)
	for _, t := range tables {
		for _, c := range t.Table.Curves {
			home[c] = t.Name
		}
	}

	drawn := make(map[string]bool)
	node := func(id, label, opener, closer string) {
		if !drawn[id] {
			drawn[id] = true
			sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, escapeLabel(label), closer))
		}
	}

	for _, t := range tables {
		for _, c := range t.Table.Curves {
			from := sanitizeMermaidID(c.Name)
			node(from, c.Name, "[", "]")

			for i, kf := range c.Keyframes {
				sub, ok := kf.Segment.(curve.Subcurve)
				if !ok {
					continue
				}

				target := visible.Lookup(sub.Curve)
				switch {
				case target == nil:
					node(sanitizeMermaidID(sub.Curve), sub.Curve+" ?", "[/", "/]")
				case curve.IsBuiltin(target.Name):
					node(sanitizeMermaidID(target.Name), target.Name, "((", "))")
				}

				to := sanitizeMermaidID(sub.Curve)
				if target != nil {
					to = sanitizeMermaidID(target.Name)
				}

				arrow := fmt.Sprintf("-- \"%d\" -->", i)
				if target != nil && home[target] != "" && home[target] != t.Name {
					arrow = fmt.Sprintf("-. \"%d\" .->", i)
				}
				sb.WriteString(fmt.Sprintf("    %s %s %s\n", from, arrow, to))
			}
		}
	}

	if overlay != nil && overlay.Focus != "" {
		if focus := visible.Lookup(overlay.Focus); focus != nil {
			sb.WriteString("\n    %% Overlay Styles\n")
			sb.WriteString("    classDef uses fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
			sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

			for _, dep := range dependencies(focus, visible) {
				sb.WriteString(fmt.Sprintf("    class %s uses;\n", sanitizeMermaidID(dep)))
			}
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(focus.Name)))
		}
	}

	return sb.String()
}

// dependencies lists every resolvable curve reachable from c, in crawl order.
func dependencies(c *curve.Curve, visible curve.Set) []string {
	visited := map[*curve.Curve]bool{c: true}
	queue := []*curve.Curve{c}
	var names []string

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, ref := range current.References() {
			target := visible.Lookup(ref)
			if target == nil || visited[target] {
				continue
			}
			visited[target] = true
			names = append(names, target.Name)
			queue = append(queue, target)
		}
	}
	return names
}

// sanitizeMermaidID maps a curve name to a Mermaid node id. Names that differ
// only in case share a node, the way lookups treat them.
func sanitizeMermaidID(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	return "c_" + sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
