package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/curvedit/pkg/curve"
)

// Issue is one problem found in a loaded table.
type Issue struct {
	Table string
	Curve string
	// Keyframe is the offending keyframe index, or -1 when the issue concerns the whole curve.
	Keyframe int
	Message  string
}

func (i Issue) String() string {
	loc := i.Curve
	if i.Table != "" {
		loc = i.Table + ": " + loc
	}
	if i.Keyframe >= 0 {
		loc = fmt.Sprintf("%s[%d]", loc, i.Keyframe)
	}
	return loc + ": " + i.Message
}

// Source is a named table, in the order an editor opened it.
type Source struct {
	Name  string
	Table *curve.Table
}

// Lint inspects tables as they would be seen together by an editor: the
// builtins first, then every table in the order given. Earlier tables win
// name collisions.
func Lint(tables []Source) []Issue {
	ordered := make([]*curve.Table, len(tables))
	for i, src := range tables {
		ordered[i] = src.Table
	}
	visible := curve.Visible(ordered...)

	var issues []Issue
	seen := make(map[string]string)
	for _, src := range tables {
		table := src.Name
		for _, c := range src.Table.Curves {
			report := func(kf int, format string, args ...any) {
				issues = append(issues, Issue{Table: table, Curve: c.Name, Keyframe: kf, Message: fmt.Sprintf(format, args...)})
			}

			key := strings.ToLower(c.Name)
			switch {
			case curve.IsBuiltin(c.Name):
				report(-1, "name shadowed by builtin curve %s", curve.Builtins().Lookup(c.Name).Name)
			case seen[key] != "":
				report(-1, "name already used in %s", seen[key])
			default:
				seen[key] = table
			}

			if len(c.Keyframes) < 2 {
				report(-1, "has %d keyframes, needs at least 2", len(c.Keyframes))
			}
			for i := 1; i < len(c.Keyframes); i++ {
				if prev, cur := c.Keyframes[i-1].X, c.Keyframes[i].X; cur <= prev {
					report(i, "x %g does not follow %g", cur, prev)
				}
			}
			for i, kf := range c.Keyframes {
				if sub, ok := kf.Segment.(curve.Subcurve); ok && visible.Lookup(sub.Curve) == nil {
					report(i, "references unknown curve %q", sub.Curve)
				}
			}
			if path := cycle(c, visible); path != nil {
				report(-1, "references itself: %s", strings.Join(path, " -> "))
			}
		}
	}
	return issues
}

// Validate runs Lint and folds the issues into a single error.
func Validate(tables []Source) error {
	issues := Lint(tables)
	if len(issues) == 0 {
		return nil
	}
	lines := make([]string, len(issues))
	for i, issue := range issues {
		lines[i] = issue.String()
	}
	return fmt.Errorf("found %d errors:\n- %s", len(issues), strings.Join(lines, "\n- "))
}

// cycle crawls the subcurve references of start and returns the reference
// path back to start, or nil when start cannot reach itself.
func cycle(start *curve.Curve, visible curve.Set) []string {
	type step struct {
		c    *curve.Curve
		path []string
	}

	visited := make(map[*curve.Curve]bool)
	queue := []step{{c: start, path: []string{start.Name}}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, ref := range current.c.References() {
			target := visible.Lookup(ref)
			if target == nil {
				continue
			}
			path := append(append([]string(nil), current.path...), target.Name)
			if target == start {
				return path
			}
			if !visited[target] {
				visited[target] = true
				queue = append(queue, step{c: target, path: path})
			}
		}
	}
	return nil
}
