package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/curvedit/internal/compiler"
	"github.com/aretw0/curvedit/pkg/curve"
)

// TableMarkdown summarises the curves of a table.
func TableMarkdown(name string, t *curve.Table) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", cell(name))
	if t.Version != "" {
		fmt.Fprintf(&sb, "Version `%s`\n\n", t.Version)
	}
	if len(t.Curves) == 0 {
		sb.WriteString("_No curves._\n")
		return sb.String()
	}

	sb.WriteString("| Curve | Keyframes | X range | References |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, c := range t.Curves {
		b := c.Bounds()
		refs := strings.Join(c.References(), ", ")
		if refs == "" {
			refs = "-"
		}
		fmt.Fprintf(&sb, "| %s | %d | %s .. %s | %s |\n", cell(c.Name), len(c.Keyframes), num(b.MinX), num(b.MaxX), cell(refs))
	}
	return sb.String()
}

// CurveMarkdown lists the keyframes of c.
func CurveMarkdown(c *curve.Curve) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", cell(c.Name))
	if curve.IsBuiltin(c.Name) {
		sb.WriteString("_Builtin, read-only._\n\n")
	}

	sb.WriteString("| # | X | Y | Segment |\n")
	sb.WriteString("|---|---|---|---|\n")
	for i, kf := range c.Keyframes {
		seg, err := compiler.FormatSegment(kf.Segment)
		if err != nil {
			return "", fmt.Errorf("keyframe %d: %w", i, err)
		}
		fmt.Fprintf(&sb, "| %d | %s | %s | %s |\n", i, num(kf.X), num(kf.Y), cell(seg))
	}
	return sb.String(), nil
}

func num(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
