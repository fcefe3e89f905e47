package tui

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/curvedit/pkg/curve"
)

// Plotter draws sampled curves as character plots.
type Plotter struct {
	Width, Height int
	// Color is the hex colour of the plotted points.
	Color string
	out   *termenv.Output
}

// NewPlotter creates a plotter whose colours match the profile of w.
func NewPlotter(w io.Writer, width, height int, color string, opts ...termenv.OutputOption) *Plotter {
	return &Plotter{Width: width, Height: height, Color: color, out: termenv.NewOutput(w, opts...)}
}

// Render plots points on a Width x Height grid, with the Y range on the
// left and the X range below.
func (p *Plotter) Render(points []curve.Point) string {
	if len(points) == 0 || p.Width < 1 || p.Height < 1 {
		return ""
	}

	minX, maxX := points[0].X, points[len(points)-1].X
	minY, maxY := points[0].Y, points[0].Y
	for _, pt := range points {
		minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
	}
	if minY == maxY {
		minY, maxY = minY-0.5, maxY+0.5
	}

	grid := make([][]bool, p.Height)
	for i := range grid {
		grid[i] = make([]bool, p.Width)
	}
	for _, pt := range points {
		col := 0
		if maxX > minX {
			col = scale(pt.X-minX, maxX-minX, p.Width)
		}
		row := scale(maxY-pt.Y, maxY-minY, p.Height)
		grid[row][col] = true
	}

	dot := p.out.String("*").Foreground(p.out.Color(p.Color)).String()

	var sb strings.Builder
	for r, cells := range grid {
		switch r {
		case 0:
			fmt.Fprintf(&sb, "%6.2f |", maxY)
		case p.Height - 1:
			fmt.Fprintf(&sb, "%6.2f |", minY)
		default:
			sb.WriteString("       |")
		}

		last := -1
		for c, set := range cells {
			if set {
				last = c
			}
		}
		for c := 0; c <= last; c++ {
			if cells[c] {
				sb.WriteString(dot)
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("       +" + strings.Repeat("-", p.Width) + "\n")
	left, right := fmt.Sprintf("%.2f", minX), fmt.Sprintf("%.2f", maxX)
	gap := max(p.Width-len(left)-len(right), 1)
	sb.WriteString("        " + left + strings.Repeat(" ", gap) + right + "\n")
	return sb.String()
}

// scale maps v in [0, span] onto a cell index in [0, cells).
func scale(v, span float32, cells int) int {
	i := int(math.Round(float64(v / span * float32(cells-1))))
	return max(0, min(i, cells-1))
}
