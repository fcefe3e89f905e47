package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the curvedit banner to w, coloured when w supports it.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text, color string
	}{
		{"                              _ _ _   ", "#818cf8"},
		{"   ___ _   _ _ ____   _____  __| (_) |_ ", "#a78bfa"},
		{"  / __| | | | '__\\ \\ / / _ \\/ _` | | __|", "#c084fc"},
		{" | (__| |_| | |   \\ V /  __/ (_| | | |_ ", "#e879f9"},
		{"  \\___|\\__,_|_|    \\_/ \\___|\\__,_|_|\\__|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}

// Status prints one-line outcome messages.
type Status struct {
	out *termenv.Output
}

// NewStatus writes status lines to w, using the colour profile detected for it.
func NewStatus(w io.Writer, opts ...termenv.OutputOption) *Status {
	return &Status{out: termenv.NewOutput(w, opts...)}
}

func (s *Status) Success(format string, args ...any) {
	s.line("✔", "#22c55e", format, args...)
}

func (s *Status) Warn(format string, args ...any) {
	s.line("!", "#eab308", format, args...)
}

func (s *Status) Failure(format string, args ...any) {
	s.line("✘", "#ef4444", format, args...)
}

func (s *Status) line(mark, color, format string, args ...any) {
	prefix := s.out.String(mark).Foreground(s.out.Color(color)).Bold()
	fmt.Fprintf(s.out, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}
