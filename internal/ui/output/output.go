// Package output provides utilities for creating termenv.Output with consistent
// color profile handling and for printing routes to a terminal.
package output

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/rescheduler/internal/core/domain"
	"go.trai.ch/rescheduler/internal/ui/style"
)

// ColorProfile returns the color profile for the current environment.
// NO_COLOR forces Ascii, otherwise the terminal's capabilities are detected.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a new termenv.Output with the CLI profile logic.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

// Renderer returns a lipgloss renderer bound to w that honors NO_COLOR.
func Renderer(w io.Writer) *lipgloss.Renderer {
	if w == nil {
		w = os.Stdout
	}
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(ColorProfile())
	return r
}

// FormatRoute renders a route as "Start → Hop → End" with the endpoints highlighted.
func FormatRoute(r *lipgloss.Renderer, p domain.Path) string {
	if len(p) == 0 {
		return style.Failure.Renderer(r).Render(style.Cross + " no route")
	}
	parts := make([]string, len(p))
	for i, n := range p {
		s := style.Hop
		if i == 0 || i == len(p)-1 {
			s = style.Endpoint
		}
		parts[i] = s.Renderer(r).Render(n.String())
	}
	arrow := style.Muted.Renderer(r).Render(" " + style.Arrow + " ")
	return strings.Join(parts, arrow)
}
