// Package style provides shared UI styling primitives including brand colors,
// icons and the lipgloss styles used to print routes.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
)

// Route styles.
var (
	Endpoint = lipgloss.NewStyle().Bold(true).Foreground(Iris)
	Hop      = lipgloss.NewStyle().Foreground(Slate)
	Muted    = lipgloss.NewStyle().Faint(true)
	Success  = lipgloss.NewStyle().Foreground(Green)
	Failure  = lipgloss.NewStyle().Foreground(Red)
)
