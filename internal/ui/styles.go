package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, borders
	ColorDanger    = "196" // Red - for warnings, errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "243" // Darker gray - for very dim text
	ColorWarning   = "208" // Orange - for warning details
)

// Styles contains shared style definitions used across the dock view,
// the layout selector and overlays.
var Styles = struct {
	Title lipgloss.Style // Bold accent color - for the header bar

	// Dock chrome
	Separator lipgloss.Style // Splitter gaps between expansive slots
	Handle    lipgloss.Style // Drag-handle strips in customize mode
	TabActive lipgloss.Style // Active tab label
	TabIdle   lipgloss.Style // Inactive tab labels
	Ghost     lipgloss.Style // Floating drag preview
	DropZone  lipgloss.Style // Armed drop-zone placeholder

	// Text styles
	Selected lipgloss.Style // Highlighted/selected items
	Muted    lipgloss.Style // Dimmed text
	Normal   lipgloss.Style // Normal text
	Hint     lipgloss.Style // Help/hint text
	Status   lipgloss.Style // Status bar text
	Modified lipgloss.Style // Modified-default marker in the selector
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Separator: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Handle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	TabActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TabIdle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Ghost: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	DropZone: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Modified: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
}
