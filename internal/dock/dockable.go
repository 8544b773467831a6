package dock

import "paneldock/internal/geom"

// Dockable is the capability a panel exposes to participate in docking:
// which sides it accepts and on which edge its drag handle is drawn.
// DockableAt may include the Expansive bit to request a resizable splitter
// when the panel occupies a directional slot.
type Dockable interface {
	DockableAt() Side
	DockHandleSide() Side
}

// Panel is the widget surface the engine arranges. The engine treats panels
// as opaque: it queries natural size and visibility, assigns bounds, and
// renders View only to build drag-ghost snapshots.
type Panel interface {
	Dockable

	ID() string
	SizeHint() geom.Size
	Bounds() geom.Rect
	SetBounds(geom.Rect)
	Visible() bool
	SetVisible(bool)
	View() string
}
