package dock

import "paneldock/internal/geom"

// Ghost is the floating preview shown while a panel is dragged: a snapshot
// of the panel's rendered view following the pointer, offset by the
// initial grab point.
type Ghost struct {
	Panel Panel
	View  string
	Pos   geom.Point

	offset geom.Point
}

// dragState is the pointer gesture state. Capture is taken exactly once on
// a successful press and released exactly once on release; the ghost and
// the drop-zone placeholder live only for the duration of one gesture.
type dragState struct {
	capture   bool
	hit       Hit
	startPos  geom.Point
	startSize geom.Size

	dragging    bool
	targetSide  Side
	ghost       *Ghost
	placeholder *placeholderPanel
}

func newDragState() dragState {
	return dragState{hit: noHit()}
}

// placeholderPanel is the drop-zone stand-in docked live at the armed side
// so the surrounding layout previews the drop. It accepts every side and
// is expansive so it claims a realistic region.
type placeholderPanel struct {
	hint    geom.Size
	minSize geom.Size
	bounds  geom.Rect
}

func (p *placeholderPanel) ID() string            { return "dock-dropzone" }
func (p *placeholderPanel) DockableAt() Side      { return AllSides | Expansive }
func (p *placeholderPanel) DockHandleSide() Side  { return 0 }
func (p *placeholderPanel) SizeHint() geom.Size   { return p.hint }
func (p *placeholderPanel) Bounds() geom.Rect     { return p.bounds }
func (p *placeholderPanel) SetBounds(r geom.Rect) { p.bounds = r }
func (p *placeholderPanel) Visible() bool         { return true }
func (p *placeholderPanel) SetVisible(bool)       {}
func (p *placeholderPanel) View() string          { return "" }

// DropResult reports the outcome of a pointer release.
type DropResult struct {
	// Docked is true when a drag ended on an armed side and the panel
	// was redocked there.
	Docked bool

	// Menu lists the sides to offer in a context menu after a plain
	// right-click on a drag handle. Empty when no menu should open.
	Menu      []Side
	MenuPanel Panel
}

// HasCapture reports whether a gesture is in progress.
func (t *Tree) HasCapture() bool { return t.drag.capture }

// Dragging reports whether a drag gesture (not a resize) is in progress.
func (t *Tree) Dragging() bool { return t.drag.dragging }

// ArmedSide returns the currently previewed drop side, or 0.
func (t *Tree) ArmedSide() Side { return t.drag.targetSide }

// DragGhost returns the floating preview while a drag is showing one.
func (t *Tree) DragGhost() (*Ghost, bool) {
	if t.drag.ghost == nil {
		return nil, false
	}
	return t.drag.ghost, true
}

// DropPreview returns the drop-zone placeholder's region while a side is
// armed.
func (t *Tree) DropPreview() (geom.Rect, bool) {
	if t.drag.placeholder == nil || t.drag.targetSide == 0 {
		return geom.Rect{}, false
	}
	return t.drag.placeholder.bounds, true
}

// MouseDown starts a gesture. A press on a tab strip switches the active
// tab; a press on a separator starts resizing; a press on a drag handle
// (while customizing) starts dragging, unless it is a right press, which
// defers to the context menu on release. Returns whether the press was
// consumed.
func (t *Tree) MouseDown(pos geom.Point, right bool) bool {
	if t.drag.capture {
		return true
	}

	hit := t.CalcHit(pos)

	if hit.OnTab() {
		hit.tabs.SetActive(hit.tabIndex)
		t.relayout()
		return true
	}

	if !hit.OnSeparator() && !hit.OnHandle() {
		return false
	}

	t.drag.hit = hit
	t.drag.startPos = pos
	if hit.OnSeparator() {
		t.drag.startSize = t.node(hit.node).sizes[hit.sideIndex]
	}
	t.drag.capture = true

	if hit.OnHandle() && !right {
		t.drag.dragging = true
		t.showGhost(hit.panel, pos)
	}
	return true
}

// MouseMove advances the gesture: resizing updates the grabbed slot's
// tracked size along its axis; dragging moves the ghost and re-arms the
// drop-zone placeholder when the pointer enters a permitted proximity
// zone.
func (t *Tree) MouseMove(pos geom.Point) {
	if !t.drag.capture {
		return
	}

	if t.drag.ghost != nil {
		t.drag.ghost.Pos = pos.Sub(t.drag.ghost.offset)
	}

	if t.drag.hit.OnSeparator() {
		t.resizeTo(pos)
		return
	}
	if t.drag.hit.OnHandle() && t.drag.dragging {
		t.armDropZone(pos)
	}
}

// MouseUp ends the gesture. The ghost and the placeholder are always torn
// down, whether or not a drop happened.
func (t *Tree) MouseUp(pos geom.Point, right bool) DropResult {
	if !t.drag.capture {
		return DropResult{}
	}
	t.drag.capture = false

	if t.drag.placeholder != nil {
		t.Undock(t.drag.placeholder)
	}

	var res DropResult
	if p := t.drag.hit.panel; p != nil {
		switch {
		case right && !t.drag.dragging:
			res.Menu = t.MenuSides(p)
			res.MenuPanel = p
		case t.drag.targetSide != 0 && t.drag.dragging:
			t.Redock(p, t.drag.targetSide)
			res.Docked = true
		}
	}

	t.drag = newDragState()
	t.relayout()
	return res
}

// MenuSides lists the sides a panel could move to from a context menu: its
// permitted sides minus the one it currently occupies.
func (t *Tree) MenuSides(p Panel) []Side {
	ref, ok := t.find(p)
	if !ok {
		return nil
	}
	current := t.WhichSideChildIsDocked(ref.node, p)

	var sides []Side
	for _, side := range []Side{Left, Right, Top, Bottom} {
		if p.DockableAt()&side != 0 && current != side {
			sides = append(sides, side)
		}
	}
	return sides
}

// Redock moves a docked panel to another side of its current dock node,
// asking the SizeAdvisor for an appropriate size for the destination.
func (t *Tree) Redock(p Panel, side Side) {
	ref, ok := t.find(p)
	if !ok {
		return
	}
	workspace := t.node(ref.node).bounds

	var size geom.Size
	if t.cfg.SizeAdvisor != nil {
		size = t.cfg.SizeAdvisor(p, side, workspace)
	}

	target := ref.node
	t.Undock(p)
	if !t.node(target).inUse {
		// The panel's wrapper dissolved with it; dock at the root.
		target = t.root
	}
	t.Dock(target, side, p, size)
	t.relayout()
	t.notifyResized()
}

func (t *Tree) resizeTo(pos geom.Point) {
	n := t.node(t.drag.hit.node)
	sz := &n.sizes[t.drag.hit.sideIndex]
	d := pos.Sub(t.drag.startPos)

	switch t.drag.hit.sideIndex {
	case topIndex:
		sz.H = max(0, t.drag.startSize.H+d.Y)
	case bottomIndex:
		sz.H = max(0, t.drag.startSize.H-d.Y)
	case leftIndex:
		sz.W = max(0, t.drag.startSize.W+d.X)
	case rightIndex:
		sz.W = max(0, t.drag.startSize.W-d.X)
	}

	t.relayout()
	t.notifyResized()
}

func (t *Tree) showGhost(p Panel, pos geom.Point) {
	origin := p.Bounds().Origin()
	t.drag.ghost = &Ghost{
		Panel:  p,
		View:   p.View(),
		Pos:    origin,
		offset: pos.Sub(origin),
	}
	t.drag.placeholder = &placeholderPanel{
		hint:    p.SizeHint(),
		minSize: p.Bounds().Size(),
	}
}

// armDropZone probes candidate sides around the dragged panel's dock node
// using a proximity buffer derived from the panel's own size, clamped to a
// scaled minimum. A side is offered only when the panel's capability
// permits it and the panel is not already there. Re-arming re-docks the
// placeholder live so the layout previews the drop.
func (t *Tree) armDropZone(pos geom.Point) {
	p := t.drag.hit.panel
	ref, ok := t.find(p)
	if !ok {
		return
	}
	origin := t.WhichSideChildIsDocked(ref.node, p)
	bounds := t.node(ref.node).bounds

	if !bounds.Contains(pos) {
		return
	}

	size := p.Bounds().Size()
	buffer := max(t.cfg.BufferMin*t.cfg.Scale, min(size.W, size.H))

	can := p.DockableAt()
	var target Side
	switch {
	case can&Left != 0 && origin&Left == 0 && pos.X < bounds.X+buffer:
		target = Left
	case can&Right != 0 && origin&Right == 0 && pos.X > bounds.X2()-buffer:
		target = Right
	case can&Top != 0 && origin&Top == 0 && pos.Y < bounds.Y+buffer:
		target = Top
	case can&Bottom != 0 && origin&Bottom == 0 && pos.Y > bounds.Y2()-buffer:
		target = Bottom
	}

	if target == t.drag.targetSide {
		return
	}
	t.drag.targetSide = target

	if t.drag.placeholder != nil {
		t.Undock(t.drag.placeholder)
		if target != 0 {
			// Re-resolve: undocking the placeholder may have dissolved
			// a wrapper around the dragged panel. No explicit size: an
			// empty slot seeds from the placeholder's hint, an occupied
			// one keeps its tracked size for the preview.
			if ref, ok = t.find(p); ok {
				t.Dock(ref.node, target, t.drag.placeholder, geom.Size{})
			}
		}
	}
	t.relayout()
}
