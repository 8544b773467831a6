package dock

import "paneldock/internal/geom"

// sideFn receives one occupied, visible slot during a carve pass: the slot
// index, its occupant, the region carved for it and the separator gap (an
// empty rect for non-expansive slots).
type sideFn func(slot int, occ Occupant, rc, sep geom.Rect)

// forEachSide walks the slots of a node in the fixed carve order (top,
// bottom, left, right, center), shrinking the remaining bounds after each
// directional slot and handing the center whatever is left. Expansive
// slots additionally carve a separator gap for the user-draggable
// splitter. This order is load-bearing: changing it changes the geometry
// of any asymmetric arrangement.
func (t *Tree) forEachSide(id NodeID, bounds geom.Rect, f sideFn) {
	n := t.node(id)
	for i := 0; i < numSlots; i++ {
		occ := n.slots[i]
		if occ.IsEmpty() || !t.occupantVisible(occ) {
			continue
		}

		spacing := 0
		if n.aligns[i]&Expansive != 0 {
			spacing = t.cfg.Spacing
		}

		sz := t.occupantSizeHint(occ)
		if n.aligns[i]&Expansive != 0 {
			sz = n.sizes[i]
		}

		var rc, sep geom.Rect
		switch i {
		case topIndex:
			rc = geom.NewRect(bounds.X, bounds.Y, bounds.W, sz.H)
			bounds.Y += rc.H
			bounds.H -= rc.H
			if spacing > 0 {
				sep = geom.NewRect(bounds.X, bounds.Y, bounds.W, spacing)
				bounds.Y += spacing
				bounds.H -= spacing
			}
		case bottomIndex:
			rc = geom.NewRect(bounds.X, bounds.Y2()-sz.H, bounds.W, sz.H)
			bounds.H -= rc.H
			if spacing > 0 {
				sep = geom.NewRect(bounds.X, bounds.Y2()-spacing, bounds.W, spacing)
				bounds.H -= spacing
			}
		case leftIndex:
			rc = geom.NewRect(bounds.X, bounds.Y, sz.W, bounds.H)
			bounds.X += rc.W
			bounds.W -= rc.W
			if spacing > 0 {
				sep = geom.NewRect(bounds.X, bounds.Y, spacing, bounds.H)
				bounds.X += spacing
				bounds.W -= spacing
			}
		case rightIndex:
			rc = geom.NewRect(bounds.X2()-sz.W, bounds.Y, sz.W, bounds.H)
			bounds.W -= rc.W
			if spacing > 0 {
				sep = geom.NewRect(bounds.X2()-spacing, bounds.Y, spacing, bounds.H)
				bounds.W -= spacing
			}
		case centerIndex:
			rc = bounds
		}

		f(i, occ, rc, sep)
	}
}

// SizeHint aggregates the node's minimum size: each visible directional
// slot contributes its extent plus spacing, the center contributes its own
// hint in both axes.
func (t *Tree) SizeHint(id NodeID) geom.Size {
	n := t.node(id)
	var sz geom.Size

	if t.hasVisibleSlot(id, leftIndex) {
		sz.W += t.occupantSizeHint(n.slots[leftIndex]).W + t.cfg.Spacing
	}
	if t.hasVisibleSlot(id, rightIndex) {
		sz.W += t.occupantSizeHint(n.slots[rightIndex]).W + t.cfg.Spacing
	}
	if t.hasVisibleSlot(id, topIndex) {
		sz.H += t.occupantSizeHint(n.slots[topIndex]).H + t.cfg.Spacing
	}
	if t.hasVisibleSlot(id, bottomIndex) {
		sz.H += t.occupantSizeHint(n.slots[bottomIndex]).H + t.cfg.Spacing
	}
	if t.hasVisibleSlot(id, centerIndex) {
		c := t.occupantSizeHint(n.slots[centerIndex])
		sz.W += c.W
		sz.H += c.H
	}
	return sz
}

// Layout recomputes visibility bottom-up and assigns bounds to every
// docked panel by carving the given bounds through the tree.
func (t *Tree) Layout(bounds geom.Rect) {
	t.lastBounds = bounds
	t.updateVisibility(t.root)
	t.layoutNode(t.root, bounds)
}

// Bounds returns the region covered by the last Layout call.
func (t *Tree) Bounds() geom.Rect { return t.lastBounds }

// NodeBounds returns a node's region from the last layout pass.
func (t *Tree) NodeBounds(id NodeID) geom.Rect { return t.node(id).bounds }

func (t *Tree) relayout() {
	if !t.lastBounds.IsEmpty() {
		t.Layout(t.lastBounds)
	}
}

func (t *Tree) layoutNode(id NodeID, bounds geom.Rect) {
	t.node(id).bounds = bounds

	t.forEachSide(id, bounds, func(slot int, occ Occupant, rc, sep geom.Rect) {
		switch occ.Kind {
		case OccupantPanel:
			t.placePanel(occ.Panel, rc)
		case OccupantDock:
			t.layoutNode(occ.Dock, rc)
		case OccupantTabs:
			occ.Tabs.SetBounds(rc)
		}
	})
}

// placePanel assigns panel bounds, reserving the drag-handle strip while
// customize mode is active.
func (t *Tree) placePanel(p Panel, rc geom.Rect) {
	if t.customizing {
		switch p.DockHandleSide() {
		case Top:
			rc.Y += handleExtent
			rc.H -= handleExtent
		case Left:
			rc.X += handleExtent
			rc.W -= handleExtent
		}
	}
	p.SetBounds(rc)
}

// handleExtent is the thickness of the drag-handle strip in cells.
const handleExtent = 1

// updateVisibility recomputes whether each node resolves to at least one
// visible leaf, bottom-up, so hidden panels do not reserve space in the
// following carve pass.
func (t *Tree) updateVisibility(id NodeID) bool {
	n := t.node(id)
	visible := false
	for i := 0; i < numSlots; i++ {
		if !n.slots[i].IsEmpty() {
			// Alignment propagates through nested docks, so it must track
			// their current occupancy, not the occupancy at dock time.
			n.aligns[i] = t.calcAlign(id, i)
		}
		switch occ := n.slots[i]; occ.Kind {
		case OccupantPanel:
			if occ.Panel.Visible() {
				visible = true
			}
		case OccupantDock:
			if t.updateVisibility(occ.Dock) {
				visible = true
			}
		case OccupantTabs:
			if occ.Tabs.Visible() {
				visible = true
			}
		}
	}
	n.visible = visible
	return visible
}

func (t *Tree) occupantVisible(occ Occupant) bool {
	switch occ.Kind {
	case OccupantPanel:
		return occ.Panel.Visible()
	case OccupantDock:
		return t.computeVisible(occ.Dock)
	case OccupantTabs:
		return occ.Tabs.Visible()
	}
	return false
}

// computeVisible resolves a node's visibility without relying on the
// cached flag, so size hints stay correct between layout passes.
func (t *Tree) computeVisible(id NodeID) bool {
	n := t.node(id)
	for i := 0; i < numSlots; i++ {
		occ := n.slots[i]
		if occ.IsEmpty() {
			continue
		}
		if t.occupantVisible(occ) {
			return true
		}
	}
	return false
}

func (t *Tree) hasVisibleSlot(id NodeID, i int) bool {
	occ := t.node(id).slots[i]
	return !occ.IsEmpty() && t.occupantVisible(occ)
}

func (t *Tree) occupantSizeHint(occ Occupant) geom.Size {
	switch occ.Kind {
	case OccupantPanel:
		return occ.Panel.SizeHint()
	case OccupantDock:
		return t.SizeHint(occ.Dock)
	case OccupantTabs:
		return occ.Tabs.SizeHint()
	}
	return geom.Size{}
}
