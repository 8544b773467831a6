package dock

import "paneldock/internal/geom"

// Hit describes what lies under the pointer: a splitter separator (node +
// slot index), a panel's drag handle, or a tab on a tab strip.
type Hit struct {
	node      NodeID
	sideIndex int
	panel     Panel
	tabs      *TabGroup
	tabIndex  int
}

func noHit() Hit {
	return Hit{node: NilNode, sideIndex: -1, tabIndex: -1}
}

// OnSeparator reports whether the hit grabbed a splitter.
func (h Hit) OnSeparator() bool { return h.sideIndex >= 0 }

// OnHandle reports whether the hit grabbed a panel's drag handle.
func (h Hit) OnHandle() bool { return h.panel != nil }

// OnTab reports whether the hit landed on a tab strip.
func (h Hit) OnTab() bool { return h.tabs != nil && h.tabIndex >= 0 }

// CalcHit resolves the pointer position against the laid-out tree:
// separator gaps win first, then tab strips, then (in customize mode) the
// drag-handle strip along each panel's handle side. Nested docks are
// resolved recursively inside their carved region.
func (t *Tree) CalcHit(pos geom.Point) Hit {
	return t.calcHitNode(t.root, pos)
}

func (t *Tree) calcHitNode(id NodeID, pos geom.Point) Hit {
	hit := noHit()
	t.forEachSide(id, t.node(id).bounds, func(slot int, occ Occupant, rc, sep geom.Rect) {
		if sep.Contains(pos) {
			hit = Hit{node: id, sideIndex: slot, tabIndex: -1}
			return
		}
		if !rc.Contains(pos) {
			return
		}

		switch occ.Kind {
		case OccupantDock:
			if sub := t.calcHitNode(occ.Dock, pos); sub.OnSeparator() || sub.OnHandle() || sub.OnTab() {
				hit = sub
			}
		case OccupantTabs:
			if i := occ.Tabs.hitTab(pos); i >= 0 {
				hit = Hit{node: id, sideIndex: -1, tabs: occ.Tabs, tabIndex: i}
			} else if t.customizing {
				if h := t.hitHandle(id, occ.Tabs.Active(), rc, pos); h.OnHandle() {
					hit = h
				}
			}
		case OccupantPanel:
			if t.customizing {
				if h := t.hitHandle(id, occ.Panel, rc, pos); h.OnHandle() {
					hit = h
				}
			}
		}
	})
	return hit
}

// hitHandle checks the drag-handle strip of a panel within its carved
// region. Panels with no handle side are not draggable.
func (t *Tree) hitHandle(id NodeID, p Panel, rc geom.Rect, pos geom.Point) Hit {
	if p == nil {
		return noHit()
	}
	strip := rc
	switch p.DockHandleSide() {
	case Top:
		strip.H = handleExtent
	case Left:
		strip.W = handleExtent
	default:
		return noHit()
	}
	if strip.Contains(pos) {
		return Hit{node: id, sideIndex: -1, panel: p, tabIndex: -1}
	}
	return noHit()
}

// HandleStrips returns the drag-handle regions of every visible panel for
// rendering while customize mode is active. The second slice holds the
// separator gaps of expansive slots.
func (t *Tree) HandleStrips() (handles, separators []geom.Rect) {
	t.collectStrips(t.root, &handles, &separators)
	return handles, separators
}

func (t *Tree) collectStrips(id NodeID, handles, separators *[]geom.Rect) {
	t.forEachSide(id, t.node(id).bounds, func(slot int, occ Occupant, rc, sep geom.Rect) {
		if !sep.IsEmpty() {
			*separators = append(*separators, sep)
		}
		switch occ.Kind {
		case OccupantDock:
			t.collectStrips(occ.Dock, handles, separators)
		case OccupantPanel:
			if strip, ok := t.handleStrip(occ.Panel, rc); ok {
				*handles = append(*handles, strip)
			}
		case OccupantTabs:
			if strip, ok := t.handleStrip(occ.Tabs.Active(), rc); ok {
				*handles = append(*handles, strip)
			}
		}
	})
}

func (t *Tree) handleStrip(p Panel, rc geom.Rect) (geom.Rect, bool) {
	if p == nil {
		return geom.Rect{}, false
	}
	strip := rc
	switch p.DockHandleSide() {
	case Top:
		strip.H = handleExtent
	case Left:
		strip.W = handleExtent
	default:
		return geom.Rect{}, false
	}
	return strip, true
}

// TabStrip describes one tab group's strip row for rendering.
type TabStrip struct {
	Bounds geom.Rect
	Tabs   []Panel
	Active int
}

// TabStrips returns the strip of every visible tab group in the tree.
func (t *Tree) TabStrips() []TabStrip {
	var out []TabStrip
	t.collectTabStrips(t.root, &out)
	return out
}

func (t *Tree) collectTabStrips(id NodeID, out *[]TabStrip) {
	n := t.node(id)
	for i := 0; i < numSlots; i++ {
		switch occ := n.slots[i]; occ.Kind {
		case OccupantDock:
			t.collectTabStrips(occ.Dock, out)
		case OccupantTabs:
			if !occ.Tabs.Visible() {
				continue
			}
			*out = append(*out, TabStrip{
				Bounds: occ.Tabs.stripRect(),
				Tabs:   occ.Tabs.Tabs(),
				Active: occ.Tabs.ActiveIndex(),
			})
		}
	}
}
