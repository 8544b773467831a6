package dock

import "paneldock/internal/geom"

// tabStripHeight is the row reserved for the tab strip above the active
// panel, in cells.
const tabStripHeight = 1

// TabGroup holds several panels contending for the same slot, exposed as a
// tab strip plus the active panel. Groups are created implicitly when a
// second panel is docked onto an occupied slot and dissolve implicitly when
// their last tab is removed.
type TabGroup struct {
	tabs   []Panel
	active int
	bounds geom.Rect
}

func newTabGroup(first, second Panel) *TabGroup {
	g := &TabGroup{tabs: []Panel{first, second}}
	g.active = 1 // the newly docked panel takes focus
	return g
}

// Tabs returns the panels in tab order.
func (g *TabGroup) Tabs() []Panel { return g.tabs }

// Active returns the currently shown panel, or nil for an empty group.
func (g *TabGroup) Active() Panel {
	if len(g.tabs) == 0 {
		return nil
	}
	return g.tabs[g.active]
}

// ActiveIndex returns the index of the active tab.
func (g *TabGroup) ActiveIndex() int { return g.active }

// SetActive switches the shown panel. Out-of-range indices are ignored.
func (g *TabGroup) SetActive(i int) {
	if i >= 0 && i < len(g.tabs) {
		g.active = i
	}
}

func (g *TabGroup) add(p Panel) {
	g.tabs = append(g.tabs, p)
	g.active = len(g.tabs) - 1
}

// remove drops p from the group and reports whether it was a member.
func (g *TabGroup) remove(p Panel) bool {
	for i, tab := range g.tabs {
		if tab == p {
			g.tabs = append(g.tabs[:i], g.tabs[i+1:]...)
			if g.active >= len(g.tabs) && g.active > 0 {
				g.active--
			}
			return true
		}
	}
	return false
}

func (g *TabGroup) contains(p Panel) bool {
	for _, tab := range g.tabs {
		if tab == p {
			return true
		}
	}
	return false
}

// DockableAt is the union of the member panels' capabilities, so a group
// may dock anywhere any of its tabs may.
func (g *TabGroup) DockableAt() Side {
	var s Side
	for _, tab := range g.tabs {
		s |= tab.DockableAt()
	}
	return s
}

// SizeHint is the largest member hint plus the tab strip row.
func (g *TabGroup) SizeHint() geom.Size {
	var sz geom.Size
	for _, tab := range g.tabs {
		hint := tab.SizeHint()
		if hint.W > sz.W {
			sz.W = hint.W
		}
		if hint.H > sz.H {
			sz.H = hint.H
		}
	}
	sz.H += tabStripHeight
	return sz
}

// Visible reports whether any member panel is visible.
func (g *TabGroup) Visible() bool {
	for _, tab := range g.tabs {
		if tab.Visible() {
			return true
		}
	}
	return false
}

// Bounds returns the group's assigned region including the tab strip.
func (g *TabGroup) Bounds() geom.Rect { return g.bounds }

// SetBounds assigns the group region: the strip row on top, the active
// panel below it.
func (g *TabGroup) SetBounds(r geom.Rect) {
	g.bounds = r
	if active := g.Active(); active != nil {
		body := geom.Rect{X: r.X, Y: r.Y + tabStripHeight, W: r.W, H: r.H - tabStripHeight}
		active.SetBounds(body)
	}
}

// stripRect returns the clickable tab strip row.
func (g *TabGroup) stripRect() geom.Rect {
	return geom.Rect{X: g.bounds.X, Y: g.bounds.Y, W: g.bounds.W, H: tabStripHeight}
}

// hitTab maps a point on the strip to a tab index, or -1. Tabs share the
// strip width evenly.
func (g *TabGroup) hitTab(p geom.Point) int {
	strip := g.stripRect()
	if !strip.Contains(p) || len(g.tabs) == 0 {
		return -1
	}
	cell := strip.W / len(g.tabs)
	if cell == 0 {
		cell = 1
	}
	i := (p.X - strip.X) / cell
	if i >= len(g.tabs) {
		i = len(g.tabs) - 1
	}
	return i
}
