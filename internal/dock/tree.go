// Package dock implements the recursive docking container used by the
// workspace: a tree of nodes with five slots each (top, bottom, left,
// right, center), the dock/undock/redock tree surgery, geometry carving,
// splitter resizing and the pointer-driven drag state machine.
//
// Nodes live in an arena and are addressed by NodeID handles; every node
// records its parent handle and slot instead of holding back-pointers, so
// tree surgery (DockRelativeTo, cascading Undock) cannot leave dangling
// references.
package dock

import "paneldock/internal/geom"

// NodeID is a stable handle into the tree's node arena.
type NodeID int32

// NilNode is the absent-node handle.
const NilNode NodeID = -1

type node struct {
	inUse      bool
	autoRemove bool
	parent     NodeID
	parentSlot int

	slots  [numSlots]Occupant
	aligns [numSlots]Side
	sizes  [numSlots]geom.Size

	bounds  geom.Rect
	visible bool
}

// Config carries the environment the engine needs. Scale is the UI scale
// factor, threaded explicitly rather than read from a global.
type Config struct {
	// Scale multiplies cell metrics (minimum drag hot-zone). Values < 1
	// are treated as 1.
	Scale int

	// Spacing is the separator gap carved next to expansive slots, in
	// cells. Zero means the default of one cell.
	Spacing int

	// BufferMin is the unscaled minimum proximity hot-zone for drop
	// targets. Zero means the default of 12 cells.
	BufferMin int

	// SizeAdvisor, when set, computes the preferred size for a panel
	// being redocked to a new side. The workspace rect is the bounds of
	// the dock node performing the redock.
	SizeAdvisor func(p Panel, side Side, workspace geom.Rect) geom.Size
}

// Tree is a dock tree plus its interaction state. All methods must be
// called from the UI event loop; the tree performs no locking.
type Tree struct {
	cfg   Config
	nodes []node
	free  []NodeID
	root  NodeID

	customizing bool
	lastBounds  geom.Rect

	// OnUserResized is invoked whenever the user changes the dock
	// configuration (splitter drag, drop, menu redock). Callers use it
	// to persist the active layout.
	OnUserResized func()

	drag dragState
}

// slotRef locates a panel inside the tree: the node and slot holding it,
// and the tab group when the panel is a tab rather than the direct
// occupant.
type slotRef struct {
	node NodeID
	slot int
	tabs *TabGroup
}

// NewTree creates a tree with a single empty root node.
func NewTree(cfg Config) *Tree {
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	if cfg.Spacing == 0 {
		cfg.Spacing = 1
	}
	if cfg.BufferMin == 0 {
		cfg.BufferMin = 12
	}
	t := &Tree{cfg: cfg}
	t.root = t.alloc(NilNode, -1, false)
	t.drag = newDragState()
	return t
}

// Root returns the root node handle.
func (t *Tree) Root() NodeID { return t.root }

// Scale returns the configured UI scale factor.
func (t *Tree) Scale() int { return t.cfg.Scale }

func (t *Tree) node(id NodeID) *node {
	return &t.nodes[id]
}

func (t *Tree) alloc(parent NodeID, slot int, auto bool) NodeID {
	var id NodeID
	if n := len(t.free); n > 0 {
		id = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		t.nodes = append(t.nodes, node{})
		id = NodeID(len(t.nodes) - 1)
	}
	*t.node(id) = node{
		inUse:      true,
		autoRemove: auto,
		parent:     parent,
		parentSlot: slot,
	}
	return id
}

func (t *Tree) freeNode(id NodeID) {
	*t.node(id) = node{}
	t.free = append(t.free, id)
}

// Dock places a panel at the given side of node id. An empty slot is
// occupied directly; a slot holding a nested dock receives the panel at
// that sub-dock's center; a slot holding a lone panel turns into a tab
// group holding both; a slot already holding a tab group gains a tab.
// prefSize, when non-zero, overrides the slot's tracked size.
//
// Docking a nil panel is a programming error and panics.
func (t *Tree) Dock(id NodeID, side Side, p Panel, prefSize geom.Size) {
	if p == nil {
		panic("dock: nil panel")
	}

	i := sideIndex(side)
	n := t.node(id)
	switch occ := n.slots[i]; occ.Kind {
	case OccupantEmpty:
		t.setSlot(id, i, panelOccupant(p))
		if !prefSize.IsZero() {
			t.node(id).sizes[i] = prefSize
		}
	case OccupantDock:
		t.Dock(occ.Dock, Center, p, prefSize)
	case OccupantPanel:
		// The slot's tracked size outlives tab-group formation; a join
		// without an explicit size must not clobber a user resize.
		keep := n.sizes[i]
		t.setSlot(id, i, tabsOccupant(newTabGroup(occ.Panel, p)))
		if prefSize.IsZero() {
			t.node(id).sizes[i] = keep
		} else {
			t.node(id).sizes[i] = prefSize
		}
	case OccupantTabs:
		occ.Tabs.add(p)
		t.refreshAlign(id, i)
		if !prefSize.IsZero() {
			t.node(id).sizes[i] = prefSize
		}
	}
}

// DockRelativeTo inserts a panel adjacent to an already-docked panel
// without disturbing siblings: the relative panel is wrapped in a fresh
// auto-removed sub-dock, re-docked at its center, and the new panel docked
// at the requested side of that sub-dock. The former slot's bookkeeping is
// patched to point at the wrapper.
//
// The relative panel must be docked (directly, not as a tab); anything
// else is a programming error and panics.
func (t *Tree) DockRelativeTo(relative Panel, side Side, p Panel, prefSize geom.Size) {
	if relative == nil || p == nil {
		panic("dockRelativeTo: nil panel")
	}
	ref, ok := t.find(relative)
	if !ok || ref.tabs != nil {
		panic("dockRelativeTo: relative panel is not directly docked")
	}

	sub := t.alloc(ref.node, ref.slot, true)
	t.setSlot(ref.node, ref.slot, dockOccupant(sub))
	t.Dock(sub, Center, relative, geom.Size{})
	t.Dock(sub, side, p, prefSize)
}

// Undock removes a panel from the tree. Removing a panel that is not
// docked is a no-op. Undocking the last occupant of an auto-created
// wrapper (sub-dock or tab group) removes the wrapper as well, cascading
// upward so no empty wrapper stays mounted.
func (t *Tree) Undock(p Panel) {
	ref, ok := t.find(p)
	if !ok {
		return
	}

	if g := ref.tabs; g != nil {
		g.remove(p)
		switch len(g.Tabs()) {
		case 0:
			t.clearSlot(ref.node, ref.slot)
		case 1:
			// A single tab needs no strip; collapse to a plain panel.
			// The slot keeps its tracked size across the collapse.
			lone := g.Tabs()[0]
			keep := t.node(ref.node).sizes[ref.slot]
			t.setSlot(ref.node, ref.slot, panelOccupant(lone))
			t.node(ref.node).sizes[ref.slot] = keep
		default:
			t.refreshAlign(ref.node, ref.slot)
			return
		}
	} else {
		t.clearSlot(ref.node, ref.slot)
	}

	t.removeIfEmpty(ref.node)
}

// Subdock returns the nested dock at side, creating an auto-removed one
// first if the slot does not hold a dock yet. Any existing occupant is
// moved to the new sub-dock's center.
func (t *Tree) Subdock(id NodeID, side Side) NodeID {
	i := sideIndex(side)
	if occ := t.node(id).slots[i]; occ.Kind == OccupantDock {
		return occ.Dock
	}

	old := t.node(id).slots[i]
	sub := t.alloc(id, i, true)
	t.setSlot(id, i, dockOccupant(sub))
	if !old.IsEmpty() {
		t.moveOccupant(sub, centerIndex, old)
	}
	return sub
}

// Center is shorthand for the nested dock at the center slot.
func (t *Tree) Center(id NodeID) NodeID {
	return t.Subdock(id, Center)
}

// WhichSideChildIsDocked returns the side of node id that directly holds
// the panel (as lone occupant or tab member), or 0 if the panel is not a
// direct child.
func (t *Tree) WhichSideChildIsDocked(id NodeID, p Panel) Side {
	n := t.node(id)
	for i := 0; i < numSlots; i++ {
		switch occ := n.slots[i]; occ.Kind {
		case OccupantPanel:
			if occ.Panel == p {
				return sideFromIndex(i)
			}
		case OccupantTabs:
			if occ.Tabs.contains(p) {
				return sideFromIndex(i)
			}
		}
	}
	return 0
}

// UserDefinedSizeAtSide returns the persisted user size for a slot, which
// only exists for expansive slots; non-expansive slots size to content and
// report a zero size.
func (t *Tree) UserDefinedSizeAtSide(id NodeID, side Side) geom.Size {
	i := sideIndex(side)
	n := t.node(id)
	if n.aligns[i]&Expansive != 0 {
		return n.sizes[i]
	}
	return geom.Size{}
}

// SetSlotSize overrides a slot's tracked size. Used when replaying a
// persisted layout, where a sub-dock's stored size cannot be expressed as
// a dock-call argument.
func (t *Tree) SetSlotSize(id NodeID, side Side, sz geom.Size) {
	t.node(id).sizes[sideIndex(side)] = sz
}

// OccupantAt returns the occupant of a slot.
func (t *Tree) OccupantAt(id NodeID, side Side) Occupant {
	return t.node(id).slots[sideIndex(side)]
}

// AlignAt returns the computed alignment flags of a slot.
func (t *Tree) AlignAt(id NodeID, side Side) Side {
	return t.node(id).aligns[sideIndex(side)]
}

// ResetDocks empties the whole tree, freeing every node but the root.
// Panel widgets themselves are untouched; only the arrangement is
// discarded.
func (t *Tree) ResetDocks() {
	t.resetNode(t.root)
}

func (t *Tree) resetNode(id NodeID) {
	n := t.node(id)
	for i := 0; i < numSlots; i++ {
		if occ := n.slots[i]; occ.Kind == OccupantDock {
			t.resetNode(occ.Dock)
			t.freeNode(occ.Dock)
		}
		n.slots[i] = emptyOccupant()
		n.aligns[i] = 0
		n.sizes[i] = geom.Size{}
	}
}

// SetCustomizing toggles whether drag handles and splitters are
// interactive. The flag covers the whole tree.
func (t *Tree) SetCustomizing(enable bool) {
	t.customizing = enable
}

// Customizing reports whether customize mode is active.
func (t *Tree) Customizing() bool { return t.customizing }

// setSlot installs an occupant and recomputes the slot's alignment and
// tracked size, mirroring the occupant's natural size until a preferred
// size overrides it. Dock occupants get their parent bookkeeping patched.
func (t *Tree) setSlot(id NodeID, i int, occ Occupant) {
	n := t.node(id)
	n.slots[i] = occ
	n.aligns[i] = t.calcAlign(id, i)
	if !occ.IsEmpty() {
		n.sizes[i] = t.occupantSizeHint(occ)
	}
	if occ.Kind == OccupantDock {
		sub := t.node(occ.Dock)
		sub.parent = id
		sub.parentSlot = i
	}
}

func (t *Tree) clearSlot(id NodeID, i int) {
	n := t.node(id)
	n.slots[i] = emptyOccupant()
	n.aligns[i] = 0
	// Forget the tracked size so a later re-dock does not reuse it.
	n.sizes[i] = geom.Size{}
}

// moveOccupant reinstalls an occupant (taken from another slot) into node
// id at slot i, preserving its identity.
func (t *Tree) moveOccupant(id NodeID, i int, occ Occupant) {
	t.setSlot(id, i, occ)
}

// refreshAlign recomputes a slot's alignment after tab membership changed.
func (t *Tree) refreshAlign(id NodeID, i int) {
	n := t.node(id)
	n.aligns[i] = t.calcAlign(id, i)
}

// calcAlign derives a slot's alignment from its occupant's capability,
// looking through nested docks at the same slot index.
func (t *Tree) calcAlign(id NodeID, i int) Side {
	switch occ := t.node(id).slots[i]; occ.Kind {
	case OccupantPanel:
		return occ.Panel.DockableAt()
	case OccupantDock:
		return t.calcAlign(occ.Dock, i)
	case OccupantTabs:
		return occ.Tabs.DockableAt()
	}
	return 0
}

// removeIfEmpty cascades auto-wrapper cleanup: an emptied auto-created
// node is unmounted from its parent, which may itself become empty.
func (t *Tree) removeIfEmpty(id NodeID) {
	n := t.node(id)
	if !n.autoRemove || n.parent == NilNode {
		return
	}
	for i := 0; i < numSlots; i++ {
		if !n.slots[i].IsEmpty() {
			return
		}
	}

	parent := n.parent
	t.clearSlot(parent, n.parentSlot)
	t.freeNode(id)
	t.removeIfEmpty(parent)
}

// find locates a panel anywhere in the tree.
func (t *Tree) find(p Panel) (slotRef, bool) {
	for id := range t.nodes {
		n := &t.nodes[id]
		if !n.inUse {
			continue
		}
		for i := 0; i < numSlots; i++ {
			switch occ := n.slots[i]; occ.Kind {
			case OccupantPanel:
				if occ.Panel == p {
					return slotRef{node: NodeID(id), slot: i}, true
				}
			case OccupantTabs:
				if occ.Tabs.contains(p) {
					return slotRef{node: NodeID(id), slot: i, tabs: occ.Tabs}, true
				}
			}
		}
	}
	return slotRef{}, false
}

// Panels returns every docked panel in carve order, depth first. Tab
// members are included in tab order.
func (t *Tree) Panels() []Panel {
	var out []Panel
	t.collectPanels(t.root, &out)
	return out
}

func (t *Tree) collectPanels(id NodeID, out *[]Panel) {
	n := t.node(id)
	for i := 0; i < numSlots; i++ {
		switch occ := n.slots[i]; occ.Kind {
		case OccupantPanel:
			*out = append(*out, occ.Panel)
		case OccupantDock:
			t.collectPanels(occ.Dock, out)
		case OccupantTabs:
			*out = append(*out, occ.Tabs.Tabs()...)
		}
	}
}

func (t *Tree) notifyResized() {
	if t.OnUserResized != nil {
		t.OnUserResized()
	}
}
