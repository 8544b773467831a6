// Package layout captures dock arrangements as immutable snapshots and
// persists an ordered, id-unique collection of them to a single XML file
// in the user's config directory.
package layout

import (
	"encoding/xml"
	"strings"

	"paneldock/internal/dock"
	"paneldock/internal/geom"
)

// Reserved ids for the built-in baseline arrangements. They are never
// offered for deletion; a user customization stored under one of these ids
// shadows the built-in tree.
const (
	Default         = "_default_"
	MirroredDefault = "_mirrored_default_"
)

// Element trees mirror the dock structure: a dock element holds side
// elements in carve order, each side holding a panel, a nested dock or a
// tab group, plus the recorded size for expansive slots.

// DockElem is the serialized form of one dock node.
type DockElem struct {
	Sides []SideElem `xml:"side"`
}

// SideElem records one occupied slot.
type SideElem struct {
	Name   string     `xml:"name,attr"`
	Width  int        `xml:"width,attr,omitempty"`
	Height int        `xml:"height,attr,omitempty"`
	Panel  *PanelElem `xml:"panel,omitempty"`
	Dock   *DockElem  `xml:"dock,omitempty"`
	Tabs   *TabsElem  `xml:"tabs,omitempty"`
}

// PanelElem records a panel by identity; widgets themselves are resolved
// at load time.
type PanelElem struct {
	ID string `xml:"id,attr"`
}

// TabsElem records a tab group and its active tab.
type TabsElem struct {
	Active int         `xml:"active,attr"`
	Panels []PanelElem `xml:"panel"`
}

// Layout is one named, persisted snapshot of a full dock arrangement.
// It is immutable after construction: updating a layout means building a
// new value that replaces the old one by id.
type Layout struct {
	id   string
	name string
	root *DockElem
}

// New builds a layout from an already-parsed element tree.
func New(id, name string, root *DockElem) *Layout {
	return &Layout{id: id, name: name, root: root}
}

// FromDock walks a live dock tree depth-first and snapshots its slot
// occupancy, recording user sizes for expansive slots only.
func FromDock(id, name string, t *dock.Tree) *Layout {
	return &Layout{id: id, name: name, root: snapshotNode(t, t.Root())}
}

// ID returns the layout's identifier.
func (l *Layout) ID() string { return l.id }

// Name returns the display name.
func (l *Layout) Name() string { return l.name }

// Root returns the element tree. Callers must not mutate it.
func (l *Layout) Root() *DockElem { return l.root }

// MatchID reports whether the layout has the given id.
func (l *Layout) MatchID(id string) bool { return l.id == id }

// IsDefault reports whether the layout shadows a built-in arrangement.
func (l *Layout) IsDefault() bool {
	return l.id == Default || l.id == MirroredDefault
}

// IsValidName reports whether a user-entered layout name is acceptable.
func IsValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

var carveOrder = []dock.Side{dock.Top, dock.Bottom, dock.Left, dock.Right, dock.Center}

func snapshotNode(t *dock.Tree, id dock.NodeID) *DockElem {
	elem := &DockElem{}
	for _, side := range carveOrder {
		occ := t.OccupantAt(id, side)
		if occ.IsEmpty() {
			continue
		}

		se := SideElem{Name: side.String()}
		if sz := t.UserDefinedSizeAtSide(id, side); !sz.IsZero() {
			se.Width, se.Height = sz.W, sz.H
		}

		switch occ.Kind {
		case dock.OccupantPanel:
			se.Panel = &PanelElem{ID: occ.Panel.ID()}
		case dock.OccupantDock:
			se.Dock = snapshotNode(t, occ.Dock)
		case dock.OccupantTabs:
			tabs := &TabsElem{Active: occ.Tabs.ActiveIndex()}
			for _, p := range occ.Tabs.Tabs() {
				tabs.Panels = append(tabs.Panels, PanelElem{ID: p.ID()})
			}
			se.Tabs = tabs
		}
		elem.Sides = append(elem.Sides, se)
	}
	return elem
}

// Resolver maps persisted panel ids back to live panels. Unknown ids
// resolve to nil and their slots are skipped.
type Resolver func(id string) dock.Panel

// Apply rebuilds the dock tree this layout describes: the tree is reset
// and the recorded dock calls replayed in the stored side order, so slot
// conflicts resolve exactly as they did in the live session that produced
// the snapshot.
func (l *Layout) Apply(t *dock.Tree, resolve Resolver) {
	t.ResetDocks()
	if l.root != nil {
		applyNode(t, t.Root(), l.root, resolve)
	}
}

func applyNode(t *dock.Tree, id dock.NodeID, elem *DockElem, resolve Resolver) {
	for _, se := range elem.Sides {
		side := dock.ParseSide(se.Name)
		if side == 0 {
			continue
		}
		size := geom.Size{W: se.Width, H: se.Height}

		switch {
		case se.Panel != nil:
			if p := resolve(se.Panel.ID); p != nil {
				t.Dock(id, side, p, size)
			}
		case se.Dock != nil:
			sub := t.Subdock(id, side)
			if !size.IsZero() {
				t.SetSlotSize(id, side, size)
			}
			applyNode(t, sub, se.Dock, resolve)
		case se.Tabs != nil:
			for _, pe := range se.Tabs.Panels {
				if p := resolve(pe.ID); p != nil {
					t.Dock(id, side, p, size)
				}
			}
			if occ := t.OccupantAt(id, side); occ.Kind == dock.OccupantTabs {
				occ.Tabs.SetActive(se.Tabs.Active)
			}
		}
	}
}

// Equal compares two element trees structurally. Used by tests and by the
// modified-indicator on default layouts.
func (l *Layout) Equal(other *Layout) bool {
	if l == nil || other == nil {
		return l == other
	}
	a, errA := xml.Marshal(l.root)
	b, errB := xml.Marshal(other.root)
	return errA == nil && errB == nil && string(a) == string(b)
}
