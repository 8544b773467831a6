package dock

// OccupantKind discriminates what a slot holds.
type OccupantKind uint8

const (
	OccupantEmpty OccupantKind = iota
	OccupantPanel
	OccupantDock
	OccupantTabs
)

// Occupant is a tagged union over the possible contents of a slot: nothing,
// a leaf panel, a nested dock node, or a tab group. Exactly the field
// matching Kind is meaningful.
type Occupant struct {
	Kind  OccupantKind
	Panel Panel
	Dock  NodeID
	Tabs  *TabGroup
}

func emptyOccupant() Occupant           { return Occupant{Kind: OccupantEmpty} }
func panelOccupant(p Panel) Occupant    { return Occupant{Kind: OccupantPanel, Panel: p} }
func dockOccupant(id NodeID) Occupant   { return Occupant{Kind: OccupantDock, Dock: id} }
func tabsOccupant(g *TabGroup) Occupant { return Occupant{Kind: OccupantTabs, Tabs: g} }

// IsEmpty reports whether the slot holds nothing.
func (o Occupant) IsEmpty() bool { return o.Kind == OccupantEmpty }
