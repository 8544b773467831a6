package dock

// Side is a bitmask of dock sides. Panels advertise the sides they accept
// through Dockable.DockableAt, which may also carry the Expansive alignment
// bit to request a user-resizable splitter.
type Side uint8

const (
	Top Side = 1 << iota
	Bottom
	Left
	Right
	Center

	// Expansive marks a slot as user-resizable. It is an alignment flag,
	// not a dockable position.
	Expansive

	Horizontal = Left | Right
	Vertical   = Top | Bottom
	AllSides   = Top | Bottom | Left | Right
)

// Slot indices in carve order. The layout pass consumes sides in exactly
// this order, carving each out of the remaining bounds; center takes
// whatever is left.
const (
	topIndex = iota
	bottomIndex
	leftIndex
	rightIndex
	centerIndex
	numSlots
)

func sideIndex(s Side) int {
	switch s {
	case Top:
		return topIndex
	case Bottom:
		return bottomIndex
	case Left:
		return leftIndex
	case Right:
		return rightIndex
	}
	return centerIndex
}

func sideFromIndex(i int) Side {
	switch i {
	case topIndex:
		return Top
	case bottomIndex:
		return Bottom
	case leftIndex:
		return Left
	case rightIndex:
		return Right
	}
	return Center
}

// String returns the lowercase side name used in persisted layouts.
func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	case Center:
		return "center"
	}
	return "none"
}

// ParseSide is the inverse of String. Unknown names map to 0.
func ParseSide(name string) Side {
	switch name {
	case "top":
		return Top
	case "bottom":
		return Bottom
	case "left":
		return Left
	case "right":
		return Right
	case "center":
		return Center
	}
	return 0
}
