// Package geom provides integer cell-coordinate value types used by the
// docking engine: points, sizes and rectangles with the handful of
// operations layout and hit-testing need.
package geom

// Point is a position in cell coordinates.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Size is a width/height pair in cells.
type Size struct {
	W, H int
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.W == 0 && s.H == 0
}

// Rect is an axis-aligned rectangle. X/Y is the top-left corner; it spans
// [X, X+W) horizontally and [Y, Y+H) vertically.
type Rect struct {
	X, Y, W, H int
}

// NewRect builds a Rect from origin and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// X2 returns the exclusive right edge.
func (r Rect) X2() int { return r.X + r.W }

// Y2 returns the exclusive bottom edge.
func (r Rect) Y2() int { return r.Y + r.H }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{r.X, r.Y} }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{r.W, r.H} }

// IsEmpty reports whether the rectangle covers no cells.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether p falls inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X2() && p.Y >= r.Y && p.Y < r.Y2()
}

// Center returns the middle cell of the rectangle.
func (r Rect) Center() Point {
	return Point{r.X + r.W/2, r.Y + r.H/2}
}

// Shrink returns r inset by n cells on every edge.
func (r Rect) Shrink(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
}

// Overlaps reports whether r and q share at least one cell.
func (r Rect) Overlaps(q Rect) bool {
	return r.X < q.X2() && q.X < r.X2() && r.Y < q.Y2() && q.Y < r.Y2()
}
