package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"paneldock/internal/geom"
)

// Canvas is a fixed-size cell grid the dock view is composited onto:
// panel bodies, separators, handle strips, then the drag ghost and any
// menu overlay on top. Styling is applied per region when the canvas is
// emitted, so overlays simply paint over whatever is beneath them.
type Canvas struct {
	w, h    int
	cells   [][]rune
	regions []styledRegion
}

type styledRegion struct {
	rect  geom.Rect
	style lipgloss.Style
}

// NewCanvas creates a blank canvas filled with spaces.
func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	cells := make([][]rune, h)
	for y := range cells {
		row := make([]rune, w)
		for x := range row {
			row[x] = ' '
		}
		cells[y] = row
	}
	return &Canvas{w: w, h: h, cells: cells}
}

// FillRect paints a region with one rune, clipped to the canvas.
func (c *Canvas) FillRect(r geom.Rect, ch rune) {
	for y := max(r.Y, 0); y < min(r.Y2(), c.h); y++ {
		for x := max(r.X, 0); x < min(r.X2(), c.w); x++ {
			c.cells[y][x] = ch
		}
	}
}

// DrawText writes a single line starting at (x, y), clipped.
func (c *Canvas) DrawText(x, y int, s string) {
	if y < 0 || y >= c.h {
		return
	}
	for _, ch := range s {
		if x >= c.w {
			return
		}
		if x >= 0 {
			c.cells[y][x] = ch
		}
		x++
	}
}

// DrawView writes a multi-line view into a region, clipping each line to
// the region's width and dropping rows past its height.
func (c *Canvas) DrawView(r geom.Rect, view string) {
	lines := strings.Split(view, "\n")
	for i, line := range lines {
		if i >= r.H {
			return
		}
		y := r.Y + i
		if y < 0 || y >= c.h {
			continue
		}
		x := r.X
		for _, ch := range line {
			if x >= r.X2() || x >= c.w {
				break
			}
			if x >= 0 {
				c.cells[y][x] = ch
			}
			x++
		}
	}
}

// DrawFrame draws a single-line border just inside the region.
func (c *Canvas) DrawFrame(r geom.Rect) {
	if r.W < 2 || r.H < 2 {
		return
	}
	for x := r.X; x < r.X2(); x++ {
		c.set(x, r.Y, '─')
		c.set(x, r.Y2()-1, '─')
	}
	for y := r.Y; y < r.Y2(); y++ {
		c.set(r.X, y, '│')
		c.set(r.X2()-1, y, '│')
	}
	c.set(r.X, r.Y, '┌')
	c.set(r.X2()-1, r.Y, '┐')
	c.set(r.X, r.Y2()-1, '└')
	c.set(r.X2()-1, r.Y2()-1, '┘')
}

// DrawCross draws the drop-zone placeholder mark: a frame with diagonals
// meeting at the center.
func (c *Canvas) DrawCross(r geom.Rect) {
	c.DrawFrame(r)
	center := r.Center()
	c.set(center.X, center.Y, '╳')
}

func (c *Canvas) set(x, y int, ch rune) {
	if x >= 0 && x < c.w && y >= 0 && y < c.h {
		c.cells[y][x] = ch
	}
}

// Style records a style to apply to a region on emission. Later regions
// win where they overlap earlier ones.
func (c *Canvas) Style(r geom.Rect, s lipgloss.Style) {
	c.regions = append(c.regions, styledRegion{rect: r, style: s})
}

// String emits the canvas, applying styled regions per row segment.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		c.emitRow(&b, y)
	}
	return b.String()
}

func (c *Canvas) emitRow(b *strings.Builder, y int) {
	x := 0
	for x < c.w {
		ri := c.regionAt(x, y)
		start := x
		for x < c.w && c.regionAt(x, y) == ri {
			x++
		}
		seg := string(c.cells[y][start:x])
		if ri >= 0 {
			seg = c.regions[ri].style.Inline(true).Render(seg)
		}
		b.WriteString(seg)
	}
}

// regionAt returns the index of the topmost styled region covering a
// cell, or -1.
func (c *Canvas) regionAt(x, y int) int {
	p := geom.Point{X: x, Y: y}
	for i := len(c.regions) - 1; i >= 0; i-- {
		if c.regions[i].rect.Contains(p) {
			return i
		}
	}
	return -1
}
