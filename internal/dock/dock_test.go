package dock

import (
	"paneldock/internal/geom"
)

// stubPanel is a minimal Panel for exercising tree surgery and geometry.
type stubPanel struct {
	id     string
	at     Side
	handle Side
	hint   geom.Size
	bounds geom.Rect
	hidden bool
}

func newStubPanel(id string, at, handle Side, w, h int) *stubPanel {
	return &stubPanel{id: id, at: at, handle: handle, hint: geom.Size{W: w, H: h}}
}

func (p *stubPanel) ID() string            { return p.id }
func (p *stubPanel) DockableAt() Side      { return p.at }
func (p *stubPanel) DockHandleSide() Side  { return p.handle }
func (p *stubPanel) SizeHint() geom.Size   { return p.hint }
func (p *stubPanel) Bounds() geom.Rect     { return p.bounds }
func (p *stubPanel) SetBounds(r geom.Rect) { p.bounds = r }
func (p *stubPanel) Visible() bool         { return !p.hidden }
func (p *stubPanel) SetVisible(v bool)     { p.hidden = !v }
func (p *stubPanel) View() string          { return p.id }
