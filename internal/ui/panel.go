package ui

import (
	"strings"

	"paneldock/internal/dock"
	"paneldock/internal/geom"
)

// ContentFunc renders a panel's body for a given size.
type ContentFunc func(sz geom.Size) string

// BasicPanel is the standard dock.Panel implementation: an identified
// region with a docking capability mask, a handle side, a natural size and
// a content renderer.
type BasicPanel struct {
	id         string
	title      string
	dockableAt dock.Side
	handleSide dock.Side
	sizeHint   geom.Size
	bounds     geom.Rect
	visible    bool
	content    ContentFunc
}

// NewPanel creates a visible panel.
func NewPanel(id, title string, dockableAt, handleSide dock.Side, hint geom.Size, content ContentFunc) *BasicPanel {
	return &BasicPanel{
		id:         id,
		title:      title,
		dockableAt: dockableAt,
		handleSide: handleSide,
		sizeHint:   hint,
		visible:    true,
		content:    content,
	}
}

func (p *BasicPanel) ID() string                { return p.id }
func (p *BasicPanel) Title() string             { return p.title }
func (p *BasicPanel) DockableAt() dock.Side     { return p.dockableAt }
func (p *BasicPanel) DockHandleSide() dock.Side { return p.handleSide }
func (p *BasicPanel) SizeHint() geom.Size       { return p.sizeHint }
func (p *BasicPanel) Bounds() geom.Rect         { return p.bounds }
func (p *BasicPanel) SetBounds(r geom.Rect)     { p.bounds = r }
func (p *BasicPanel) Visible() bool             { return p.visible }
func (p *BasicPanel) SetVisible(v bool)         { p.visible = v }

// View renders the panel body at its current bounds.
func (p *BasicPanel) View() string {
	if p.content == nil {
		return ""
	}
	return p.content(p.bounds.Size())
}

// fillContent renders a body of repeated fill cells, one line per row.
func fillContent(fill string) ContentFunc {
	return func(sz geom.Size) string {
		if sz.W <= 0 || sz.H <= 0 {
			return ""
		}
		row := strings.Repeat(fill, sz.W)
		rows := make([]string, sz.H)
		for i := range rows {
			rows[i] = row
		}
		return strings.Join(rows, "\n")
	}
}

// Well-known panel ids. The timeline id is special-cased by the size
// advisor, which derives its redock size from the legacy splitter
// percentage.
const (
	PanelWorkspace = "workspace"
	PanelPalette   = "palette"
	PanelToolBar   = "toolbar"
	PanelContext   = "contextbar"
	PanelTimeline  = "timeline"
)

// WorkspacePanels builds the standard panel set of the demo application.
func WorkspacePanels() []*BasicPanel {
	return []*BasicPanel{
		NewPanel(PanelWorkspace, "Workspace",
			dock.AllSides|dock.Expansive, 0,
			geom.Size{W: 40, H: 10}, fillContent("·")),
		NewPanel(PanelPalette, "Palette",
			dock.Left|dock.Right|dock.Expansive, dock.Top,
			geom.Size{W: 14, H: 8}, fillContent("▒")),
		NewPanel(PanelToolBar, "Tools",
			dock.Left|dock.Right, dock.Top,
			geom.Size{W: 4, H: 8}, fillContent("▫")),
		NewPanel(PanelContext, "Context",
			dock.Top|dock.Bottom, dock.Left,
			geom.Size{W: 20, H: 2}, fillContent("─")),
		NewPanel(PanelTimeline, "Timeline",
			dock.AllSides|dock.Expansive, dock.Top,
			geom.Size{W: 30, H: 6}, fillContent("▪")),
	}
}

// PanelRegistry resolves panels by id for layout loading.
type PanelRegistry map[string]dock.Panel

// NewPanelRegistry indexes panels by id.
func NewPanelRegistry(panels []*BasicPanel) PanelRegistry {
	reg := make(PanelRegistry, len(panels))
	for _, p := range panels {
		reg[p.ID()] = p
	}
	return reg
}

// Resolve implements layout.Resolver.
func (r PanelRegistry) Resolve(id string) dock.Panel {
	if p, ok := r[id]; ok {
		return p
	}
	return nil
}
