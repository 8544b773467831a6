package ui

import (
	"paneldock/internal/dock"
	"paneldock/internal/geom"
	"paneldock/internal/layout"
	"paneldock/internal/prefs"
)

// timelineBaseSize is the timeline's fallback extent in cells, used for
// the axis the splitter percentage does not govern.
const timelineBaseSize = 6

// SetDefaultLayout arranges the baseline workspace: palette on the left,
// context bar atop the inner region, tools on its right, timeline below
// the workspace.
func SetDefaultLayout(t *dock.Tree, reg PanelRegistry) {
	t.ResetDocks()
	root := t.Root()
	t.Dock(root, dock.Left, reg.Resolve(PanelPalette), geom.Size{})
	center := t.Center(root)
	t.Dock(center, dock.Top, reg.Resolve(PanelContext), geom.Size{})
	t.Dock(center, dock.Right, reg.Resolve(PanelToolBar), geom.Size{})
	inner := t.Center(center)
	t.Dock(inner, dock.Bottom, reg.Resolve(PanelTimeline), timelineDefaultSize(t.Scale()))
	t.Dock(inner, dock.Center, reg.Resolve(PanelWorkspace), geom.Size{})
}

// SetMirroredDefaultLayout is the left/right mirror of the baseline.
func SetMirroredDefaultLayout(t *dock.Tree, reg PanelRegistry) {
	t.ResetDocks()
	root := t.Root()
	t.Dock(root, dock.Right, reg.Resolve(PanelPalette), geom.Size{})
	center := t.Center(root)
	t.Dock(center, dock.Top, reg.Resolve(PanelContext), geom.Size{})
	t.Dock(center, dock.Left, reg.Resolve(PanelToolBar), geom.Size{})
	inner := t.Center(center)
	t.Dock(inner, dock.Bottom, reg.Resolve(PanelTimeline), timelineDefaultSize(t.Scale()))
	t.Dock(inner, dock.Center, reg.Resolve(PanelWorkspace), geom.Size{})
}

// DefaultLayouts builds the built-in baseline snapshots from scratch
// trees, so they exist even before the user customizes anything.
func DefaultLayouts(reg PanelRegistry, p *prefs.Preferences) (def, mirrored *layout.Layout) {
	t := dock.NewTree(dock.Config{Scale: p.Scale()})
	SetDefaultLayout(t, reg)
	def = layout.FromDock(layout.Default, "Default", t)

	t = dock.NewTree(dock.Config{Scale: p.Scale()})
	SetMirroredDefaultLayout(t, reg)
	mirrored = layout.FromDock(layout.MirroredDefault, "Mirrored Default", t)
	return def, mirrored
}

func timelineDefaultSize(scale int) geom.Size {
	return geom.Size{W: timelineBaseSize * scale, H: timelineBaseSize * scale}
}

// NewSizeAdvisor builds the engine's redock size hook. The timeline panel
// derives its size on the splitter-governed axis from the legacy splitter
// percentage; every other panel keeps its natural size.
func NewSizeAdvisor(p *prefs.Preferences) func(panel dock.Panel, side dock.Side, workspace geom.Rect) geom.Size {
	return func(panel dock.Panel, side dock.Side, workspace geom.Rect) geom.Size {
		if panel.ID() != PanelTimeline {
			return geom.Size{}
		}

		scale := p.Scale()
		split := p.TimelineSplitter() / 100.0
		size := timelineDefaultSize(scale)

		switch {
		case side&dock.Left != 0, side&dock.Right != 0:
			size.W = int(float64(workspace.W) * (1.0 - split) / float64(scale))
		case side&dock.Bottom != 0:
			size.H = int(float64(workspace.H) * (1.0 - split) / float64(scale))
		}
		p.SetTimelinePosition(side.String())
		return size
	}
}

// SaveTimelineSplitter writes back the splitter percentage implied by the
// timeline's current extent relative to its dock region, so the next
// session restores the same proportion.
func SaveTimelineSplitter(t *dock.Tree, reg PanelRegistry, p *prefs.Preferences) {
	timeline := reg.Resolve(PanelTimeline)
	if timeline == nil {
		return
	}
	workspace := t.Bounds()
	if workspace.IsEmpty() {
		return
	}

	split := 0.75
	tb := timeline.Bounds()
	switch p.TimelinePosition() {
	case "left", "right":
		if workspace.W > 0 {
			split = 1.0 - float64(tb.W)/float64(workspace.W)
		}
	case "bottom":
		if workspace.H > 0 {
			split = 1.0 - float64(tb.H)/float64(workspace.H)
		}
	}
	p.SetTimelineSplitter(split * 100.0)
}
