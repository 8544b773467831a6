package ui

import (
	"path/filepath"
	"testing"

	"paneldock/internal/dock"
	"paneldock/internal/geom"
	"paneldock/internal/layout"
	"paneldock/internal/prefs"
)

func testPrefs(t *testing.T) *prefs.Preferences {
	t.Helper()
	t.Setenv("PANELDOCK_CONFIG", filepath.Join(t.TempDir(), "config.toml"))
	p, err := prefs.Load()
	if err != nil {
		t.Fatalf("prefs.Load() = %v", err)
	}
	return p
}

func TestDefaultLayoutStructure(t *testing.T) {
	reg := NewPanelRegistry(WorkspacePanels())
	tr := dock.NewTree(dock.Config{})
	SetDefaultLayout(tr, reg)

	if occ := tr.OccupantAt(tr.Root(), dock.Left); occ.Kind != dock.OccupantPanel || occ.Panel.ID() != PanelPalette {
		t.Errorf("root left = %+v, want the palette", occ)
	}

	center := tr.Center(tr.Root())
	if occ := tr.OccupantAt(center, dock.Top); occ.Kind != dock.OccupantPanel || occ.Panel.ID() != PanelContext {
		t.Errorf("center top = %+v, want the context bar", occ)
	}
	if occ := tr.OccupantAt(center, dock.Right); occ.Kind != dock.OccupantPanel || occ.Panel.ID() != PanelToolBar {
		t.Errorf("center right = %+v, want the tool bar", occ)
	}

	inner := tr.Center(center)
	if occ := tr.OccupantAt(inner, dock.Bottom); occ.Kind != dock.OccupantPanel || occ.Panel.ID() != PanelTimeline {
		t.Errorf("inner bottom = %+v, want the timeline", occ)
	}
	if occ := tr.OccupantAt(inner, dock.Center); occ.Kind != dock.OccupantPanel || occ.Panel.ID() != PanelWorkspace {
		t.Errorf("inner center = %+v, want the workspace", occ)
	}
}

func TestMirroredDefaultSwapsSides(t *testing.T) {
	reg := NewPanelRegistry(WorkspacePanels())
	tr := dock.NewTree(dock.Config{})
	SetMirroredDefaultLayout(tr, reg)

	if occ := tr.OccupantAt(tr.Root(), dock.Right); occ.Kind != dock.OccupantPanel || occ.Panel.ID() != PanelPalette {
		t.Errorf("root right = %+v, want the palette", occ)
	}
	center := tr.Center(tr.Root())
	if occ := tr.OccupantAt(center, dock.Left); occ.Kind != dock.OccupantPanel || occ.Panel.ID() != PanelToolBar {
		t.Errorf("center left = %+v, want the tool bar", occ)
	}
}

func TestDefaultLayoutsDiffer(t *testing.T) {
	reg := NewPanelRegistry(WorkspacePanels())
	def, mirrored := DefaultLayouts(reg, testPrefs(t))

	if def.ID() != layout.Default || mirrored.ID() != layout.MirroredDefault {
		t.Errorf("baseline ids = %q, %q", def.ID(), mirrored.ID())
	}
	if def.Equal(mirrored) {
		t.Errorf("default and mirrored baselines compare equal")
	}

	// Applying a baseline snapshot reproduces the handmade arrangement.
	tr := dock.NewTree(dock.Config{})
	def.Apply(tr, reg.Resolve)
	if got := layout.FromDock(layout.Default, "Default", tr); !got.Equal(def) {
		t.Errorf("applied baseline snapshot differs from its source")
	}
}

func TestSizeAdvisorGovernsTimelineOnly(t *testing.T) {
	pref := testPrefs(t)
	advise := NewSizeAdvisor(pref)
	reg := NewPanelRegistry(WorkspacePanels())
	workspace := geom.NewRect(0, 0, 100, 40)

	if got := advise(reg.Resolve(PanelPalette), dock.Right, workspace); !got.IsZero() {
		t.Errorf("advisor sized a non-timeline panel: %+v", got)
	}

	// Splitter default 75%: the timeline claims the remaining quarter.
	got := advise(reg.Resolve(PanelTimeline), dock.Bottom, workspace)
	if got.H != 10 {
		t.Errorf("timeline height at bottom = %d, want 10 (25%% of 40)", got.H)
	}
	if got.W != timelineBaseSize {
		t.Errorf("ungoverned axis = %d, want base %d", got.W, timelineBaseSize)
	}
	if pref.TimelinePosition() != "bottom" {
		t.Errorf("TimelinePosition() = %q, want bottom recorded", pref.TimelinePosition())
	}

	got = advise(reg.Resolve(PanelTimeline), dock.Left, workspace)
	if got.W != 25 {
		t.Errorf("timeline width at left = %d, want 25 (25%% of 100)", got.W)
	}
	if pref.TimelinePosition() != "left" {
		t.Errorf("TimelinePosition() = %q, want left recorded", pref.TimelinePosition())
	}
}

func TestSizeAdvisorHonorsScale(t *testing.T) {
	pref := testPrefs(t)
	pref.SetTimelineSplitter(50)
	t.Setenv("PANELDOCK_UI_SCALE", "2")
	advise := NewSizeAdvisor(pref)
	reg := NewPanelRegistry(WorkspacePanels())

	got := advise(reg.Resolve(PanelTimeline), dock.Bottom, geom.NewRect(0, 0, 100, 40))
	if got.H != 10 {
		t.Errorf("timeline height = %d, want 10 (half of 40, divided by scale 2)", got.H)
	}
}

func TestSaveTimelineSplitterInverse(t *testing.T) {
	pref := testPrefs(t)
	reg := NewPanelRegistry(WorkspacePanels())
	tr := dock.NewTree(dock.Config{SizeAdvisor: NewSizeAdvisor(pref)})
	SetDefaultLayout(tr, reg)
	tr.Layout(geom.NewRect(0, 0, 100, 40))

	// Pin the timeline to a known share of the dock height.
	timeline := reg.Resolve(PanelTimeline)
	timeline.SetBounds(geom.NewRect(0, 30, 100, 10))
	pref.SetTimelinePosition("bottom")

	SaveTimelineSplitter(tr, reg, pref)
	if got := pref.TimelineSplitter(); got != 75.0 {
		t.Errorf("TimelineSplitter() = %v, want 75 for a quarter-height timeline", got)
	}
}
