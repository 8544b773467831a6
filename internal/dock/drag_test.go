package dock

import (
	"testing"

	"paneldock/internal/geom"
)

// dragFixture is a workspace-like arrangement: an expansive center panel
// plus a palette on the left whose drag handle is its top row.
func dragFixture(t *testing.T, cfg Config) (*Tree, *stubPanel, *stubPanel) {
	t.Helper()
	tr := NewTree(cfg)
	ws := newStubPanel("workspace", AllSides|Expansive, 0, 40, 10)
	pal := newStubPanel("palette", Left|Right|Expansive, Top, 10, 8)
	tr.Dock(tr.Root(), Center, ws, geom.Size{})
	tr.Dock(tr.Root(), Left, pal, geom.Size{})
	tr.SetCustomizing(true)
	tr.Layout(geom.NewRect(0, 0, 80, 24))
	return tr, ws, pal
}

func TestHandlePressStartsDrag(t *testing.T) {
	tr, _, _ := dragFixture(t, Config{})

	if !tr.MouseDown(geom.Point{X: 2, Y: 0}, false) {
		t.Fatalf("press on drag handle was not consumed")
	}
	if !tr.HasCapture() || !tr.Dragging() {
		t.Errorf("HasCapture() = %v, Dragging() = %v, want both true", tr.HasCapture(), tr.Dragging())
	}
	if _, ok := tr.DragGhost(); !ok {
		t.Errorf("DragGhost() absent during drag")
	}
}

func TestHandleIgnoredOutsideCustomizeMode(t *testing.T) {
	tr, _, _ := dragFixture(t, Config{})
	tr.SetCustomizing(false)
	tr.Layout(geom.NewRect(0, 0, 80, 24))

	if tr.MouseDown(geom.Point{X: 2, Y: 0}, false) {
		t.Errorf("handle press consumed while customize mode is off")
	}
}

func TestDragArmsOnlyPermittedSides(t *testing.T) {
	tr, _, _ := dragFixture(t, Config{})

	tr.MouseDown(geom.Point{X: 2, Y: 0}, false)

	// Near the top edge: the palette does not accept Top.
	tr.MouseMove(geom.Point{X: 40, Y: 1})
	if got := tr.ArmedSide(); got != 0 {
		t.Errorf("ArmedSide() near top = %v, want 0 for a side the panel rejects", got)
	}

	// Near the left edge: permitted, but the palette already lives there.
	tr.MouseMove(geom.Point{X: 1, Y: 12})
	if got := tr.ArmedSide(); got != 0 {
		t.Errorf("ArmedSide() near current side = %v, want 0", got)
	}

	// Near the right edge: permitted and different.
	tr.MouseMove(geom.Point{X: 78, Y: 12})
	if got := tr.ArmedSide(); got != Right {
		t.Errorf("ArmedSide() near right = %v, want Right", got)
	}
	if _, ok := tr.DropPreview(); !ok {
		t.Errorf("DropPreview() absent while a side is armed")
	}
}

func TestDropRedocksPanel(t *testing.T) {
	tr, _, pal := dragFixture(t, Config{})

	tr.MouseDown(geom.Point{X: 2, Y: 0}, false)
	tr.MouseMove(geom.Point{X: 78, Y: 12})
	res := tr.MouseUp(geom.Point{X: 78, Y: 12}, false)

	if !res.Docked {
		t.Fatalf("MouseUp() = %+v, want Docked", res)
	}
	if got := tr.WhichSideChildIsDocked(tr.Root(), pal); got != Right {
		t.Errorf("palette side after drop = %v, want Right", got)
	}
}

func TestGestureTeardownOnRelease(t *testing.T) {
	tr, _, _ := dragFixture(t, Config{})

	tr.MouseDown(geom.Point{X: 2, Y: 0}, false)
	tr.MouseMove(geom.Point{X: 78, Y: 12})
	tr.MouseUp(geom.Point{X: 78, Y: 12}, false)

	if tr.HasCapture() || tr.Dragging() {
		t.Errorf("gesture state survives release: capture=%v dragging=%v", tr.HasCapture(), tr.Dragging())
	}
	if _, ok := tr.DragGhost(); ok {
		t.Errorf("ghost survives release")
	}
	if _, ok := tr.DropPreview(); ok {
		t.Errorf("drop preview survives release")
	}
	for _, p := range tr.Panels() {
		if p.ID() == "dock-dropzone" {
			t.Errorf("placeholder still docked after release")
		}
	}
}

func TestAbortedDragLeavesLayoutUntouched(t *testing.T) {
	tr, _, pal := dragFixture(t, Config{})
	before := pal.Bounds()

	tr.MouseDown(geom.Point{X: 2, Y: 0}, false)
	tr.MouseMove(geom.Point{X: 78, Y: 12})
	// Drift back to neutral ground before releasing.
	tr.MouseMove(geom.Point{X: 40, Y: 12})
	res := tr.MouseUp(geom.Point{X: 40, Y: 12}, false)

	if res.Docked {
		t.Fatalf("MouseUp() docked without an armed side")
	}
	if got := tr.WhichSideChildIsDocked(tr.Root(), pal); got != Left {
		t.Errorf("palette side after aborted drag = %v, want Left", got)
	}
	if pal.Bounds() != before {
		t.Errorf("palette bounds changed by aborted drag: %+v -> %+v", before, pal.Bounds())
	}
}

func TestAbortedDragOverOccupiedSideKeepsUserSize(t *testing.T) {
	// Arming over an occupied slot previews the drop as a transient tab
	// group there; disarming and releasing must leave the slot's
	// user-resized size exactly as it was.
	tr := NewTree(Config{})
	ws := newStubPanel("workspace", AllSides|Expansive, 0, 40, 10)
	pal := newStubPanel("palette", Left|Right|Expansive, 0, 10, 8)
	tl := newStubPanel("timeline", AllSides|Expansive, Top, 30, 6)
	tr.Dock(tr.Root(), Center, ws, geom.Size{})
	tr.Dock(tr.Root(), Left, pal, geom.Size{W: 30, H: 8})
	tr.Dock(tr.Root(), Bottom, tl, geom.Size{})
	tr.SetCustomizing(true)
	tr.Layout(geom.NewRect(0, 0, 80, 24))

	if !tr.MouseDown(geom.Point{X: 5, Y: 18}, false) {
		t.Fatalf("press on timeline handle was not consumed")
	}
	tr.MouseMove(geom.Point{X: 1, Y: 12})
	if got := tr.ArmedSide(); got != Left {
		t.Fatalf("ArmedSide() over occupied left = %v, want Left", got)
	}
	tr.MouseMove(geom.Point{X: 40, Y: 12})
	res := tr.MouseUp(geom.Point{X: 40, Y: 12}, false)

	if res.Docked {
		t.Fatalf("MouseUp() docked without an armed side")
	}
	occ := tr.OccupantAt(tr.Root(), Left)
	if occ.Kind != OccupantPanel || occ.Panel != pal {
		t.Fatalf("left slot after aborted drag = %+v, want the palette alone", occ)
	}
	if got := tr.UserDefinedSizeAtSide(tr.Root(), Left); got.W != 30 {
		t.Errorf("left slot size after aborted drag = %+v, want user width 30", got)
	}
	if got := pal.Bounds().W; got != 30 {
		t.Errorf("palette width after relayout = %d, want 30", got)
	}
}

func TestRightClickOpensMenu(t *testing.T) {
	tr, _, pal := dragFixture(t, Config{})

	tr.MouseDown(geom.Point{X: 2, Y: 0}, true)
	if tr.Dragging() {
		t.Fatalf("right press started a drag")
	}
	res := tr.MouseUp(geom.Point{X: 2, Y: 0}, true)

	if res.MenuPanel != pal {
		t.Fatalf("MenuPanel = %v, want palette", res.MenuPanel)
	}
	// Permitted sides minus the current one.
	if len(res.Menu) != 1 || res.Menu[0] != Right {
		t.Errorf("Menu = %v, want [Right]", res.Menu)
	}
}

func TestMenuSides(t *testing.T) {
	tr := NewTree(Config{})
	p := newStubPanel("p", AllSides, Top, 10, 4)
	center := newStubPanel("c", AllSides|Expansive, 0, 20, 10)
	tr.Dock(tr.Root(), Center, center, geom.Size{})
	tr.Dock(tr.Root(), Bottom, p, geom.Size{})

	got := tr.MenuSides(p)
	want := []Side{Left, Right, Top}
	if len(got) != len(want) {
		t.Fatalf("MenuSides() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("MenuSides()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestResizeClampsAtZero(t *testing.T) {
	tr := NewTree(Config{})
	top := newStubPanel("top", Top|Expansive, 0, 20, 10)
	center := newStubPanel("center", AllSides, 0, 20, 10)
	tr.Dock(tr.Root(), Top, top, geom.Size{})
	tr.Dock(tr.Root(), Center, center, geom.Size{})
	tr.Layout(geom.NewRect(0, 0, 100, 40))

	tr.MouseDown(geom.Point{X: 50, Y: 10}, false)
	tr.MouseMove(geom.Point{X: 50, Y: -30})

	if got := tr.UserDefinedSizeAtSide(tr.Root(), Top); got.H != 0 {
		t.Errorf("top size after over-shrink = %d, want clamp at 0", got.H)
	}
}

func TestBufferZoneScalesWithConfig(t *testing.T) {
	// A small palette keeps min(w,h) below the scaled minimum, so the
	// hot zone is BufferMin*Scale.
	press := geom.Point{X: 2, Y: 0}
	probe := geom.Point{X: 60, Y: 12} // 20 cells from the right edge

	tr, _, _ := dragFixture(t, Config{Scale: 1})
	tr.MouseDown(press, false)
	tr.MouseMove(probe)
	if got := tr.ArmedSide(); got != 0 {
		t.Errorf("scale 1: ArmedSide() at 20 cells = %v, want 0 (buffer 12)", got)
	}
	tr.MouseUp(probe, false)

	tr, _, _ = dragFixture(t, Config{Scale: 2})
	tr.MouseDown(press, false)
	tr.MouseMove(probe)
	if got := tr.ArmedSide(); got != Right {
		t.Errorf("scale 2: ArmedSide() at 20 cells = %v, want Right (buffer 24)", got)
	}
}

func TestUserResizeNotification(t *testing.T) {
	tr := NewTree(Config{})
	top := newStubPanel("top", Top|Expansive, 0, 20, 10)
	center := newStubPanel("center", AllSides, 0, 20, 10)
	tr.Dock(tr.Root(), Top, top, geom.Size{})
	tr.Dock(tr.Root(), Center, center, geom.Size{})
	tr.Layout(geom.NewRect(0, 0, 100, 40))

	var calls int
	tr.OnUserResized = func() { calls++ }

	tr.MouseDown(geom.Point{X: 50, Y: 10}, false)
	tr.MouseMove(geom.Point{X: 50, Y: 12})
	tr.MouseUp(geom.Point{X: 50, Y: 12}, false)

	if calls == 0 {
		t.Errorf("OnUserResized never fired during a splitter drag")
	}
}
