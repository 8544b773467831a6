package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"paneldock/internal/dock"
	"paneldock/internal/geom"
	"paneldock/internal/layout"
	"paneldock/internal/prefs"
	"paneldock/internal/selector"
	"paneldock/internal/telemetry"
	"paneldock/internal/ui/textutil"
)

const statusBarHeight = 1

// App is the root model. It owns the dock tree, the panel registry, the
// layout collection with its selector, and preferences; mouse input
// drives the dock's drag state machine, key input drives the selector
// and focus rotation.
type App struct {
	Tree     *dock.Tree
	Registry PanelRegistry
	Layouts  *layout.Layouts
	Selector *selector.Model
	Prefs    *prefs.Preferences
	Focus    *FocusManager
	Tracer   *telemetry.Tracer

	snapshots *SnapshotCache
	size      geom.Size
	status    string

	// menu holds the sides offered by a right-click on a drag handle.
	menu      []dock.Side
	menuPanel dock.Panel
	menuPos   geom.Point
}

// NewApp wires the dock against the given collaborators. Panels are
// created here; the active layout from preferences is applied once the
// first window size arrives.
func NewApp(layouts *layout.Layouts, pref *prefs.Preferences, tracer *telemetry.Tracer) *App {
	panels := WorkspacePanels()
	reg := NewPanelRegistry(panels)

	t := dock.NewTree(dock.Config{
		Scale:       pref.Scale(),
		SizeAdvisor: NewSizeAdvisor(pref),
	})

	order := make([]string, 0, len(panels))
	for _, p := range panels {
		order = append(order, p.ID())
	}

	a := &App{
		Tree:      t,
		Registry:  reg,
		Layouts:   layouts,
		Selector:  selector.New(layouts, pref),
		Prefs:     pref,
		Tracer:    tracer,
		Focus:     &FocusManager{Order: order},
		snapshots: NewSnapshotCache(0),
	}
	t.OnUserResized = a.onUserResized
	def, mirrored := DefaultLayouts(reg, pref)
	a.Selector.SetBaselines(def, mirrored)
	a.applyActive()
	return a
}

// applyActive rebuilds the dock from the active layout id, falling back
// to the built-in defaults when nothing is stored under it.
func (a *App) applyActive() {
	id := a.Selector.ActiveID()
	if l := a.Layouts.GetByID(id); l != nil {
		l.Apply(a.Tree, a.Registry.Resolve)
		a.relayout()
		return
	}
	switch id {
	case layout.MirroredDefault:
		SetMirroredDefaultLayout(a.Tree, a.Registry)
	default:
		SetDefaultLayout(a.Tree, a.Registry)
	}
	a.relayout()
}

// onUserResized persists the rearranged dock: a snapshot overwrites the
// active layout entry and the timeline splitter percentage is refreshed.
func (a *App) onUserResized() {
	a.snapshots.InvalidateAll()
	end := a.Tracer.Op(context.Background(), "layout.store", map[string]string{
		"layout": a.Selector.ActiveID(),
	})
	defer end()

	SaveTimelineSplitter(a.Tree, a.Registry, a.Prefs)
	snap := layout.FromDock(a.Selector.ActiveID(), a.activeName(), a.Tree)
	a.Selector.UpdateActiveLayout(snap)
	a.Prefs.Save()
}

func (a *App) activeName() string {
	if l := a.Layouts.GetByID(a.Selector.ActiveID()); l != nil {
		return l.Name()
	}
	switch a.Selector.ActiveID() {
	case layout.MirroredDefault:
		return "Mirrored Default"
	default:
		return "Default"
	}
}

func (a *App) relayout() {
	if a.size.IsZero() {
		return
	}
	a.Tree.Layout(geom.NewRect(0, 0, a.size.W, a.size.H-statusBarHeight))
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.size = geom.Size{W: msg.Width, H: msg.Height}
		a.relayout()
		return a, nil

	case tea.MouseMsg:
		return a, a.handleMouse(msg)

	case selector.CustomizeMsg:
		a.Tree.SetCustomizing(msg.Enable)
		a.relayout()
		return a, nil

	case selector.ApplyMsg:
		return a, a.handleApply(msg)

	case selector.CreateLayoutMsg:
		snap := layout.FromDock(msg.ID, msg.Name, a.Tree)
		a.Selector.AddLayout(snap)
		a.Prefs.Save()
		a.status = fmt.Sprintf("saved layout %q", msg.Name)
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleApply(msg selector.ApplyMsg) tea.Cmd {
	end := a.Tracer.Op(context.Background(), "layout.apply", map[string]string{
		"layout": a.Selector.ActiveID(),
	})
	defer end()

	if msg.Layout != nil {
		msg.Layout.Apply(a.Tree, a.Registry.Resolve)
	} else {
		switch msg.Option {
		case selector.OptionMirroredDefault:
			SetMirroredDefaultLayout(a.Tree, a.Registry)
		default:
			SetDefaultLayout(a.Tree, a.Registry)
		}
	}
	a.snapshots.InvalidateAll()
	a.relayout()
	a.Prefs.Save()
	return nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	// An open side menu swallows keys until dismissed.
	if a.menu != nil {
		return a.handleMenuKey(msg)
	}

	if cmd, consumed := a.Selector.Update(msg); consumed {
		return cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		a.Prefs.Save()
		return tea.Quit
	case "l":
		return a.Selector.Toggle()
	case "tab":
		a.Focus.Next()
	case "shift+tab":
		a.Focus.Prev()
	}
	return nil
}

func (a *App) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.menu, a.menuPanel = nil, nil
		return nil
	}
	// Menu entries are numbered 1..n.
	s := msg.String()
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		i := int(s[0] - '1')
		if i < len(a.menu) {
			a.Tree.Redock(a.menuPanel, a.menu[i])
			a.menu, a.menuPanel = nil, nil
		}
	}
	return nil
}

func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	pos := geom.Point{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		if a.menu != nil {
			a.menu, a.menuPanel = nil, nil
			return nil
		}
		right := msg.Button == tea.MouseButtonRight
		if msg.Button == tea.MouseButtonLeft || right {
			a.Tree.MouseDown(pos, right)
		}
	case tea.MouseActionMotion:
		a.Tree.MouseMove(pos)
	case tea.MouseActionRelease:
		res := a.Tree.MouseUp(pos, msg.Button == tea.MouseButtonRight)
		if res.Docked {
			a.snapshots.InvalidateAll()
		}
		if len(res.Menu) > 0 {
			a.menu = res.Menu
			a.menuPanel = res.MenuPanel
			a.menuPos = pos
		}
	}
	return nil
}

// View implements tea.Model. The dock is composited onto a rune canvas:
// panel snapshots first, then separators and tab strips, customize-mode
// handle strips, the drop preview, the drag ghost, and finally any open
// side menu.
func (a *App) View() string {
	if a.size.IsZero() {
		return ""
	}
	c := NewCanvas(a.size.W, a.size.H)

	for _, p := range a.Tree.Panels() {
		if !p.Visible() {
			continue
		}
		rc := p.Bounds()
		c.DrawView(rc, a.snapshots.Render(p))
		if p.ID() == a.Focus.Current {
			c.Style(rc, Styles.Selected)
		}
	}
	a.drawTabStrips(c)

	handles, separators := a.Tree.HandleStrips()
	for _, rc := range separators {
		c.FillRect(rc, '░')
		c.Style(rc, Styles.Separator)
	}
	if a.Tree.Customizing() {
		for _, rc := range handles {
			c.FillRect(rc, '┄')
			c.Style(rc, Styles.Handle)
		}
	}

	if rc, ok := a.Tree.DropPreview(); ok {
		c.DrawFrame(rc)
		c.DrawCross(rc)
		c.Style(rc, Styles.DropZone)
	}
	if g, ok := a.Tree.DragGhost(); ok {
		rc := geom.Rect{X: g.Pos.X, Y: g.Pos.Y,
			W: g.Panel.Bounds().W, H: g.Panel.Bounds().H}
		c.DrawView(rc, g.View)
		c.Style(rc, Styles.Ghost)
	}

	a.drawMenu(c)
	a.drawStatusBar(c)
	return c.String()
}

func (a *App) drawTabStrips(c *Canvas) {
	for _, strip := range a.Tree.TabStrips() {
		x := strip.Bounds.X
		cell := strip.Bounds.W / max(len(strip.Tabs), 1)
		for i, p := range strip.Tabs {
			label := textutil.PadRight(" "+panelTitle(p), cell)
			c.DrawText(x, strip.Bounds.Y, label)
			rc := geom.NewRect(x, strip.Bounds.Y, textutil.VisualWidth(label), 1)
			if i == strip.Active {
				c.Style(rc, Styles.TabActive)
			} else {
				c.Style(rc, Styles.TabIdle)
			}
			x += textutil.VisualWidth(label)
		}
	}
}

func (a *App) drawMenu(c *Canvas) {
	if a.menu == nil {
		return
	}
	w := 14
	rc := geom.NewRect(a.menuPos.X, a.menuPos.Y, w, len(a.menu)+2)
	if rc.X2() > a.size.W {
		rc.X = a.size.W - w
	}
	c.FillRect(rc, ' ')
	c.DrawFrame(rc)
	for i, side := range a.menu {
		c.DrawText(rc.X+1, rc.Y+1+i, fmt.Sprintf("%d %s", i+1, side))
	}
	c.Style(rc, Styles.Normal)
}

func (a *App) drawStatusBar(c *Canvas) {
	y := a.size.H - 1
	rc := geom.NewRect(0, y, a.size.W, 1)
	c.FillRect(rc, ' ')

	line := a.Selector.View()
	if a.Selector.Expanded() {
		// The open selector renders as an overlay above the bar.
		orc := a.selectorRect()
		c.FillRect(orc, ' ')
		c.DrawView(orc, line)
		c.DrawFrame(orc)
		c.Style(orc, Styles.Normal)
		line = "[ layouts ]"
	}
	c.Style(rc, Styles.Status)

	x := 1
	c.DrawText(x, y, line)
	x += textutil.VisualWidth(line) + 2

	name := textutil.Truncate(a.activeName(), 20)
	c.DrawText(x, y, name)
	c.Style(geom.NewRect(x, y, textutil.VisualWidth(name), 1), Styles.Title)
	x += textutil.VisualWidth(name)
	if a.Selector.BaselineModified(a.Selector.ActiveID()) {
		c.DrawText(x, y, "*")
		c.Style(geom.NewRect(x, y, 1, 1), Styles.Modified)
		x++
	}

	text := a.status
	if a.Tree.Customizing() {
		text += "  customizing"
	}
	if w := a.size.W - x - 3; text != "" && w > 0 {
		x += 2
		text = textutil.Truncate(text, w)
		c.DrawText(x, y, text)
		x += textutil.VisualWidth(text)
	}

	hint := "l layouts · tab focus · q quit"
	hx := a.size.W - textutil.VisualWidth(hint) - 1
	if hx > x+3 {
		c.DrawText(hx, y, hint)
		c.Style(geom.NewRect(hx, y, textutil.VisualWidth(hint), 1), Styles.Hint)
	}
}

func (a *App) selectorRect() geom.Rect {
	h := a.Layouts.Len() + 6
	if h > a.size.H-2 {
		h = a.size.H - 2
	}
	return geom.NewRect(1, a.size.H-1-h, 28, h)
}

func panelTitle(p dock.Panel) string {
	if t, ok := p.(interface{ Title() string }); ok {
		return t.Title()
	}
	return p.ID()
}
