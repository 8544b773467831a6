// Package selector implements the layout selector: a collapsible control
// listing the built-in and user layouts, applying one on selection,
// creating new ones with a rename-on-create prompt, and toggling the
// dock's customize mode while it is open.
package selector

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"paneldock/internal/layout"
	"paneldock/internal/prefs"
	"paneldock/internal/ui/textutil"
)

// listWidth is the column budget for rendered item titles.
const listWidth = 26

// Option identifies the kind of a selector entry.
type Option int

const (
	OptionDefault Option = iota
	OptionMirroredDefault
	OptionUserDefined
	OptionNewLayout
)

// ApplyMsg asks the application to apply a layout to the dock. Layout is
// nil for the built-in baselines when the user has not customized them;
// Option then tells the application which baseline to seed.
type ApplyMsg struct {
	Option Option
	Layout *layout.Layout
}

// CustomizeMsg toggles the dock's customize mode alongside the selector.
type CustomizeMsg struct {
	Enable bool
}

// CreateLayoutMsg asks the application to snapshot the live dock under a
// fresh id and hand it back through AddLayout.
type CreateLayoutMsg struct {
	ID   string
	Name string
}

type item struct {
	option Option
	layout *layout.Layout
	title  string
}

// Model is the selector state. It owns the layout collection and the
// active-layout id; the dock tree itself belongs to the application.
type Model struct {
	layouts *layout.Layouts
	pref    *prefs.Preferences

	active    string
	expanded  bool
	cursor    int
	items     []item
	filter    string
	baselines map[string]*layout.Layout

	naming bool
	input  textinput.Model

	selStyle, normStyle, markStyle lipgloss.Style
}

// New creates a collapsed selector. The active layout id is restored from
// preferences, falling back to the default baseline.
func New(layouts *layout.Layouts, pref *prefs.Preferences) *Model {
	in := textinput.New()
	in.Placeholder = "layout name"
	in.CharLimit = 40
	in.Width = 24

	active := pref.ActiveLayoutID()
	if active == "" {
		active = layout.Default
	}

	return &Model{
		layouts:   layouts,
		pref:      pref,
		active:    active,
		input:     in,
		selStyle:  lipgloss.NewStyle().Bold(true),
		normStyle: lipgloss.NewStyle(),
		markStyle: lipgloss.NewStyle().Faint(true),
	}
}

// ActiveID returns the id of the active layout.
func (m *Model) ActiveID() string { return m.active }

// SetBaselines registers the built-in baseline snapshots, so the modified
// marker reflects a stored entry that actually differs from the built-in
// arrangement rather than mere presence of one.
func (m *Model) SetBaselines(def, mirrored *layout.Layout) {
	m.baselines = map[string]*layout.Layout{
		layout.Default:         def,
		layout.MirroredDefault: mirrored,
	}
}

// BaselineModified reports whether a baseline id is shadowed by a stored
// customization. Without registered baselines any stored entry counts.
func (m *Model) BaselineModified(id string) bool {
	stored := m.layouts.GetByID(id)
	if stored == nil {
		return false
	}
	base := m.baselines[id]
	if base == nil {
		return true
	}
	return !stored.Equal(base)
}

// Expanded reports whether the selector list is open.
func (m *Model) Expanded() bool { return m.expanded }

// Toggle opens or closes the selector and mirrors the state into the
// dock's customize mode.
func (m *Model) Toggle() tea.Cmd {
	m.expanded = !m.expanded
	m.naming = false
	m.filter = ""
	if m.expanded {
		m.rebuildItems()
	}
	enable := m.expanded
	return func() tea.Msg { return CustomizeMsg{Enable: enable} }
}

// rebuildItems lists the baselines (marked with a trailing asterisk when
// a stored customization diverges from them), the user layouts, and the
// final new-layout entry.
func (m *Model) rebuildItems() {
	m.items = m.items[:0]

	defTitle := "Default"
	if m.BaselineModified(layout.Default) {
		defTitle += "*"
	}
	mirrorTitle := "Mirrored Default"
	if m.BaselineModified(layout.MirroredDefault) {
		mirrorTitle += "*"
	}
	m.items = append(m.items,
		item{option: OptionDefault, layout: m.layouts.GetByID(layout.Default), title: defTitle},
		item{option: OptionMirroredDefault, layout: m.layouts.GetByID(layout.MirroredDefault), title: mirrorTitle},
	)

	for _, l := range m.layouts.All() {
		if l.IsDefault() {
			continue
		}
		m.items = append(m.items, item{option: OptionUserDefined, layout: l, title: l.Name()})
	}
	m.items = append(m.items, item{option: OptionNewLayout, title: "New layout…"})

	m.cursor = 0
	for i, it := range m.items {
		if it.layout != nil && it.layout.MatchID(m.active) {
			m.cursor = i
			break
		}
	}
}

// visibleItems applies the typed filter. The new-layout entry always
// stays reachable.
func (m *Model) visibleItems() []item {
	if m.filter == "" {
		return m.items
	}
	match := newMatchWords(m.filter)
	out := make([]item, 0, len(m.items))
	for _, it := range m.items {
		if it.option == OptionNewLayout || match(it.title) {
			out = append(out, it)
		}
	}
	return out
}

// Update handles key input while the selector is open. It returns false
// when the key was not consumed.
func (m *Model) Update(msg tea.KeyMsg) (tea.Cmd, bool) {
	if !m.expanded {
		return nil, false
	}

	if m.naming {
		return m.updateNaming(msg)
	}

	items := m.visibleItems()
	switch msg.String() {
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		return nil, true
	case "down", "ctrl+n":
		if m.cursor < len(items)-1 {
			m.cursor++
		}
		return nil, true
	case "enter":
		if m.cursor < len(items) {
			return m.selectItem(items[m.cursor]), true
		}
		return nil, true
	case "esc":
		return m.Toggle(), true
	case "backspace":
		if m.filter != "" {
			m.filter = m.filter[:len(m.filter)-1]
		}
		return nil, true
	default:
		if s := msg.String(); len(s) == 1 {
			m.filter += s
			m.cursor = 0
			return nil, true
		}
	}
	return nil, false
}

func (m *Model) updateNaming(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "enter":
		name := m.input.Value()
		if !layout.IsValidName(name) {
			return nil, true
		}
		m.naming = false
		id := uuid.NewString()
		return func() tea.Msg { return CreateLayoutMsg{ID: id, Name: strings.TrimSpace(name)} }, true
	case "esc":
		m.naming = false
		return nil, true
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd, true
}

func (m *Model) selectItem(it item) tea.Cmd {
	switch it.option {
	case OptionNewLayout:
		m.naming = true
		m.input.SetValue("")
		m.input.Focus()
		return textinput.Blink
	case OptionDefault:
		m.setActive(layout.Default)
	case OptionMirroredDefault:
		m.setActive(layout.MirroredDefault)
	case OptionUserDefined:
		m.setActive(it.layout.ID())
	}
	l := it.layout
	opt := it.option
	return func() tea.Msg { return ApplyMsg{Option: opt, Layout: l} }
}

func (m *Model) setActive(id string) {
	m.active = id
	m.pref.SetActiveLayoutID(id)
}

// AddLayout records a new or updated layout snapshot: a genuinely new
// user layout gets an item above the new-layout entry and becomes active;
// an existing id is refreshed in place. The collection is persisted
// either way.
func (m *Model) AddLayout(l *layout.Layout) {
	added := m.layouts.Add(l)
	if added && !l.IsDefault() {
		m.setActive(l.ID())
	}
	if m.expanded {
		m.rebuildItems()
	}
	m.layouts.SaveUser()
}

// UpdateActiveLayout stores a fresh snapshot of the active layout after
// the user rearranged the dock, overwriting the entry with the same id.
func (m *Model) UpdateActiveLayout(l *layout.Layout) {
	m.layouts.Add(l)
	m.active = l.ID()
	m.layouts.SaveUser()
}

// View renders the collapsed button or the open list.
func (m *Model) View() string {
	if !m.expanded {
		return m.markStyle.Render("[ layouts ]")
	}

	var b strings.Builder
	b.WriteString(m.selStyle.Render("Layout"))
	b.WriteByte('\n')

	if m.naming {
		b.WriteString("name: ")
		b.WriteString(m.input.View())
		b.WriteByte('\n')
		return b.String()
	}

	if m.filter != "" {
		b.WriteString(m.markStyle.Render("/" + m.filter))
		b.WriteByte('\n')
	}
	for i, it := range m.visibleItems() {
		title := textutil.Truncate(it.title, listWidth)
		if i == m.cursor {
			b.WriteString(m.selStyle.Render("> " + title))
		} else {
			b.WriteString(m.normStyle.Render("  " + title))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
