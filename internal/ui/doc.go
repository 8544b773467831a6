// Package ui hosts the terminal front end of the panel dock.
//
// Core pieces:
//   - App: root Bubble Tea model wiring dock, layouts, selector, prefs
//   - BasicPanel: the standard dockable panel with a rendered body
//   - Canvas: rune-grid compositor the dock view is painted onto
//   - SnapshotCache: memoized panel views keyed by panel id and size
//   - FocusManager: tracks and rotates focus across panels
package ui
