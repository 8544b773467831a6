package layout

import (
	"encoding/xml"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// userLayoutsFile is the file name under the user config dir holding every
// persisted layout.
const userLayoutsFile = "layouts.xml"

// ResourceFinder resolves the path of a named user resource file. The
// collection treats resolution as opaque.
type ResourceFinder func(name string) (string, error)

// DefaultResourceFinder places resources under the user config directory.
func DefaultResourceFinder(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "paneldock", name), nil
}

// Layouts is an ordered collection of layouts with unique ids. Default
// entries are seeded first by application startup logic; the persistence
// round-trip never invents them.
type Layouts struct {
	list     []*Layout
	filename string
}

// Open loads the user layouts file resolved by the finder. A missing or
// corrupt file yields an empty collection; a broken layouts file must
// never prevent startup, so errors are logged and swallowed.
func Open(find ResourceFinder) *Layouts {
	ls := &Layouts{}
	fn, err := find(userLayoutsFile)
	if err != nil {
		log.Printf("layouts: resolving user file: %v", err)
		return ls
	}
	ls.filename = fn
	if _, err := os.Stat(fn); err != nil {
		return ls
	}
	if err := ls.Load(fn); err != nil {
		log.Printf("layouts: loading %s: %v", fn, err)
		ls.list = nil
	}
	return ls
}

// Len returns the number of layouts.
func (ls *Layouts) Len() int { return len(ls.list) }

// All returns the layouts in order. Callers must not mutate the slice.
func (ls *Layouts) All() []*Layout { return ls.list }

// GetByID returns the layout with the given id, or nil.
func (ls *Layouts) GetByID(id string) *Layout {
	for _, l := range ls.list {
		if l.MatchID(id) {
			return l
		}
	}
	return nil
}

// Add inserts a layout or, when an entry with the same id exists, replaces
// it in place preserving its position. The return value reports a
// genuinely new entry; callers use it to decide between adding a UI item
// and refreshing an existing one.
func (ls *Layouts) Add(l *Layout) bool {
	for i, existing := range ls.list {
		if existing.MatchID(l.ID()) {
			ls.list[i] = l
			return false
		}
	}
	ls.list = append(ls.list, l)
	return true
}

// file-level XML shape: an ordered list of layout elements under one root.
type layoutsXML struct {
	XMLName xml.Name    `xml:"layouts"`
	Layouts []layoutXML `xml:"layout"`
}

type layoutXML struct {
	ID   string    `xml:"id,attr"`
	Name string    `xml:"name,attr"`
	Dock *DockElem `xml:"dock"`
}

// Load replaces the collection with the contents of fn.
func (ls *Layouts) Load(fn string) error {
	data, err := os.ReadFile(fn)
	if err != nil {
		return fmt.Errorf("read layouts: %w", err)
	}
	var doc layoutsXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse layouts: %w", err)
	}

	ls.list = nil
	for _, le := range doc.Layouts {
		ls.list = append(ls.list, New(le.ID, le.Name, le.Dock))
	}
	return nil
}

// Save writes the collection to fn. The output is deterministic: saving
// twice without mutation produces identical bytes.
func (ls *Layouts) Save(fn string) error {
	doc := layoutsXML{}
	for _, l := range ls.list {
		doc.Layouts = append(doc.Layouts, layoutXML{ID: l.ID(), Name: l.Name(), Dock: l.Root()})
	}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal layouts: %w", err)
	}
	data = append([]byte(xml.Header), data...)

	if err := os.MkdirAll(filepath.Dir(fn), 0o755); err != nil {
		return fmt.Errorf("create layouts dir: %w", err)
	}
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write layouts: %w", err)
	}
	return nil
}

// SaveUser persists to the file the collection was opened from. Failures
// are logged, never propagated: the in-memory state stays authoritative
// for the rest of the session.
func (ls *Layouts) SaveUser() {
	if ls.filename == "" {
		return
	}
	if err := ls.Save(ls.filename); err != nil {
		log.Printf("layouts: saving %s: %v", ls.filename, err)
	}
}
