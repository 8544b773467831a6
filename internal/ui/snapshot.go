package ui

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"paneldock/internal/dock"
	"paneldock/internal/geom"
)

// SnapshotCache memoizes rendered panel views keyed by panel id and size,
// so repaints during drag gestures do not re-render every panel body each
// frame. Entries are evicted LRU; a relayout to a new size simply misses.
type SnapshotCache struct {
	cache *lru.Cache[string, string]
}

// NewSnapshotCache creates a cache holding up to n rendered views.
func NewSnapshotCache(n int) *SnapshotCache {
	if n <= 0 {
		n = 64
	}
	c, err := lru.New[string, string](n)
	if err != nil {
		// lru.New only fails for a non-positive size.
		panic(err)
	}
	return &SnapshotCache{cache: c}
}

// Render returns the panel's rendered view for its current bounds,
// computing and caching it on a miss.
func (s *SnapshotCache) Render(p dock.Panel) string {
	key := snapshotKey(p.ID(), p.Bounds().Size())
	if view, ok := s.cache.Get(key); ok {
		return view
	}
	view := p.View()
	s.cache.Add(key, view)
	return view
}

// Invalidate drops every cached size of one panel. Cheap enough to do by
// purging; panel counts are small.
func (s *SnapshotCache) Invalidate(id string) {
	for _, key := range s.cache.Keys() {
		if keyPanelID(key) == id {
			s.cache.Remove(key)
		}
	}
}

// InvalidateAll drops every cached view, used after layout changes that
// move several panels at once.
func (s *SnapshotCache) InvalidateAll() {
	s.cache.Purge()
}

func snapshotKey(id string, sz geom.Size) string {
	return fmt.Sprintf("%s\x00%dx%d", id, sz.W, sz.H)
}

func keyPanelID(key string) string {
	for i := 0; i < len(key); i++ {
		if key[i] == '\x00' {
			return key[:i]
		}
	}
	return key
}
