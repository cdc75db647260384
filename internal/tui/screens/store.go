package screens

import csmap "github.com/mhmtszr/concurrent-swiss-map"

// Store holds fetched page content keyed by screen ID. Loads run in
// background commands while the UI loop reads, so access must be safe from
// both sides.
type Store struct {
	entries *csmap.CsMap[string, []string]
}

// NewStore constructs an empty content store.
func NewStore() *Store {
	return &Store{entries: csmap.Create[string, []string]()}
}

// Put stores the content lines for a screen.
func (s *Store) Put(id string, lines []string) {
	s.entries.Store(id, lines)
}

// Get returns the content lines for a screen, if loaded.
func (s *Store) Get(id string) ([]string, bool) {
	return s.entries.Load(id)
}

// Len reports how many screens have loaded content.
func (s *Store) Len() int {
	return s.entries.Count()
}
