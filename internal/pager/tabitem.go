package pager

import (
	"github.com/patrickmn/go-cache"
)

// TabItem is the selectable control bound 1:1 to a screen. Items are created
// on first access and live until their screen is torn down.
type TabItem struct {
	Title string
	Icon  string
}

// itemTable maps screen identity to its TabItem. Keeping the mapping in an
// explicit side table keeps item ownership out of the screens themselves.
type itemTable struct {
	entries *cache.Cache
}

func newItemTable() *itemTable {
	return &itemTable{entries: cache.New(cache.NoExpiration, 0)}
}

// item returns the cached TabItem for s, creating a default one on first
// access. Access is confined to the UI loop, so no construction guard is
// needed.
func (t *itemTable) item(s Screen) *TabItem {
	if v, ok := t.entries.Get(s.ID()); ok {
		return v.(*TabItem)
	}
	item := &TabItem{Title: s.Title()}
	t.entries.Set(s.ID(), item, cache.NoExpiration)
	return item
}

// replace swaps in an explicitly assigned item for s.
func (t *itemTable) replace(s Screen, item *TabItem) {
	t.entries.Set(s.ID(), item, cache.NoExpiration)
}

// remove drops the item for s. Called when a screen leaves the container for
// good so the item dies with it.
func (t *itemTable) remove(s Screen) {
	t.entries.Delete(s.ID())
}
