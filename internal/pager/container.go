package pager

// Container owns an ordered set of screens, the selected index, and the two
// collaborators that make selection visible: a tab bar and a paged scroll
// surface. All methods must be called from the loop that owns the UI; the
// container performs no locking and never blocks.
type Container struct {
	scroll ScrollSurface
	bar    TabBar

	screens  []Screen
	selected int
	attached map[string]Screen

	alignment Alignment
	items     *itemTable
	bounds    Rect

	// previousOffset is sampled at drag start so the settle handler can
	// infer swipe direction from the final offset.
	previousOffset int
}

// Option configures a Container during construction.
type Option func(*Container)

// WithInitialIndex selects the page shown first. Out-of-range values fall
// back to the first page.
func WithInitialIndex(i int) Option {
	return func(c *Container) { c.selected = i }
}

// WithAlignment places the tab bar relative to the pages.
func WithAlignment(a Alignment) Option {
	return func(c *Container) { c.alignment = a }
}

// New wires a container to its collaborators and materializes the initial
// window of screens.
func New(surface ScrollSurface, bar TabBar, screens []Screen, opts ...Option) *Container {
	c := &Container{
		scroll:   surface,
		bar:      bar,
		screens:  screens,
		attached: make(map[string]Screen),
		items:    newItemTable(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.selected < 0 || c.selected >= len(c.screens) {
		c.selected = 0
	}
	surface.SetPagingEnabled(true)
	surface.SetDragBegan(c.dragBegan)
	surface.SetDecelerationEnded(c.decelerationEnded)
	c.refresh()
	return c
}

// SelectedIndex returns the index of the current page. The value is
// meaningless while the container holds no screens.
func (c *Container) SelectedIndex() int { return c.selected }

// Screens returns the ordered page set.
func (c *Container) Screens() []Screen { return c.screens }

// Alignment returns the current tab bar placement.
func (c *Container) Alignment() Alignment { return c.alignment }

// SelectedScreen returns the screen for the current page, or nil when the
// container is empty.
func (c *Container) SelectedScreen() Screen {
	if c.selected < 0 || c.selected >= len(c.screens) {
		return nil
	}
	return c.screens[c.selected]
}

// AttachedScreens returns the materialized screens in page order.
func (c *Container) AttachedScreens() []Screen {
	out := make([]Screen, 0, len(c.attached))
	for _, s := range c.screens {
		if _, ok := c.attached[s.ID()]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Item returns the tab item for s, creating a default one on first access.
// Assigning fields on the returned item takes effect on the next bar rebuild.
func (c *Container) Item(s Screen) *TabItem { return c.items.item(s) }

// SetItem replaces the cached tab item for s and refreshes the bar.
func (c *Container) SetItem(s Screen, item *TabItem) {
	c.items.replace(s, item)
	c.rebuildBar()
}

// SetBounceEnabled delegates the bounce flag to the scroll surface.
func (c *Container) SetBounceEnabled(enabled bool) { c.scroll.SetBounceEnabled(enabled) }

// BounceEnabled reports the scroll surface's bounce flag.
func (c *Container) BounceEnabled() bool { return c.scroll.BounceEnabled() }

// SetScreens replaces the whole page set. Every materialized screen is torn
// down, tab items for departed screens are dropped, and the container
// re-prepares with the selection reset to the first page.
func (c *Container) SetScreens(screens []Screen) {
	for id, s := range c.attached {
		delete(c.attached, id)
		s.OnDetach()
	}
	kept := make(map[string]bool, len(screens))
	for _, s := range screens {
		kept[s.ID()] = true
	}
	for _, s := range c.screens {
		if !kept[s.ID()] {
			c.items.remove(s)
		}
	}
	c.screens = screens
	c.selected = 0
	c.refresh()
}

// Select activates the page at index i, exactly as a tab tap would.
// Out-of-range or already-selected indices are ignored.
func (c *Container) Select(i int) { c.applySelection(i) }

// applySelection moves the selection and reconciles everything that hangs off
// it: the materialized window, the tab bar, and the scroll geometry. Screens
// that fall out of the new window are detached before any survivor is
// repositioned.
func (c *Container) applySelection(next int) {
	if next < 0 || next >= len(c.screens) || next == c.selected {
		return
	}
	win := Window(next, len(c.screens), windowSize)
	c.detachOutside(win)
	c.selected = next
	for _, i := range win {
		c.attach(i)
	}
	c.rebuildBar()
	c.layoutPages()
}

// refresh reconciles collaborators against the current selection without the
// same-index guard. Used for initial preparation and wholesale screen swaps.
func (c *Container) refresh() {
	win := Window(c.selected, len(c.screens), windowSize)
	c.detachOutside(win)
	for _, i := range win {
		c.attach(i)
	}
	c.rebuildBar()
	c.layoutPages()
}

func (c *Container) detachOutside(win []int) {
	keep := make(map[string]bool, len(win))
	for _, i := range win {
		if i >= 0 && i < len(c.screens) {
			keep[c.screens[i].ID()] = true
		}
	}
	for id, s := range c.attached {
		if !keep[id] {
			delete(c.attached, id)
			s.OnDetach()
		}
	}
}

// attach materializes the screen at index i. Already-attached and
// out-of-range indices are no-ops.
func (c *Container) attach(i int) {
	if i < 0 || i >= len(c.screens) {
		return
	}
	s := c.screens[i]
	if _, ok := c.attached[s.ID()]; ok {
		return
	}
	c.attached[s.ID()] = s
	s.SetClipped(true)
	s.OnAttach(c)
}

// rebuildBar rebuilds the button set from the screen list, one lazily
// created item per screen, and rebinds the activation handler.
func (c *Container) rebuildBar() {
	if len(c.screens) == 0 {
		c.bar.SetItems(nil)
		c.bar.SetActivated(nil)
		c.bar.SetVisible(false)
		return
	}
	items := make([]*TabItem, len(c.screens))
	for i, s := range c.screens {
		items[i] = c.items.item(s)
	}
	c.bar.SetItems(items)
	c.bar.SetActivated(c.tabActivated)
	c.bar.SetSelected(c.selected)
}

// tabActivated resolves an activated button back to its page index by
// identity. Buttons no longer part of the bar resolve to nothing.
func (c *Container) tabActivated(item *TabItem) {
	idx := -1
	for i, it := range c.bar.Items() {
		if it == item {
			idx = i
			break
		}
	}
	if idx < 0 || idx == c.selected {
		return
	}
	c.applySelection(idx)
}

func (c *Container) dragBegan() {
	c.previousOffset = c.scroll.Offset().X
}

// decelerationEnded infers swipe direction by comparing the settled offset
// with the offset recorded at drag start.
func (c *Container) decelerationEnded() {
	final := c.scroll.Offset().X
	direction := 0
	switch {
	case final > c.previousOffset:
		direction = 1
	case final < c.previousOffset:
		direction = -1
	default:
		return
	}
	candidate := c.selected + direction
	if candidate < 0 || candidate >= len(c.screens) || candidate == c.selected {
		return
	}
	c.applySelection(candidate)
}
