package pager

// Alignment controls where the tab bar sits relative to the pages.
type Alignment int

const (
	AlignTop Alignment = iota
	AlignBottom
	AlignHidden
)

// String returns the config-facing name of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignBottom:
		return "bottom"
	case AlignHidden:
		return "hidden"
	default:
		return "top"
	}
}

// ParseAlignment maps a config string to an Alignment, defaulting to top.
func ParseAlignment(s string) Alignment {
	switch s {
	case "bottom":
		return AlignBottom
	case "hidden":
		return AlignHidden
	default:
		return AlignTop
	}
}

// SetAlignment moves the tab bar and re-runs the layout pass.
func (c *Container) SetAlignment(a Alignment) {
	if a == c.alignment {
		return
	}
	c.alignment = a
	c.Layout(c.bounds)
}

// Layout recomputes the tab bar and viewport frames for the given bounds and
// repositions every materialized screen. Call it whenever the owner's bounds
// change.
func (c *Container) Layout(bounds Rect) {
	c.bounds = bounds
	reserved := c.reservedBarExtent()
	viewH := bounds.Height - reserved
	if viewH < 0 {
		viewH = 0
	}
	switch {
	case reserved > 0 && c.alignment == AlignBottom:
		c.scroll.SetFrame(Rect{X: bounds.X, Y: bounds.Y, Width: bounds.Width, Height: viewH})
		c.bar.SetFrame(Rect{X: bounds.X, Y: bounds.Y + viewH, Width: bounds.Width, Height: reserved})
	case reserved > 0:
		c.bar.SetFrame(Rect{X: bounds.X, Y: bounds.Y, Width: bounds.Width, Height: reserved})
		c.scroll.SetFrame(Rect{X: bounds.X, Y: bounds.Y + reserved, Width: bounds.Width, Height: viewH})
	default:
		c.scroll.SetFrame(bounds)
	}
	c.layoutPages()
}

// reservedBarExtent returns the rows claimed by the tab bar and keeps the
// bar's visible flag in sync. A hidden or empty bar claims nothing.
func (c *Container) reservedBarExtent() int {
	if c.alignment == AlignHidden || len(c.screens) == 0 {
		c.bar.SetVisible(false)
		return 0
	}
	c.bar.SetVisible(true)
	top, bottom := c.bar.Insets()
	return c.bar.ContentHeight() + top + bottom
}

// layoutPages frames every materialized screen at its index-absolute
// position, so the offset formula pageWidth*selected holds no matter which
// neighbors happen to be materialized.
func (c *Container) layoutPages() {
	view := c.scroll.Frame()
	pageW, pageH := view.Width, view.Height
	for i, s := range c.screens {
		if _, ok := c.attached[s.ID()]; !ok {
			continue
		}
		s.SetFrame(Rect{X: i * pageW, Y: 0, Width: pageW, Height: pageH})
	}
	c.scroll.SetContentSize(Size{Width: pageW * len(c.screens), Height: pageH})
	c.scroll.SetOffset(Point{X: pageW * c.selected})
}
