package pager

// Screen is a single page of content hosted by a Container. The container
// compares screens by their ID when deciding what to materialize or tear
// down, so IDs must be stable and unique within one container.
type Screen interface {
	// ID uniquely identifies the screen within its container.
	ID() string
	// Title labels the screen's tab.
	Title() string
	// OnAttach is invoked when the container materializes the screen. The
	// owner reference stays valid until OnDetach.
	OnAttach(owner *Container)
	// OnDetach is invoked when the screen leaves the materialized window.
	OnDetach()
	// SetFrame positions the screen along the paging axis, relative to the
	// scroll surface's content origin.
	SetFrame(Rect)
	Frame() Rect
	// SetClipped tells the screen to confine its rendering to its frame.
	SetClipped(bool)
}

// TabBar renders one selectable button per screen plus a selection
// indicator. Implementations own their rendering; the container only feeds
// them items, frames, and the selected index.
type TabBar interface {
	SetItems([]*TabItem)
	Items() []*TabItem
	// SetActivated replaces the activation handler. Passing nil unbinds the
	// previous handler without installing a new one.
	SetActivated(func(*TabItem))
	SetSelected(int)
	SetVisible(bool)
	Visible() bool
	// ContentHeight reports the intrinsic height of the buttons and
	// indicator, excluding insets.
	ContentHeight() int
	// Insets reports extra rows reserved above and below the buttons.
	Insets() (top, bottom int)
	SetFrame(Rect)
}

// ScrollSurface is a pannable viewport with paging always enabled. The
// container drives content size and offset; the surface reports gesture
// boundaries back through the two handlers.
type ScrollSurface interface {
	SetFrame(Rect)
	Frame() Rect
	SetContentSize(Size)
	ContentSize() Size
	SetOffset(Point)
	Offset() Point
	SetBounceEnabled(bool)
	BounceEnabled() bool
	SetPagingEnabled(bool)
	// SetDragBegan replaces the handler invoked when a pan gesture starts.
	SetDragBegan(func())
	// SetDecelerationEnded replaces the handler invoked once the surface
	// settles on a page boundary.
	SetDecelerationEnded(func())
}
