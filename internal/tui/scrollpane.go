package tui

import "github.com/Digital-Shane/tab-pager/internal/pager"

// ScrollPane is a horizontally pannable surface that always settles on page
// boundaries. It implements pager.ScrollSurface; key-driven swipes are
// expressed as the same drag/settle sequence a pointer gesture would produce.
type ScrollPane struct {
	frame   pager.Rect
	content pager.Size
	offset  pager.Point

	bounce   bool
	paging   bool
	dragging bool

	dragBegan         func()
	decelerationEnded func()
}

// NewScrollPane constructs an idle scroll pane.
func NewScrollPane() *ScrollPane {
	return &ScrollPane{}
}

// SetFrame records the viewport rows assigned by the layout pass.
func (p *ScrollPane) SetFrame(f pager.Rect) { p.frame = f }

// Frame returns the viewport rows.
func (p *ScrollPane) Frame() pager.Rect { return p.frame }

// SetContentSize records the total pannable extent.
func (p *ScrollPane) SetContentSize(s pager.Size) { p.content = s }

// ContentSize returns the total pannable extent.
func (p *ScrollPane) ContentSize() pager.Size { return p.content }

// SetOffset positions the viewport within the content.
func (p *ScrollPane) SetOffset(o pager.Point) { p.offset = o }

// Offset returns the viewport position within the content.
func (p *ScrollPane) Offset() pager.Point { return p.offset }

// SetBounceEnabled allows panning past the content edge. The pane still
// settles back inside the content when the gesture ends.
func (p *ScrollPane) SetBounceEnabled(enabled bool) { p.bounce = enabled }

// BounceEnabled reports whether edge overshoot is allowed mid-gesture.
func (p *ScrollPane) BounceEnabled() bool { return p.bounce }

// SetPagingEnabled toggles page snapping on gesture end.
func (p *ScrollPane) SetPagingEnabled(enabled bool) { p.paging = enabled }

// SetDragBegan replaces the handler invoked when a pan gesture starts.
func (p *ScrollPane) SetDragBegan(fn func()) { p.dragBegan = fn }

// SetDecelerationEnded replaces the handler invoked once the pane settles.
func (p *ScrollPane) SetDecelerationEnded(fn func()) { p.decelerationEnded = fn }

// maxOffset is the largest in-range horizontal offset.
func (p *ScrollPane) maxOffset() int {
	m := p.content.Width - p.frame.Width
	if m < 0 {
		m = 0
	}
	return m
}

// BeginDrag starts a pan gesture. Nested calls are ignored.
func (p *ScrollPane) BeginDrag() {
	if p.dragging {
		return
	}
	p.dragging = true
	if p.dragBegan != nil {
		p.dragBegan()
	}
}

// Pan moves the viewport by dx columns during a drag. Without bounce the
// offset is pinned to the content range; with bounce it may overshoot by up
// to one page width.
func (p *ScrollPane) Pan(dx int) {
	if !p.dragging {
		return
	}
	x := p.offset.X + dx
	lo, hi := 0, p.maxOffset()
	if p.bounce {
		lo -= p.frame.Width
		hi += p.frame.Width
	}
	if x < lo {
		x = lo
	}
	if x > hi {
		x = hi
	}
	p.offset.X = x
}

// EndDeceleration finishes the gesture: the offset snaps to the nearest page
// boundary inside the content range and the settle handler fires.
func (p *ScrollPane) EndDeceleration() {
	if !p.dragging {
		return
	}
	p.dragging = false
	if p.paging && p.frame.Width > 0 {
		page := (p.offset.X + p.frame.Width/2) / p.frame.Width
		if p.offset.X < 0 {
			page = 0
		}
		x := page * p.frame.Width
		if m := p.maxOffset(); x > m {
			x = m
		}
		if x < 0 {
			x = 0
		}
		p.offset.X = x
	}
	if p.decelerationEnded != nil {
		p.decelerationEnded()
	}
}

// Swipe performs a full one-page gesture in the given direction (+1 right,
// -1 left) as a drag, pan, settle sequence.
func (p *ScrollPane) Swipe(direction int) {
	p.BeginDrag()
	p.Pan(direction * p.frame.Width)
	p.EndDeceleration()
}
