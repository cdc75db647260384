package screens

import "github.com/Digital-Shane/tab-pager/internal/pager"

// Base carries the bookkeeping every screen needs: identity, title, the
// frame assigned by the layout pass, and the owner reference that is only
// valid while materialized. Concrete screens embed it and add behavior.
type Base struct {
	id    string
	title string

	frame   pager.Rect
	clipped bool
	owner   *pager.Container
}

// NewBase constructs the shared screen state.
func NewBase(id, title string) Base {
	return Base{id: id, title: title}
}

// ID uniquely identifies the screen within its container.
func (b *Base) ID() string { return b.id }

// Title labels the screen's tab.
func (b *Base) Title() string { return b.title }

// OnAttach records the owning container.
func (b *Base) OnAttach(owner *pager.Container) { b.owner = owner }

// OnDetach drops the owner reference.
func (b *Base) OnDetach() { b.owner = nil }

// SetFrame records the screen's position along the paging axis.
func (b *Base) SetFrame(f pager.Rect) { b.frame = f }

// Frame returns the assigned frame.
func (b *Base) Frame() pager.Rect { return b.frame }

// SetClipped records whether rendering must stay inside the frame.
func (b *Base) SetClipped(c bool) { b.clipped = c }

// Clipped reports the clipping flag.
func (b *Base) Clipped() bool { return b.clipped }

// Owner returns the hosting container, or nil while detached.
func (b *Base) Owner() *pager.Container { return b.owner }

// Attached reports whether the screen is currently materialized.
func (b *Base) Attached() bool { return b.owner != nil }
