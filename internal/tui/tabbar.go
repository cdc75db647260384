package tui

import (
	"strings"

	"github.com/Digital-Shane/tab-pager/internal/pager"
	"github.com/Digital-Shane/tab-pager/internal/tui/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Bar renders one button per tab item plus an indicator line under the
// selected button. It implements pager.TabBar.
type Bar struct {
	theme theme.Theme

	items     []*pager.TabItem
	selected  int
	visible   bool
	frame     pager.Rect
	activated func(*pager.TabItem)
}

// NewBar constructs an empty themed tab bar.
func NewBar(th theme.Theme) *Bar {
	return &Bar{theme: th, visible: true}
}

// SetItems replaces the button set. Selection is clamped into the new range.
func (b *Bar) SetItems(items []*pager.TabItem) {
	b.items = items
	if b.selected >= len(items) {
		b.selected = 0
	}
}

// Items returns the current button set.
func (b *Bar) Items() []*pager.TabItem { return b.items }

// SetActivated replaces the activation handler. Passing nil unbinds it.
func (b *Bar) SetActivated(fn func(*pager.TabItem)) { b.activated = fn }

// SetSelected moves the indicator to the button at index i.
func (b *Bar) SetSelected(i int) {
	if i < 0 || i >= len(b.items) {
		return
	}
	b.selected = i
}

// Selected returns the indicated button index.
func (b *Bar) Selected() int { return b.selected }

// SetVisible toggles whether the bar renders and claims layout rows.
func (b *Bar) SetVisible(v bool) { b.visible = v }

// Visible reports the bar's visibility flag.
func (b *Bar) Visible() bool { return b.visible }

// ContentHeight reports the button row plus the indicator row.
func (b *Bar) ContentHeight() int { return 2 }

// Insets reports no extra reserved rows.
func (b *Bar) Insets() (top, bottom int) { return 0, 0 }

// SetFrame records the rows the layout pass assigned to the bar.
func (b *Bar) SetFrame(f pager.Rect) { b.frame = f }

// Frame returns the bar's assigned rows.
func (b *Bar) Frame() pager.Rect { return b.frame }

// cellLabel is the text rendered inside one button, icon included.
func (b *Bar) cellLabel(item *pager.TabItem) string {
	if item.Icon != "" {
		return item.Icon + " " + item.Title
	}
	return item.Title
}

// cellWidth is the rendered width of one button including its padding.
func (b *Bar) cellWidth(item *pager.TabItem) int {
	return runewidth.StringWidth(b.cellLabel(item)) + 2*b.theme.Spacing().TabHPadding
}

// ActivateAt fires the activation handler for the button covering column x,
// measured from the bar's left edge. It reports whether a button was hit.
func (b *Bar) ActivateAt(x int) bool {
	if !b.visible || b.activated == nil {
		return false
	}
	left := 0
	for _, item := range b.items {
		w := b.cellWidth(item)
		if x >= left && x < left+w {
			b.activated(item)
			return true
		}
		left += w
	}
	return false
}

// Render draws the button row and the indicator line, trimmed to the bar's
// frame width.
func (b *Bar) Render() string {
	if !b.visible || len(b.items) == 0 {
		return ""
	}

	cells := make([]string, len(b.items))
	var indicator strings.Builder
	for i, item := range b.items {
		style := b.theme.TabStyle()
		if i == b.selected {
			style = b.theme.ActiveTabStyle()
		}
		cells[i] = style.Render(b.cellLabel(item))

		w := b.cellWidth(item)
		if i == b.selected {
			indicator.WriteString(strings.Repeat("─", w))
		} else {
			indicator.WriteString(strings.Repeat(" ", w))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	line := b.theme.IndicatorStyle().Render(indicator.String())
	bar := lipgloss.JoinVertical(lipgloss.Left, row, line)
	if b.frame.Width > 0 {
		bar = lipgloss.NewStyle().MaxWidth(b.frame.Width).Render(bar)
	}
	return bar
}
