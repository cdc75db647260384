package screens

import (
	"github.com/Digital-Shane/tab-pager/internal/pager"
	"github.com/Digital-Shane/tab-pager/internal/tui/theme"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Reader shows a long scrollable document inside a viewport. It keeps its
// scroll position across detach and reattach, so paging away and back does
// not lose the reading spot.
type Reader struct {
	Base
	theme theme.Theme
	vp    viewport.Model
}

// NewReader constructs a document page with the given body text.
func NewReader(th theme.Theme, body string) *Reader {
	vp := viewport.New(0, 0)
	vp.SetContent(body)
	return &Reader{Base: NewBase("reader", "Reader"), theme: th, vp: vp}
}

// SetFrame resizes the viewport to fill the page below its title line.
func (r *Reader) SetFrame(f pager.Rect) {
	r.Base.SetFrame(f)
	r.vp.Width = f.Width
	h := f.Height - 1
	if h < 0 {
		h = 0
	}
	r.vp.Height = h
}

func (r *Reader) Init() tea.Cmd { return nil }

func (r *Reader) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	r.vp, cmd = r.vp.Update(msg)
	return cmd
}

func (r *Reader) View() string {
	title := r.theme.PanelTitleStyle().Render(r.theme.Icon("reader") + " Reader")
	return lipgloss.JoinVertical(lipgloss.Left, title, r.vp.View())
}
