package screens

import (
	"fmt"
	"strings"

	"github.com/Digital-Shane/tab-pager/internal/pager"
	"github.com/Digital-Shane/tab-pager/internal/tui/theme"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// Notes is a small scratch pad backed by a textarea. The pad's text survives
// detachment because it lives on the screen value, not in the attach
// lifecycle.
type Notes struct {
	Base
	theme theme.Theme
	input textarea.Model
}

// NewNotes constructs an empty scratch pad page.
func NewNotes(th theme.Theme) *Notes {
	ta := textarea.New()
	ta.Placeholder = "jot something down"
	ta.ShowLineNumbers = false
	ta.Focus()
	return &Notes{Base: NewBase("notes", "Notes"), theme: th, input: ta}
}

// SetFrame resizes the textarea to fill the page below the title and above
// the hint line.
func (n *Notes) SetFrame(f pager.Rect) {
	n.Base.SetFrame(f)
	n.input.SetWidth(f.Width)
	h := f.Height - 2
	if h < 1 {
		h = 1
	}
	n.input.SetHeight(h)
}

func (n *Notes) Init() tea.Cmd { return textarea.Blink }

func (n *Notes) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	return cmd
}

func (n *Notes) View() string {
	title := n.theme.PanelTitleStyle().Render(n.theme.Icon("notes") + " Notes")
	hint := fmt.Sprintf("type to jot, enter for a new line (%d lines)", n.input.LineCount())
	return strings.Join([]string{title, n.input.View(), hint}, "\n")
}

// Value returns the pad's current text.
func (n *Notes) Value() string { return n.input.Value() }
