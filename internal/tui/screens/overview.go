package screens

import (
	"fmt"
	"strings"

	"github.com/Digital-Shane/tab-pager/internal/tui/theme"
	tea "github.com/charmbracelet/bubbletea"
)

// Overview is the landing page. It explains the controls and shows which
// pages are currently materialized, which makes the windowing visible while
// you move around.
type Overview struct {
	Base
	theme theme.Theme
}

// NewOverview constructs the landing page.
func NewOverview(th theme.Theme) *Overview {
	return &Overview{Base: NewBase("overview", "Home"), theme: th}
}

func (o *Overview) Init() tea.Cmd { return nil }

func (o *Overview) Update(tea.Msg) tea.Cmd { return nil }

func (o *Overview) View() string {
	lines := []string{
		o.theme.PanelTitleStyle().Render(o.theme.Icon("overview") + " Welcome"),
		"",
		"←/→ or h/l  swipe between pages",
		"tab / shift+tab  step the selection",
		"1-9  jump straight to a page",
		"a  move the tab bar (top, bottom, hidden)",
		"b  toggle edge bounce",
		"q  quit",
	}

	if owner := o.Owner(); owner != nil {
		lines = append(lines, "", o.theme.PanelTitleStyle().Render("Live pages"))
		for _, s := range owner.AttachedScreens() {
			marker := " "
			if s == owner.SelectedScreen() {
				marker = o.theme.Icon("right")
			}
			lines = append(lines, fmt.Sprintf("%s %s", marker, s.Title()))
		}
		lines = append(lines, "",
			fmt.Sprintf("Only pages near the selection stay live; the rest are torn down (%d of %d now).",
				len(owner.AttachedScreens()), len(owner.Screens())))
	}

	frame := o.Frame()
	panel := o.theme.PanelStyle()
	width := frame.Width - panel.GetHorizontalFrameSize()
	if width < 0 {
		width = 0
	}
	return panel.Width(width).Render(strings.Join(lines, "\n"))
}
