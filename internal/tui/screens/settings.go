package screens

import (
	"fmt"
	"strings"

	"github.com/Digital-Shane/tab-pager/internal/tui/theme"
	tea "github.com/charmbracelet/bubbletea"
)

// Settings reflects the live container state back at the user. It reads
// through the owner reference, so it only has data while materialized.
type Settings struct {
	Base
	theme theme.Theme
}

// NewSettings constructs the settings page.
func NewSettings(th theme.Theme) *Settings {
	return &Settings{Base: NewBase("settings", "Settings"), theme: th}
}

func (s *Settings) Init() tea.Cmd { return nil }

func (s *Settings) Update(tea.Msg) tea.Cmd { return nil }

func (s *Settings) View() string {
	lines := []string{
		s.theme.PanelTitleStyle().Render(s.theme.Icon("settings") + " Settings"),
		"",
	}

	owner := s.Owner()
	if owner == nil {
		lines = append(lines, "detached")
		return strings.Join(lines, "\n")
	}

	bounce := "off"
	if owner.BounceEnabled() {
		bounce = "on"
	}
	lines = append(lines,
		fmt.Sprintf("Tab bar placement:  %s  (press a to cycle)", owner.Alignment()),
		fmt.Sprintf("Edge bounce:        %s  (press b to toggle)", bounce),
		fmt.Sprintf("Pages:              %d", len(owner.Screens())),
		fmt.Sprintf("Selected:           %d (%s)", owner.SelectedIndex()+1, owner.SelectedScreen().Title()),
		"",
		"Changes made here persist to the config file on exit.",
	)
	return strings.Join(lines, "\n")
}
