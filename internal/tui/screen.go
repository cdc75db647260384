package tui

import (
	"github.com/Digital-Shane/tab-pager/internal/pager"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen is a container page that also participates in the Bubble Tea loop.
// Init runs once, the first time the container materializes the screen.
// Update and View are only invoked while the screen is materialized.
type Screen interface {
	pager.Screen

	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
}
