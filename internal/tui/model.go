package tui

import (
	"fmt"

	"github.com/Digital-Shane/tab-pager/internal/pager"
	"github.com/Digital-Shane/tab-pager/internal/tui/theme"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// keyMap binds the container-level controls. Anything not matched here is
// routed to the selected screen.
type keyMap struct {
	Quit       key.Binding
	SwipeLeft  key.Binding
	SwipeRight key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Align      key.Binding
	Bounce     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		SwipeLeft:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "swipe left")),
		SwipeRight: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "swipe right")),
		NextTab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous tab")),
		Align:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "move tab bar")),
		Bounce:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "toggle bounce")),
	}
}

// Model hosts a pager.Container inside the Bubble Tea loop. It owns the
// terminal-facing collaborators (tab bar, scroll pane), translates key and
// mouse input into selection changes, and routes the remaining messages to
// the materialized screens.
type Model struct {
	theme     theme.Theme
	bar       *Bar
	pane      *ScrollPane
	container *pager.Container
	screens   []Screen
	keys      keyMap

	width  int
	height int

	initialized map[string]bool
	status      string
	quitting    bool
}

// ModelOption configures a Model during construction.
type ModelOption func(*modelConfig)

type modelConfig struct {
	theme     theme.Theme
	alignment pager.Alignment
	bounce    bool
	initial   int
}

// WithTheme overrides the default theme.
func WithTheme(th theme.Theme) ModelOption {
	return func(c *modelConfig) { c.theme = th }
}

// WithAlignment places the tab bar on startup.
func WithAlignment(a pager.Alignment) ModelOption {
	return func(c *modelConfig) { c.alignment = a }
}

// WithBounce enables edge overshoot on startup.
func WithBounce(enabled bool) ModelOption {
	return func(c *modelConfig) { c.bounce = enabled }
}

// WithInitialIndex selects the page shown first.
func WithInitialIndex(i int) ModelOption {
	return func(c *modelConfig) { c.initial = i }
}

// NewModel wires the container to a themed bar and scroll pane.
func NewModel(screens []Screen, opts ...ModelOption) *Model {
	cfg := modelConfig{theme: theme.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	pages := make([]pager.Screen, len(screens))
	for i, s := range screens {
		pages[i] = s
	}

	bar := NewBar(cfg.theme)
	pane := NewScrollPane()
	container := pager.New(pane, bar, pages,
		pager.WithInitialIndex(cfg.initial),
		pager.WithAlignment(cfg.alignment),
	)
	container.SetBounceEnabled(cfg.bounce)

	m := &Model{
		theme:       cfg.theme,
		bar:         bar,
		pane:        pane,
		container:   container,
		screens:     screens,
		keys:        defaultKeyMap(),
		width:       80,
		height:      24,
		initialized: make(map[string]bool),
	}
	m.layout()
	return m
}

// Container exposes the hosted container, primarily for screens and tests.
func (m *Model) Container() *pager.Container { return m.container }

// Init starts the materialized screens.
func (m *Model) Init() tea.Cmd {
	return m.startAttached()
}

// startAttached returns the Init commands of materialized screens that have
// not started yet. It must run after every operation that can attach screens.
func (m *Model) startAttached() tea.Cmd {
	var cmds []tea.Cmd
	for _, s := range m.container.AttachedScreens() {
		if m.initialized[s.ID()] {
			continue
		}
		m.initialized[s.ID()] = true
		if cmd := s.(Screen).Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// layout hands the container the rows between the header and the status bar.
func (m *Model) layout() {
	content := m.height - 2
	if content < 0 {
		content = 0
	}
	m.container.Layout(pager.Rect{X: 0, Y: 1, Width: m.width, Height: content})
}

// Update processes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, m.forward(msg)
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.SwipeRight):
		m.pane.Swipe(1)
		return m, m.startAttached()
	case key.Matches(msg, m.keys.SwipeLeft):
		m.pane.Swipe(-1)
		return m, m.startAttached()
	case key.Matches(msg, m.keys.NextTab):
		m.selectStep(1)
		return m, m.startAttached()
	case key.Matches(msg, m.keys.PrevTab):
		m.selectStep(-1)
		return m, m.startAttached()
	case key.Matches(msg, m.keys.Align):
		m.cycleAlignment()
		return m, nil
	case key.Matches(msg, m.keys.Bounce):
		m.container.SetBounceEnabled(!m.container.BounceEnabled())
		return m, nil
	}
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		m.container.Select(int(s[0] - '1'))
		return m, m.startAttached()
	}
	if s := m.selectedScreen(); s != nil {
		return m, s.Update(msg)
	}
	return m, nil
}

func (m *Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	frame := m.bar.Frame()
	if m.bar.Visible() && frame.Contains(pager.Point{X: msg.X, Y: msg.Y}) {
		m.bar.ActivateAt(msg.X - frame.X)
		return m, m.startAttached()
	}
	return m, nil
}

// selectStep moves the selection by delta, stopping at the edges.
func (m *Model) selectStep(delta int) {
	m.container.Select(m.container.SelectedIndex() + delta)
}

func (m *Model) cycleAlignment() {
	switch m.container.Alignment() {
	case pager.AlignTop:
		m.container.SetAlignment(pager.AlignBottom)
	case pager.AlignBottom:
		m.container.SetAlignment(pager.AlignHidden)
	default:
		m.container.SetAlignment(pager.AlignTop)
	}
}

// forward hands a message to every materialized screen, so background work
// keeps flowing for neighbor pages the user has not switched to yet.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, s := range m.container.AttachedScreens() {
		if cmd := s.(Screen).Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) selectedScreen() Screen {
	s := m.container.SelectedScreen()
	if s == nil {
		return nil
	}
	return s.(Screen)
}

// View renders header, tab bar, the selected page, and the status bar in the
// order the current alignment dictates.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	header := m.theme.HeaderStyle().Width(m.width).Render("Tab Pager")

	page := ""
	if s := m.selectedScreen(); s != nil {
		view := m.pane.Frame()
		page = lipgloss.NewStyle().
			Width(view.Width).
			Height(view.Height).
			MaxWidth(view.Width).
			MaxHeight(view.Height).
			Render(s.View())
	}

	sections := []string{header}
	switch {
	case !m.bar.Visible():
		sections = append(sections, page)
	case m.container.Alignment() == pager.AlignBottom:
		sections = append(sections, page, m.bar.Render())
	default:
		sections = append(sections, m.bar.Render(), page)
	}
	sections = append(sections, m.statusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) statusBar() string {
	text := m.status
	if text == "" {
		bounce := "off"
		if m.container.BounceEnabled() {
			bounce = "on"
		}
		text = fmt.Sprintf("Page %d/%d • align %s • bounce %s • ←/→ swipe • tab select • a align • b bounce • q quit",
			m.container.SelectedIndex()+1, len(m.container.Screens()),
			m.container.Alignment(), bounce)
	}
	return m.theme.StatusBarStyle().Width(m.width).Render(text)
}

// SetStatus overrides the status bar text. Screens use it to surface errors.
func (m *Model) SetStatus(text string) { m.status = text }
