package screens

import (
	"fmt"
	"strings"
	"time"

	"github.com/Digital-Shane/tab-pager/internal/tui/theme"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const feedBatches = 5

// FetchBatch produces one batch of feed entries. The default implementation
// simulates a slow source; tests swap it for an instant one.
type FetchBatch func(batch int) tea.Cmd

// Feed loads its entries in batches through background commands, rendering a
// progress bar until the last batch lands in the store. Loading starts the
// first time the page is materialized, which with neighbor preparation means
// before the user ever switches to it.
type Feed struct {
	Base
	theme theme.Theme
	store *Store
	fetch FetchBatch

	progress progress.Model
	fetched  int
	done     bool
}

type feedBatchMsg struct {
	batch   int
	entries []string
}

// NewFeed constructs the feed page backed by the given content store.
func NewFeed(th theme.Theme, store *Store) *Feed {
	gradient := th.ProgressGradient()
	p := progress.New(progress.WithGradient(gradient[0], gradient[1]))
	p.Width = 40
	f := &Feed{Base: NewBase("feed", "Feed"), theme: th, store: store, progress: p}
	f.fetch = f.simulateBatch
	return f
}

// simulateBatch pretends to talk to a slow remote source.
func (f *Feed) simulateBatch(batch int) tea.Cmd {
	return func() tea.Msg {
		time.Sleep(150 * time.Millisecond)
		entries := make([]string, 3)
		for i := range entries {
			entries[i] = fmt.Sprintf("Entry %02d fetched at %s",
				batch*len(entries)+i+1, time.Now().Format("15:04:05"))
		}
		return feedBatchMsg{batch: batch, entries: entries}
	}
}

func (f *Feed) Init() tea.Cmd {
	if f.done {
		return nil
	}
	return f.fetch(0)
}

func (f *Feed) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case feedBatchMsg:
		existing, _ := f.store.Get(f.ID())
		f.store.Put(f.ID(), append(existing, msg.entries...))
		f.fetched = msg.batch + 1
		cmd := f.progress.SetPercent(float64(f.fetched) / feedBatches)
		if f.fetched >= feedBatches {
			f.done = true
			return cmd
		}
		return tea.Batch(cmd, f.fetch(f.fetched))
	case progress.FrameMsg:
		model, cmd := f.progress.Update(msg)
		f.progress = model.(progress.Model)
		return cmd
	}
	return nil
}

func (f *Feed) View() string {
	title := f.theme.PanelTitleStyle().Render(f.theme.Icon("feed") + " Feed")

	if !f.done {
		loading := fmt.Sprintf("%s Fetching entries (%d/%d batches)",
			f.theme.Icon("loading"), f.fetched, feedBatches)
		return lipgloss.JoinVertical(lipgloss.Left, title, "", loading, f.progress.View())
	}

	entries, _ := f.store.Get(f.ID())
	body := strings.Join(entries, "\n")
	return lipgloss.JoinVertical(lipgloss.Left, title, "", body)
}

// Done reports whether every batch has loaded.
func (f *Feed) Done() bool { return f.done }
