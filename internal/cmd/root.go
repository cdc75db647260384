package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Digital-Shane/tab-pager/internal/config"
	"github.com/Digital-Shane/tab-pager/internal/pager"
	"github.com/Digital-Shane/tab-pager/internal/tui"
	"github.com/Digital-Shane/tab-pager/internal/tui/screens"
	"github.com/Digital-Shane/tab-pager/internal/tui/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tab-pager",
	Short: "A paged tab container for the terminal",
	Long: `tab-pager hosts a set of pages behind a tab bar and a swipeable paging
surface. Only the selected page and its immediate neighbors are kept live;
everything else is torn down until it comes back into reach.

Switch pages by swiping (arrow keys), stepping the selection (tab), jumping
directly (digits), or clicking the tab bar. The bar can sit above or below
the pages, or be hidden entirely.`,
	RunE: runPager,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var (
	alignFlag  string
	bounceFlag bool
	pageFlag   int
	asciiFlag  bool
	noMouse    bool
)

func init() {
	rootCmd.Flags().StringVar(&alignFlag, "align", "", "Tab bar placement: top, bottom, or hidden")
	rootCmd.Flags().BoolVar(&bounceFlag, "bounce", false, "Allow panning past the first and last page")
	rootCmd.Flags().IntVar(&pageFlag, "page", 0, "Page shown on startup, starting at 1")
	rootCmd.Flags().BoolVar(&asciiFlag, "ascii", false, "Force the ASCII icon set")
	rootCmd.Flags().BoolVar(&noMouse, "no-mouse", false, "Disable tab bar click handling")
}

func runPager(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("align") {
		if err := validAlignment(alignFlag); err != nil {
			return err
		}
		cfg.TabAlignment = alignFlag
	}
	if cmd.Flags().Changed("bounce") {
		cfg.Bounce = bounceFlag
	}
	if cmd.Flags().Changed("page") {
		cfg.InitialPage = pageFlag - 1
	}
	if cmd.Flags().Changed("ascii") {
		cfg.AsciiIcons = asciiFlag
	}
	if noMouse {
		cfg.MouseEnabled = false
	}

	var themeOpts []theme.Option
	if cfg.AsciiIcons {
		themeOpts = append(themeOpts, theme.WithIconSet(theme.ASCIIIconSet()))
	}
	th := theme.New(themeOpts...)

	model := tui.NewModel(demoScreens(th),
		tui.WithTheme(th),
		tui.WithAlignment(pager.ParseAlignment(cfg.TabAlignment)),
		tui.WithBounce(cfg.Bounce),
		tui.WithInitialIndex(cfg.InitialPage),
	)

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.MouseEnabled {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}

	final, err := tea.NewProgram(model, progOpts...).Run()
	if err != nil {
		return fmt.Errorf("run pager: %w", err)
	}

	// Persist where the user left off.
	if m, ok := final.(*tui.Model); ok {
		c := m.Container()
		cfg.TabAlignment = c.Alignment().String()
		cfg.Bounce = c.BounceEnabled()
		cfg.InitialPage = c.SelectedIndex()
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
	}
	return nil
}

// demoScreens builds the page set shipped with the binary.
func demoScreens(th theme.Theme) []tui.Screen {
	store := screens.NewStore()
	return []tui.Screen{
		screens.NewOverview(th),
		screens.NewReader(th, sampleDocument()),
		screens.NewFeed(th, store),
		screens.NewNotes(th),
		screens.NewSettings(th),
	}
}

func validAlignment(s string) error {
	switch s {
	case "top", "bottom", "hidden":
		return nil
	}
	return fmt.Errorf("invalid alignment %q (must be top, bottom, or hidden)", s)
}

func sampleDocument() string {
	paragraphs := []string{
		"The reader page holds more text than fits on screen. Scroll it with",
		"j/k or the arrow keys while the page is selected; your position is",
		"kept when you page away and come back.",
		"",
		"Pages are cheap to declare but not free to run, so only the selected",
		"page and its neighbors stay live. Swipe toward a page and it is",
		"prepared just before it slides into view.",
		"",
		"The tab bar mirrors the page set: one button per page, an indicator",
		"under the current one. Click a button to jump, or hide the bar",
		"entirely and navigate by keyboard alone.",
	}
	// Pad the document so the viewport actually has something to scroll.
	doc := strings.Join(paragraphs, "\n")
	return strings.Repeat(doc+"\n\n", 4)
}
