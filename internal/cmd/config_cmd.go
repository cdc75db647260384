package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/Digital-Shane/tab-pager/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update saved pager preferences",
	Long: `Without flags, config prints the saved preferences and where they live.
With flags, it updates the named settings and writes the file back.`,
	RunE: runConfig,
}

var (
	setAlign  string
	setBounce bool
	setPage   int
	setAscii  bool
	setMouse  bool
)

func init() {
	configCmd.Flags().StringVar(&setAlign, "align", "", "Set tab bar placement: top, bottom, or hidden")
	configCmd.Flags().BoolVar(&setBounce, "bounce", false, "Set whether panning past the edges is allowed")
	configCmd.Flags().IntVar(&setPage, "page", 0, "Set the startup page, starting at 1")
	configCmd.Flags().BoolVar(&setAscii, "ascii", false, "Set whether the ASCII icon set is forced")
	configCmd.Flags().BoolVar(&setMouse, "mouse", true, "Set whether tab bar clicks are handled")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	changed := false
	if cmd.Flags().Changed("align") {
		if err := validAlignment(setAlign); err != nil {
			return err
		}
		cfg.TabAlignment = setAlign
		changed = true
	}
	if cmd.Flags().Changed("bounce") {
		cfg.Bounce = setBounce
		changed = true
	}
	if cmd.Flags().Changed("page") {
		if setPage < 1 {
			return fmt.Errorf("invalid page %d (pages start at 1)", setPage)
		}
		cfg.InitialPage = setPage - 1
		changed = true
	}
	if cmd.Flags().Changed("ascii") {
		cfg.AsciiIcons = setAscii
		changed = true
	}
	if cmd.Flags().Changed("mouse") {
		cfg.MouseEnabled = setMouse
		changed = true
	}

	if changed {
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
	}

	path, err := config.ConfigPath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", path, data)
	return nil
}
