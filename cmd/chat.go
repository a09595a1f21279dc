package cmd

import (
	"fmt"

	"finchat/internal/config"
	"finchat/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Launch the interactive chat form",
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Force TrueColor profile so styling produces ANSI codes even when
	// lipgloss would otherwise fall back to the Ascii profile
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(cfg, recordExchange)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
