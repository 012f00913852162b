package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/barhopapp/barhop/internal/tui"
)

var appCmd = &cobra.Command{
	Use:     "app",
	Aliases: []string{"ui"},
	Short:   "Start the interactive terminal application",
	Long: `Start the interactive terminal application.

The application opens on a loading screen while your stored session is
checked, then lands on either the sign-in flow or the main tabbed view.

Examples:
  barhop
  barhop app`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI(cmd.Context())
	},
}

func runUI(ctx context.Context) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	program := tea.NewProgram(
		tui.NewModel(a.session, a.client),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run application: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(appCmd)
}
