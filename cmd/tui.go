package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-palette/internal/tui/palette"
	"github.com/mattsolo1/grove-palette/pkg/canvas"
	"github.com/mattsolo1/grove-palette/pkg/service"
)

// NewTuiCmd creates the `pal tui` command.
func NewTuiCmd(svc **service.Service) *cobra.Command {
	var printFlow bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive action sidebar",
		Long: `Launch the action sidebar in the terminal. Browse tabs, search the local
actions, the connector library and the templates, star favorites and drop
actions onto the flow.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Check for TTY
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return fmt.Errorf("TUI mode requires an interactive terminal")
			}

			s := *svc
			flow := canvas.New()
			model := palette.New(s, flow)
			p := tea.NewProgram(model, tea.WithAltScreen())

			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}

			if printFlow {
				return outputJSON(cmd.OutOrStdout(), flow.Nodes())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&printFlow, "print-flow", false, "Print the dropped nodes as JSON on exit")

	return cmd
}
