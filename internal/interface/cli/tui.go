package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/neilberkman/chatlens/internal/core/stats"
	"github.com/neilberkman/chatlens/internal/interface/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui <transcript>",
	Short: "Launch the interactive dashboard",
	Long:  "Launch an interactive terminal dashboard over the transcript statistics",
	Args:  cobra.ExactArgs(1),
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	messages, err := loadTranscript(args[0])
	if err != nil {
		return err
	}

	snapshot, err := stats.Aggregate(messages)
	if err != nil {
		return err
	}

	model := tui.New(args[0], messages, snapshot)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
	return nil
}
