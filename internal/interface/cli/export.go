package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/neilberkman/chatlens/internal/core/report"
	"github.com/neilberkman/chatlens/internal/core/stats"
)

var (
	exportOutput string
	exportCopy   bool
)

var exportCmd = &cobra.Command{
	Use:   "export <transcript>",
	Short: "Export a markdown report",
	Long: `Render the transcript statistics as a markdown report.

By default writes chat-report.md to the current directory.

Examples:
  chatlens export chat.txt
  chatlens export chat.txt --output ~/family-chat.md
  chatlens export chat.txt --copy`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path (default: chat-report.md in current directory)")
	exportCmd.Flags().BoolVar(&exportCopy, "copy", false, "Also copy the report to the clipboard")
}

func runExport(cmd *cobra.Command, args []string) error {
	messages, err := loadTranscript(args[0])
	if err != nil {
		return err
	}

	snapshot, err := stats.Aggregate(messages)
	if err != nil {
		return err
	}

	out, err := report.RenderMarkdown(snapshot)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	outputPath := exportOutput
	if outputPath == "" {
		outputPath = filepath.Join(cwd, "chat-report.md")
	} else if !filepath.IsAbs(outputPath) {
		outputPath = filepath.Join(cwd, outputPath)
	}

	if err := os.WriteFile(outputPath, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Printf("Report written to %s\n", outputPath)

	if exportCopy {
		if err := clipboard.WriteAll(out); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", err)
		}
	}
	return nil
}
