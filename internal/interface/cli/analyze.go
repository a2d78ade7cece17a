package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/neilberkman/chatlens/internal/core/stats"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <transcript>",
	Short: "Compute transcript statistics",
	Long: `Parse a chat export and print its aggregate statistics.

Examples:
  chatlens analyze chat.txt
  chatlens analyze chat.txt --json
  chatlens analyze chat.txt --top 20
  chatlens analyze chat.txt --since "last month"`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeJSON bool
	analyzeTop  int
	analyzeCopy bool
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output the full snapshot as JSON")
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", 10, "How many words/emoji to show in rankings")
	analyzeCmd.Flags().BoolVar(&analyzeCopy, "copy", false, "Copy the text output to the clipboard")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	messages, err := loadTranscript(args[0])
	if err != nil {
		return err
	}

	snapshot, err := stats.Aggregate(messages)
	if err != nil {
		return err
	}

	if analyzeJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(snapshot)
	}

	out := formatSnapshot(snapshot, analyzeTop)
	fmt.Print(out)

	if analyzeCopy {
		if err := clipboard.WriteAll(out); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", err)
		}
	}
	return nil
}

func formatSnapshot(s *stats.Snapshot, top int) string {
	out := "Transcript Statistics\n"
	out += "=====================\n\n"

	out += fmt.Sprintf("Total Messages:  %s\n", humanize.Comma(int64(s.TotalMessages)))
	out += fmt.Sprintf("Participants:    %d\n", len(s.Participants))
	out += fmt.Sprintf("First Message:   %s\n", s.FirstMessage.Format("Jan 2, 2006 3:04 PM"))
	out += fmt.Sprintf("Last Message:    %s\n", s.LastMessage.Format("Jan 2, 2006 3:04 PM"))
	out += fmt.Sprintf("Busiest Day:     %s (%d messages)\n\n", s.BusiestDay.Date, s.BusiestDay.Count)

	out += "Messages by author:\n"
	for _, entry := range s.AuthorRanking() {
		share := float64(entry.Count) / float64(s.TotalMessages) * 100
		out += fmt.Sprintf("  %-20s %6s  (%.1f%%)\n", entry.Key, humanize.Comma(int64(entry.Count)), share)
	}

	if words := s.TopWords(top); len(words) > 0 {
		out += "\nTop words:\n"
		for _, entry := range words {
			out += fmt.Sprintf("  %-20s %6d\n", entry.Key, entry.Count)
		}
	}

	if emojis := s.TopEmojis(top); len(emojis) > 0 {
		out += "\nTop emoji:\n"
		for _, entry := range emojis {
			out += fmt.Sprintf("  %-4s %6d\n", entry.Key, entry.Count)
		}
	}

	return out
}
