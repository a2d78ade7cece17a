package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/neilberkman/chatlens/internal/core/config"
	"github.com/neilberkman/chatlens/internal/core/llm"
	"github.com/neilberkman/chatlens/internal/core/stats"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <transcript>",
	Short: "Generate AI insights for a transcript",
	Long: `Send a bounded sample of the conversation to an LLM and print
per-participant profiles plus question/answer highlights.

The provider is configured in ~/.config/chatlens/config.toml; by default
an OpenAI-compatible endpoint is used with the key from $OPENAI_API_KEY.

Examples:
  chatlens summarize chat.txt
  chatlens summarize chat.txt --sample 200 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

var (
	summarizeJSON   bool
	summarizeSample int
)

func init() {
	rootCmd.AddCommand(summarizeCmd)

	summarizeCmd.Flags().BoolVar(&summarizeJSON, "json", false, "Output insights as JSON")
	summarizeCmd.Flags().IntVar(&summarizeSample, "sample", 0, "Max messages to send (default from config)")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	messages, err := loadTranscript(args[0])
	if err != nil {
		return err
	}

	snapshot, err := stats.Aggregate(messages)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if summarizeSample > 0 {
		cfg.SampleSize = summarizeSample
	}

	provider, err := llm.NewProvider(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Generating insights with %s...\n", provider.Name())

	analyzer := llm.NewAnalyzer(provider, cfg.SampleSize)
	insights, err := analyzer.Generate(cmd.Context(), messages, snapshot.Participants)
	if err != nil {
		return err
	}

	if summarizeJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(insights)
	}

	fmt.Println("Participants")
	fmt.Println("============")
	for _, p := range insights.Participants {
		fmt.Printf("\n%s\n  %s\n", p.Name, p.Description)
	}

	fmt.Println("\nHighlights")
	fmt.Println("==========")
	for _, h := range insights.Highlights {
		fmt.Printf("\nQ: %s\nA: %s\n", h.Question, h.Answer)
	}

	return nil
}
