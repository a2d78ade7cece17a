package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	sinceFlag   string
	untilFlag   string
	versionInfo string
)

// SetVersion sets the version information from build-time ldflags
func SetVersion(version, commit, date string) {
	versionInfo = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	rootCmd.Version = versionInfo
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chatlens [transcript]",
	Short: "Chat transcript analyzer",
	Long: `chatlens - statistics and insights from exported chat transcripts

Point it at a WhatsApp-style chat export and get per-author message
counts, word and emoji frequencies, activity heatmaps, a busiest-day
ranking, and optional AI-generated conversation insights.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default to the TUI dashboard when a transcript is given
		if len(args) == 1 {
			return tuiCmd.RunE(cmd, args)
		}
		return cmd.Help()
	},
}

func init() {
	// Global flags: every command aggregates over the same filtered window
	rootCmd.PersistentFlags().StringVar(&sinceFlag, "since", "", "Only messages after this time (natural language ok, e.g. \"last month\")")
	rootCmd.PersistentFlags().StringVar(&untilFlag, "until", "", "Only messages before this time")
}
