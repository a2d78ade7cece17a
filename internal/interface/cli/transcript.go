package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/neilberkman/chatlens/pkg/watranscript"
)

// loadTranscript reads and parses a transcript file, applying the global
// --since/--until window before anything aggregates over it.
func loadTranscript(path string) ([]watranscript.Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}

	messages := watranscript.Parse(string(data))
	if len(messages) == 0 {
		return nil, watranscript.ErrNoMessages
	}

	messages, err = filterTimeRange(messages, sinceFlag, untilFlag)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, fmt.Errorf("no messages in the selected time range")
	}
	return messages, nil
}

func filterTimeRange(messages []watranscript.Message, since, until string) ([]watranscript.Message, error) {
	if since == "" && until == "" {
		return messages, nil
	}

	var sinceTime, untilTime time.Time
	if since != "" {
		t := parseDate(since)
		if t == nil {
			return nil, fmt.Errorf("could not parse --since value %q", since)
		}
		sinceTime = *t
	}
	if until != "" {
		t := parseDate(until)
		if t == nil {
			return nil, fmt.Errorf("could not parse --until value %q", until)
		}
		untilTime = *t
	}

	filtered := make([]watranscript.Message, 0, len(messages))
	for _, msg := range messages {
		if !sinceTime.IsZero() && msg.Timestamp.Before(sinceTime) {
			continue
		}
		if !untilTime.IsZero() && msg.Timestamp.After(untilTime) {
			continue
		}
		filtered = append(filtered, msg)
	}
	return filtered, nil
}

// parseDate attempts to parse a date string using natural language parsing
func parseDate(dateStr string) *time.Time {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	// Try natural language parsing first
	result, err := w.Parse(dateStr, time.Now())
	if err == nil && result != nil {
		return &result.Time
	}

	// Try standard formats
	formats := []string{
		"2006-01-02",
		"2006-01-02T15:04:05",
		time.RFC3339,
		"2006/01/02",
		"01/02/2006",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return &t
		}
	}

	return nil
}
