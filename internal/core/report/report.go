// Package report renders a statistics snapshot into a shareable
// markdown document.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/cbroglie/mustache"
	"github.com/dustin/go-humanize"

	"github.com/neilberkman/chatlens/internal/core/stats"
)

const reportTemplate = `# Chat Report

{{total_messages}} messages from {{participant_count}} participants, {{date_range}}.

Busiest day: **{{busiest_day}}** with {{busiest_count}} messages.

## Who talks the most

| Author | Messages | Share |
|--------|---------:|------:|
{{#authors}}
| {{name}} | {{count}} | {{share}} |
{{/authors}}

## Top words

{{#words}}
- **{{key}}** ({{count}})
{{/words}}
{{^words}}
- nothing made it past the stop-word filter
{{/words}}

## Top emoji

{{#emojis}}
- {{key}} ({{count}})
{{/emojis}}
{{^emojis}}
- no emoji in this chat
{{/emojis}}

## Activity by hour

{{#hours}}
{{label}} {{bar}} {{count}}
{{/hours}}
`

// RenderMarkdown renders the snapshot as a markdown report.
func RenderMarkdown(s *stats.Snapshot) (string, error) {
	data := map[string]interface{}{
		"total_messages":    humanize.Comma(int64(s.TotalMessages)),
		"participant_count": len(s.Participants),
		"date_range":        formatDateRange(s.FirstMessage, s.LastMessage),
		"busiest_day":       s.BusiestDay.Date,
		"busiest_count":     s.BusiestDay.Count,
		"authors":           authorRows(s),
		"words":             rankRows(s.TopWords(10)),
		"emojis":            rankRows(s.TopEmojis(10)),
		"hours":             hourRows(s),
	}

	out, err := mustache.Render(reportTemplate, data)
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return out, nil
}

func formatDateRange(first, last time.Time) string {
	const layout = "Jan 2, 2006"
	if first.Format(layout) == last.Format(layout) {
		return first.Format(layout)
	}
	return first.Format(layout) + " to " + last.Format(layout)
}

func rankRows(entries []stats.RankedEntry) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, map[string]interface{}{
			"key":   entry.Key,
			"count": entry.Count,
		})
	}
	return rows
}

func authorRows(s *stats.Snapshot) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(s.Participants))
	for _, entry := range s.AuthorRanking() {
		share := float64(entry.Count) / float64(s.TotalMessages) * 100
		rows = append(rows, map[string]interface{}{
			"name":  entry.Key,
			"count": entry.Count,
			"share": fmt.Sprintf("%.1f%%", share),
		})
	}
	return rows
}

// hourRows builds a text histogram over the 24 hour buckets. Hours with
// no traffic are skipped.
func hourRows(s *stats.Snapshot) []map[string]interface{} {
	peak := 0
	for _, n := range s.HourlyActivity {
		if n > peak {
			peak = n
		}
	}
	if peak == 0 {
		return nil
	}

	const width = 30
	rows := make([]map[string]interface{}, 0, 24)
	for hour := 0; hour < 24; hour++ {
		n := s.HourlyActivity[hour]
		if n == 0 {
			continue
		}
		bars := n * width / peak
		if bars == 0 {
			bars = 1
		}
		rows = append(rows, map[string]interface{}{
			"label": fmt.Sprintf("%02d:00", hour),
			"bar":   strings.Repeat("█", bars),
			"count": n,
		})
	}
	return rows
}
