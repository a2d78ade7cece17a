package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/neilberkman/chatlens/internal/core/stats"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("chatlens — "+m.path) + "\n")
	b.WriteString(m.renderTabs() + "\n\n")

	switch m.active {
	case overviewTab:
		b.WriteString(m.viewOverview())
	case authorsTab:
		b.WriteString(m.viewAuthors())
	case wordsTab:
		b.WriteString(m.viewRanking("Top words", m.snapshot.TopWords(15)))
	case emojiTab:
		b.WriteString(m.viewRanking("Top emoji", m.snapshot.TopEmojis(15)))
	case activityTab:
		b.WriteString(m.viewActivity())
	case messagesTab:
		if m.ready {
			b.WriteString(m.viewport.View())
		}
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}
	b.WriteString(helpStyle.Render("tab/←→ switch · c copy report · q quit"))
	return b.String()
}

func (m Model) renderTabs() string {
	parts := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if tab(i) == m.active {
			parts = append(parts, activeTabStyle.Render(name))
		} else {
			parts = append(parts, tabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) viewOverview() string {
	s := m.snapshot
	row := func(label, value string) string {
		return fmt.Sprintf("%s %s\n", labelStyle.Render(fmt.Sprintf("%-16s", label)), valueStyle.Render(value))
	}

	var b strings.Builder
	b.WriteString(row("Messages", humanize.Comma(int64(s.TotalMessages))))
	b.WriteString(row("Participants", fmt.Sprintf("%d", len(s.Participants))))
	b.WriteString(row("First message", s.FirstMessage.Format("Jan 2, 2006 3:04 PM")))
	b.WriteString(row("Last message", s.LastMessage.Format("Jan 2, 2006 3:04 PM")))
	b.WriteString(row("Busiest day", fmt.Sprintf("%s (%d messages)", s.BusiestDay.Date, s.BusiestDay.Count)))
	b.WriteString(row("Distinct words", fmt.Sprintf("%d", len(s.WordCounts))))
	b.WriteString(row("Distinct emoji", fmt.Sprintf("%d", len(s.EmojiCounts))))
	return b.String()
}

func (m Model) viewAuthors() string {
	var b strings.Builder
	for _, entry := range m.snapshot.AuthorRanking() {
		share := float64(entry.Count) / float64(m.snapshot.TotalMessages) * 100
		b.WriteString(fmt.Sprintf("%s %6d  %s\n",
			authorStyle.Render(fmt.Sprintf("%-20s", entry.Key)),
			entry.Count,
			barStyle.Render(bar(share, 100, 30))))
	}
	return b.String()
}

func (m Model) viewRanking(title string, entries []stats.RankedEntry) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render(title) + "\n\n")
	if len(entries) == 0 {
		b.WriteString("nothing to show\n")
		return b.String()
	}
	peak := entries[0].Count
	for _, entry := range entries {
		b.WriteString(fmt.Sprintf("%-14s %6d  %s\n",
			entry.Key, entry.Count,
			barStyle.Render(bar(float64(entry.Count), float64(peak), 30))))
	}
	return b.String()
}

func (m Model) viewActivity() string {
	var b strings.Builder

	peak := 0
	for _, n := range m.snapshot.HourlyActivity {
		if n > peak {
			peak = n
		}
	}

	b.WriteString(labelStyle.Render("By hour of day") + "\n\n")
	for hour := 0; hour < 24; hour++ {
		n := m.snapshot.HourlyActivity[hour]
		b.WriteString(fmt.Sprintf("%02d:00 %5d  %s\n", hour, n,
			barStyle.Render(bar(float64(n), float64(peak), 30))))
	}

	b.WriteString("\n" + labelStyle.Render("By weekday") + "\n\n")
	weekPeak := 0
	for _, n := range m.snapshot.DailyActivity {
		if n > weekPeak {
			weekPeak = n
		}
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		n := m.snapshot.DailyActivity[wd]
		b.WriteString(fmt.Sprintf("%-9s %5d  %s\n", wd.String(), n,
			barStyle.Render(bar(float64(n), float64(weekPeak), 30))))
	}
	return b.String()
}

// bar renders value/peak as a fixed-width block bar.
func bar(value, peak float64, width int) string {
	if peak <= 0 || value <= 0 {
		return ""
	}
	n := int(value / peak * float64(width))
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}
