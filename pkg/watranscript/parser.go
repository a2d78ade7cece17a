package watranscript

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Message represents one logical chat entry
type Message struct {
	Timestamp time.Time `json:"timestamp"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
}

// ErrNoMessages is returned by callers when Parse produced nothing for a
// non-empty input. Parse itself never fails; an export that matches no
// header pattern simply yields an empty slice.
var ErrNoMessages = errors.New("no valid messages found in transcript")

// minHeaderLen is the shortest line that could possibly carry a message
// header. The floor is applied before any other classification, so
// continuation lines under five bytes are dropped as well (see Parse).
const minHeaderLen = 5

// headerRe matches both export conventions:
//
//	[12/05/2023, 9:15:30] Alice: message text
//	12/05/2023, 9:15 - Alice: message text
//
// Groups: date token, time span, author, content after the first ": ".
var headerRe = regexp.MustCompile(`^\[?(\d{1,4}[-/.]\d{1,4}[-/.]\d{1,4}),?\s+([^\]]+?)(?:\]|\s-)\s*([^:]+):\s(.*)$`)

// timeRe extracts the first H:MM pair from a time span. Seconds are
// matched but dropped; messages carry minute resolution only.
var timeRe = regexp.MustCompile(`(\d{1,2}):(\d{2})(?::\d{2})?`)

// dateSepRe splits a date token on any of the supported separators.
var dateSepRe = regexp.MustCompile(`[-/.]`)

// ampmLeakRe detects a locale AM/PM fragment that leaked into the author
// capture, e.g. "p. m. - Alice". When it matches, everything up to the
// last dash belongs to the time span, not the author.
var ampmLeakRe = regexp.MustCompile(`(?i)[apb]\.?\s?m?\.?\s*-`)

// sanitizer strips bidirectional control marks and normalizes the
// narrow/no-break space code points some locales put between digits and
// AM/PM markers. Those otherwise break header matching.
var sanitizer = strings.NewReplacer(
	"‎", "", // left-to-right mark
	"‏", "", // right-to-left mark
	"‪", "", "‫", "", "‬", "", "‭", "", "‮", "",
	"⁦", "", "⁧", "", "⁨", "", "⁩", "",
	" ", " ", // narrow no-break space
	" ", " ", // no-break space
)

// systemNotices are author-field phrases that mark WhatsApp system
// messages rather than real messages. Lines matching one of these are
// discarded entirely and never appended to the previous message.
var systemNotices = []string{
	"changed the subject",
	"changed this group's icon",
	"security code",
	"cambió el asunto",
	"código de seguridad",
	"messages and calls are end-to-end encrypted",
}

// Parse converts an exported chat transcript into an ordered message
// sequence. It never fails: lines that match no header pattern are
// appended to the currently open message when one exists, and silently
// dropped otherwise. Messages come out in source order, which is not
// necessarily timestamp order for malformed exports.
//
// Known quirk, kept for compatibility with existing exports: the
// five-byte line floor is applied before checking whether a message is
// open, so very short continuation lines ("ok", "si") are dropped
// instead of appended.
func Parse(text string) []Message {
	messages := make([]Message, 0)
	open := -1 // index of the message still accepting continuations

	for _, raw := range strings.Split(text, "\n") {
		if len(raw) < minHeaderLen {
			continue
		}
		line := strings.TrimSpace(sanitizer.Replace(raw))

		m := headerRe.FindStringSubmatch(line)
		if m == nil {
			if open >= 0 {
				messages[open].Content += "\n" + line
			}
			continue
		}

		author := recoverAuthor(strings.TrimSpace(m[3]))
		if isSystemNotice(author) {
			continue
		}

		messages = append(messages, Message{
			Timestamp: parseTimestamp(m[1], m[2]),
			Author:    author,
			Content:   strings.TrimSpace(m[4]),
		})
		open = len(messages) - 1
	}

	return messages
}

// recoverAuthor repairs author captures polluted by locale time
// separators. When a stray AM/PM fragment followed by a dash is present,
// only the segment after the last dash is the real display name.
func recoverAuthor(author string) string {
	if !ampmLeakRe.MatchString(author) {
		return author
	}
	if i := strings.LastIndex(author, "-"); i >= 0 {
		return strings.TrimSpace(author[i+1:])
	}
	return author
}

func isSystemNotice(author string) bool {
	lower := strings.ToLower(author)
	for _, phrase := range systemNotices {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// parseTimestamp combines a date token and a time span into a UTC
// timestamp. Exports carry no zone information, so UTC keeps the result
// deterministic.
func parseTimestamp(dateToken, timeSpan string) time.Time {
	year, month, day := parseDate(dateToken)
	hour, minute := parseClock(timeSpan)
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
}

// parseDate disambiguates the two digit-group orders seen in exports. A
// first group over 31 can only be a year (ISO-style year-month-day);
// anything else is read day-month-year. Two-digit years are promoted to
// the 2000s.
func parseDate(token string) (year, month, day int) {
	parts := dateSepRe.Split(token, -1)
	if len(parts) != 3 {
		return 1970, 1, 1
	}

	a, _ := strconv.Atoi(parts[0])
	b, _ := strconv.Atoi(parts[1])
	c, _ := strconv.Atoi(parts[2])

	if a > 31 {
		year, month, day = a, b, c
	} else {
		day, month, year = a, b, c
	}
	if year < 100 {
		year += 2000
	}
	return year, month, day
}

// parseClock normalizes the time span to 24-hour hour/minute. With no
// AM/PM indicator the hour is taken as 24-hour already. The indicator is
// whatever letters remain once digits and colons are removed: a p-like
// marker means PM, an a- or b-like marker means AM ("a. m.", "p. m.",
// Hebrew morning markers).
func parseClock(span string) (hour, minute int) {
	m := timeRe.FindStringSubmatch(span)
	if m == nil {
		return 0, 0
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])

	marker := strings.ToLower(strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ':' {
			return -1
		}
		return r
	}, span))

	switch {
	case strings.ContainsAny(marker, "p"):
		if hour < 12 {
			hour += 12
		}
	case strings.ContainsAny(marker, "ab"):
		if hour == 12 {
			hour = 0
		}
	}
	return hour, minute
}
