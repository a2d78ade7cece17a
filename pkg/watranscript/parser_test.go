package watranscript

import (
	"strings"
	"testing"
	"time"
)

func TestParse_SingleLine(t *testing.T) {
	messages := Parse("12/05/2023, 9:15 - Alice: Hello there")
	if len(messages) != 1 {
		t.Fatalf("Parse() returned %d messages, want 1", len(messages))
	}

	msg := messages[0]
	if msg.Author != "Alice" {
		t.Errorf("Author = %q, want %q", msg.Author, "Alice")
	}
	if msg.Content != "Hello there" {
		t.Errorf("Content = %q, want %q", msg.Content, "Hello there")
	}
	want := time.Date(2023, time.May, 12, 9, 15, 0, 0, time.UTC)
	if !msg.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", msg.Timestamp, want)
	}
}

func TestParse_BracketFormat(t *testing.T) {
	messages := Parse("[12/05/2023, 9:15:30] Alice: Hello")
	if len(messages) != 1 {
		t.Fatalf("Parse() returned %d messages, want 1", len(messages))
	}
	if messages[0].Author != "Alice" {
		t.Errorf("Author = %q, want %q", messages[0].Author, "Alice")
	}
	// Seconds present in the export are dropped
	if got := messages[0].Timestamp.Second(); got != 0 {
		t.Errorf("Second() = %d, want 0", got)
	}
	if got := messages[0].Timestamp.Minute(); got != 15 {
		t.Errorf("Minute() = %d, want 15", got)
	}
}

func TestParse_TwelveHourClock(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantHour int
	}{
		{"pm adds twelve", "12/05/2023, 9:15 p.m. - Alice: night", 21},
		{"midnight is zero", "12/05/2023, 12:00 a.m. - Alice: late", 0},
		{"noon stays twelve", "12/05/2023, 12:00 p.m. - Alice: lunch", 12},
		{"plain am", "12/05/2023, 9:15 AM - Alice: morning", 9},
		{"24-hour untouched", "12/05/2023, 21:15 - Alice: night", 21},
		{"narrow no-break space before marker", "12/05/2023, 9:15 p.m. - Alice: night", 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages := Parse(tt.line)
			if len(messages) != 1 {
				t.Fatalf("Parse(%q) returned %d messages, want 1", tt.line, len(messages))
			}
			if got := messages[0].Timestamp.Hour(); got != tt.wantHour {
				t.Errorf("Hour() = %d, want %d", got, tt.wantHour)
			}
		})
	}
}

func TestParse_DateDisambiguation(t *testing.T) {
	tests := []struct {
		name string
		line string
		want time.Time
	}{
		{
			"iso year first",
			"2023-05-12, 09:15 - Alice: hi",
			time.Date(2023, time.May, 12, 9, 15, 0, 0, time.UTC),
		},
		{
			"day first",
			"12/05/2023, 09:15 - Alice: hi",
			time.Date(2023, time.May, 12, 9, 15, 0, 0, time.UTC),
		},
		{
			"two digit year promoted",
			"12/05/23, 09:15 - Alice: hi",
			time.Date(2023, time.May, 12, 9, 15, 0, 0, time.UTC),
		},
		{
			"dotted separator",
			"12.05.2023, 09:15 - Alice: hi",
			time.Date(2023, time.May, 12, 9, 15, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages := Parse(tt.line)
			if len(messages) != 1 {
				t.Fatalf("Parse(%q) returned %d messages, want 1", tt.line, len(messages))
			}
			if !messages[0].Timestamp.Equal(tt.want) {
				t.Errorf("Timestamp = %v, want %v", messages[0].Timestamp, tt.want)
			}
		})
	}
}

func TestParse_MultiLineMessage(t *testing.T) {
	text := strings.Join([]string{
		"12/05/2023, 9:15 - Alice: first segment",
		"second segment",
		"third segment",
	}, "\n")

	messages := Parse(text)
	if len(messages) != 1 {
		t.Fatalf("Parse() returned %d messages, want 1", len(messages))
	}

	want := "first segment\nsecond segment\nthird segment"
	if messages[0].Content != want {
		t.Errorf("Content = %q, want %q", messages[0].Content, want)
	}
}

func TestParse_ContinuationSealedByNextHeader(t *testing.T) {
	text := strings.Join([]string{
		"12/05/2023, 9:15 - Alice: hello world",
		"still alice",
		"12/05/2023, 9:16 - Bob: hi back",
	}, "\n")

	messages := Parse(text)
	if len(messages) != 2 {
		t.Fatalf("Parse() returned %d messages, want 2", len(messages))
	}
	if messages[0].Content != "hello world\nstill alice" {
		t.Errorf("first Content = %q", messages[0].Content)
	}
	if messages[1].Author != "Bob" || messages[1].Content != "hi back" {
		t.Errorf("second message = %+v", messages[1])
	}
}

func TestParse_ShortLinesDropped(t *testing.T) {
	// The length floor runs before continuation handling, so a short
	// genuine continuation line is dropped rather than appended.
	text := strings.Join([]string{
		"12/05/2023, 9:15 - Alice: hello world",
		"ok",
		"a longer continuation",
	}, "\n")

	messages := Parse(text)
	if len(messages) != 1 {
		t.Fatalf("Parse() returned %d messages, want 1", len(messages))
	}
	if strings.Contains(messages[0].Content, "ok") {
		t.Errorf("short line was appended: %q", messages[0].Content)
	}
	if !strings.Contains(messages[0].Content, "a longer continuation") {
		t.Errorf("long continuation missing: %q", messages[0].Content)
	}
}

func TestParse_SystemNoticesFiltered(t *testing.T) {
	text := strings.Join([]string{
		"12/05/2023, 9:15 - Alice: hello",
		`12/05/2023, 9:16 - Bob changed the subject from "a" to "b": ignored`,
		"12/05/2023, 9:17 - Your security code with Bob changed: ignored",
		"12/05/2023, 9:18 - Bob: real message",
	}, "\n")

	messages := Parse(text)
	if len(messages) != 2 {
		t.Fatalf("Parse() returned %d messages, want 2", len(messages))
	}
	if messages[0].Author != "Alice" || messages[1].Author != "Bob" {
		t.Errorf("authors = %q, %q", messages[0].Author, messages[1].Author)
	}
	// The filtered line must not leak into the previous message either
	if strings.Contains(messages[0].Content, "subject") {
		t.Errorf("system notice appended as continuation: %q", messages[0].Content)
	}
}

func TestParse_PreMessageNoiseDropped(t *testing.T) {
	text := strings.Join([]string{
		"Messages to this chat are now secured with end-to-end encryption.",
		"some export banner",
		"12/05/2023, 9:15 - Alice: hello",
	}, "\n")

	messages := Parse(text)
	if len(messages) != 1 {
		t.Fatalf("Parse() returned %d messages, want 1", len(messages))
	}
	if messages[0].Content != "hello" {
		t.Errorf("Content = %q, want %q", messages[0].Content, "hello")
	}
}

func TestParse_AuthorRecovery(t *testing.T) {
	messages := Parse("12/05/2023, 9:15 - p. m. - Alice: hi")
	if len(messages) != 1 {
		t.Fatalf("Parse() returned %d messages, want 1", len(messages))
	}
	if messages[0].Author != "Alice" {
		t.Errorf("Author = %q, want %q", messages[0].Author, "Alice")
	}
}

func TestParse_BidiMarksStripped(t *testing.T) {
	messages := Parse("‎12/05/2023, 9:15 - Alice: hello")
	if len(messages) != 1 {
		t.Fatalf("Parse() returned %d messages, want 1", len(messages))
	}
	if messages[0].Author != "Alice" {
		t.Errorf("Author = %q, want %q", messages[0].Author, "Alice")
	}
}

func TestParse_EmptyAndGarbageInput(t *testing.T) {
	if got := Parse(""); len(got) != 0 {
		t.Errorf("Parse(\"\") returned %d messages, want 0", len(got))
	}
	if got := Parse("no headers here\njust plain text\n"); len(got) != 0 {
		t.Errorf("Parse(garbage) returned %d messages, want 0", len(got))
	}
}

func TestParse_SourceOrderPreserved(t *testing.T) {
	// Reordered exports pass through as-is; no sorting by timestamp.
	text := strings.Join([]string{
		"12/05/2023, 10:00 - Alice: later",
		"12/05/2023, 9:00 - Bob: earlier",
	}, "\n")

	messages := Parse(text)
	if len(messages) != 2 {
		t.Fatalf("Parse() returned %d messages, want 2", len(messages))
	}
	if messages[0].Author != "Alice" || messages[1].Author != "Bob" {
		t.Errorf("order changed: %q then %q", messages[0].Author, messages[1].Author)
	}
}
