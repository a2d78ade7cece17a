package stats

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/neilberkman/chatlens/pkg/watranscript"
)

func msg(ts time.Time, author, content string) watranscript.Message {
	return watranscript.Message{Timestamp: ts, Author: author, Content: content}
}

func day(d int, hour int) time.Time {
	return time.Date(2023, time.May, d, hour, 0, 0, 0, time.UTC)
}

func TestAggregate_Empty(t *testing.T) {
	_, err := Aggregate(nil)
	if !errors.Is(err, ErrNoMessages) {
		t.Errorf("Aggregate(nil) error = %v, want ErrNoMessages", err)
	}
}

func TestAggregate_CountsAddUp(t *testing.T) {
	messages := []watranscript.Message{
		msg(day(12, 9), "Alice", "hello there friend"),
		msg(day(12, 10), "Bob", "quite right"),
		msg(day(13, 9), "Alice", "another message"),
	}

	s, err := Aggregate(messages)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	if s.TotalMessages != 3 {
		t.Errorf("TotalMessages = %d, want 3", s.TotalMessages)
	}

	authorSum := 0
	for _, n := range s.AuthorCounts {
		authorSum += n
	}
	if authorSum != s.TotalMessages {
		t.Errorf("sum(AuthorCounts) = %d, want %d", authorSum, s.TotalMessages)
	}

	volumeSum := 0
	for _, n := range s.DailyVolume {
		volumeSum += n
	}
	if volumeSum != s.TotalMessages {
		t.Errorf("sum(DailyVolume) = %d, want %d", volumeSum, s.TotalMessages)
	}

	for hour := range s.HourlyActivity {
		if hour < 0 || hour > 23 {
			t.Errorf("HourlyActivity key %d out of range", hour)
		}
	}
	for wd := range s.DailyActivity {
		if wd < 0 || wd > 6 {
			t.Errorf("DailyActivity key %d out of range", wd)
		}
	}
}

func TestAggregate_BusiestDayTieBreak(t *testing.T) {
	// May 12 and May 13 both end at two messages; May 12 reached two
	// first and must keep the title.
	messages := []watranscript.Message{
		msg(day(12, 9), "Alice", "one"),
		msg(day(12, 10), "Alice", "two"),
		msg(day(13, 9), "Alice", "three"),
		msg(day(13, 10), "Alice", "four"),
	}

	s, err := Aggregate(messages)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	if s.BusiestDay.Date != "2023-05-12" {
		t.Errorf("BusiestDay.Date = %q, want 2023-05-12", s.BusiestDay.Date)
	}
	if s.BusiestDay.Count != 2 {
		t.Errorf("BusiestDay.Count = %d, want 2", s.BusiestDay.Count)
	}

	maxVolume := 0
	for _, n := range s.DailyVolume {
		if n > maxVolume {
			maxVolume = n
		}
	}
	if s.BusiestDay.Count != maxVolume {
		t.Errorf("BusiestDay.Count = %d, max(DailyVolume) = %d", s.BusiestDay.Count, maxVolume)
	}
}

func TestAggregate_BusiestDayGreaterCountWins(t *testing.T) {
	messages := []watranscript.Message{
		msg(day(12, 9), "Alice", "one"),
		msg(day(13, 9), "Alice", "two"),
		msg(day(13, 10), "Alice", "three"),
	}

	s, err := Aggregate(messages)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if s.BusiestDay.Date != "2023-05-13" || s.BusiestDay.Count != 2 {
		t.Errorf("BusiestDay = %+v, want 2023-05-13 count 2", s.BusiestDay)
	}
}

func TestAggregate_WordsAndEmoji(t *testing.T) {
	messages := []watranscript.Message{
		msg(day(12, 9), "Alice", "😂😂 happy happy day"),
	}

	s, err := Aggregate(messages)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	if got := s.EmojiCounts["😂"]; got != 2 {
		t.Errorf("EmojiCounts[😂] = %d, want 2", got)
	}
	if got := s.WordCounts["happy"]; got != 2 {
		t.Errorf("WordCounts[happy] = %d, want 2", got)
	}
	// "day" is only three runes, filtered by the length floor
	if got := s.WordCounts["day"]; got != 0 {
		t.Errorf("WordCounts[day] = %d, want 0", got)
	}
	if got := s.AuthorWordCounts["Alice"]["happy"]; got != 2 {
		t.Errorf("AuthorWordCounts[Alice][happy] = %d, want 2", got)
	}
}

func TestAggregate_AuthorEntryWithoutWords(t *testing.T) {
	messages := []watranscript.Message{
		msg(day(12, 9), "Bob", "ok"),
	}

	s, err := Aggregate(messages)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	words, ok := s.AuthorWordCounts["Bob"]
	if !ok {
		t.Fatal("AuthorWordCounts missing entry for Bob")
	}
	if len(words) != 0 {
		t.Errorf("Bob's word map = %v, want empty", words)
	}
}

func TestAggregate_ParticipantsFirstAppearance(t *testing.T) {
	messages := []watranscript.Message{
		msg(day(12, 9), "Carol", "first speaker here"),
		msg(day(12, 10), "Alice", "second speaker here"),
		msg(day(12, 11), "Carol", "again"),
		msg(day(12, 12), "Bob", "third speaker here"),
	}

	s, err := Aggregate(messages)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	want := []string{"Carol", "Alice", "Bob"}
	if !reflect.DeepEqual(s.Participants, want) {
		t.Errorf("Participants = %v, want %v", s.Participants, want)
	}
}

func TestAggregate_DateRangePositional(t *testing.T) {
	// Out-of-order exports keep positional first/last, not min/max.
	messages := []watranscript.Message{
		msg(day(13, 9), "Alice", "later timestamp first"),
		msg(day(12, 9), "Bob", "earlier timestamp last"),
	}

	s, err := Aggregate(messages)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if !s.FirstMessage.Equal(day(13, 9)) {
		t.Errorf("FirstMessage = %v, want %v", s.FirstMessage, day(13, 9))
	}
	if !s.LastMessage.Equal(day(12, 9)) {
		t.Errorf("LastMessage = %v, want %v", s.LastMessage, day(12, 9))
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	text := strings.Join([]string{
		"12/05/2023, 9:15 - Alice: happy happy 😂 thoughts",
		"12/05/2023, 9:16 - Bob: some other words entirely",
		"13/05/2023, 11:00 - Alice: third message",
	}, "\n")

	first, err := Aggregate(watranscript.Parse(text))
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	second, err := Aggregate(watranscript.Parse(text))
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated aggregation differs:\n%+v\n%+v", first, second)
	}
}
