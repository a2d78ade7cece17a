package stats

import (
	"errors"
	"time"

	"github.com/neilberkman/chatlens/pkg/watranscript"
)

// ErrNoMessages indicates Aggregate was called on an empty sequence.
// Callers are expected to surface the parser's empty-result error first;
// hitting this is a programming error, not user input.
var ErrNoMessages = errors.New("stats: no messages to aggregate")

// BusiestDay is the calendar date with the highest single-day volume.
type BusiestDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Snapshot holds the aggregate statistics for one finalized message
// sequence. A snapshot is computed once and never mutated; a new upload
// produces a brand-new snapshot.
type Snapshot struct {
	TotalMessages    int                       `json:"totalMessages"`
	AuthorCounts     map[string]int            `json:"authorCounts"`
	WordCounts       map[string]int            `json:"wordCounts"`
	AuthorWordCounts map[string]map[string]int `json:"authorWordCounts"`
	EmojiCounts      map[string]int            `json:"emojiCounts"`
	HourlyActivity   map[int]int               `json:"hourlyActivity"`   // hour of day, 0-23
	DailyActivity    map[time.Weekday]int      `json:"dailyActivity"`    // Sunday = 0
	DailyVolume      map[string]int            `json:"dailyVolume"`      // YYYY-MM-DD
	BusiestDay       BusiestDay                `json:"busiestDay"`
	Participants     []string                  `json:"participants"` // first-appearance order
	FirstMessage     time.Time                 `json:"firstMessage"`
	LastMessage      time.Time                 `json:"lastMessage"`
}

// Aggregate computes a snapshot from a parsed message sequence in a
// single pass. The sequence must be non-empty.
//
// The busiest-day tracker only moves on a strictly greater count, so the
// first date to reach a given peak keeps it; a later date matching that
// peak does not displace it.
func Aggregate(messages []watranscript.Message) (*Snapshot, error) {
	if len(messages) == 0 {
		return nil, ErrNoMessages
	}

	s := &Snapshot{
		AuthorCounts:     make(map[string]int),
		WordCounts:       make(map[string]int),
		AuthorWordCounts: make(map[string]map[string]int),
		EmojiCounts:      make(map[string]int),
		HourlyActivity:   make(map[int]int),
		DailyActivity:    make(map[time.Weekday]int),
		DailyVolume:      make(map[string]int),
	}

	for _, msg := range messages {
		s.TotalMessages++
		s.AuthorCounts[msg.Author]++
		s.HourlyActivity[msg.Timestamp.Hour()]++
		s.DailyActivity[msg.Timestamp.Weekday()]++

		day := msg.Timestamp.UTC().Format("2006-01-02")
		s.DailyVolume[day]++
		if s.DailyVolume[day] > s.BusiestDay.Count {
			s.BusiestDay = BusiestDay{Date: day, Count: s.DailyVolume[day]}
		}

		// Every author gets a word map, even when this message has no
		// qualifying words. First insertion fixes participant order.
		words, ok := s.AuthorWordCounts[msg.Author]
		if !ok {
			words = make(map[string]int)
			s.AuthorWordCounts[msg.Author] = words
			s.Participants = append(s.Participants, msg.Author)
		}

		for _, emoji := range emojiGraphemes(msg.Content) {
			s.EmojiCounts[emoji]++
		}

		for _, token := range Tokenize(msg.Content) {
			s.WordCounts[token]++
			words[token]++
		}
	}

	// Positional, not min/max: malformed exports may be out of order and
	// are passed through as-is.
	s.FirstMessage = messages[0].Timestamp
	s.LastMessage = messages[len(messages)-1].Timestamp

	return s, nil
}
