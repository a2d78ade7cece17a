package stats

import "sort"

// RankedEntry is one row of a count ranking.
type RankedEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// rankMap sorts a count map by count descending, key ascending on ties,
// and truncates to limit. Ties break on the key so output is stable
// across map iteration orders. limit <= 0 means no truncation.
func rankMap(m map[string]int, limit int) []RankedEntry {
	entries := make([]RankedEntry, 0, len(m))
	for k, v := range m {
		entries = append(entries, RankedEntry{Key: k, Count: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count == entries[j].Count {
			return entries[i].Key < entries[j].Key
		}
		return entries[i].Count > entries[j].Count
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// TopWords returns the most frequent countable words.
func (s *Snapshot) TopWords(limit int) []RankedEntry {
	return rankMap(s.WordCounts, limit)
}

// TopEmojis returns the most frequent emoji.
func (s *Snapshot) TopEmojis(limit int) []RankedEntry {
	return rankMap(s.EmojiCounts, limit)
}

// TopWordsFor returns the most frequent countable words for one author.
func (s *Snapshot) TopWordsFor(author string, limit int) []RankedEntry {
	return rankMap(s.AuthorWordCounts[author], limit)
}

// AuthorRanking returns authors by message count.
func (s *Snapshot) AuthorRanking() []RankedEntry {
	return rankMap(s.AuthorCounts, 0)
}
