package stats

import (
	"github.com/forPelevin/gomoji"
	"github.com/rivo/uniseg"
)

// emojiGraphemes returns every emoji-presentation grapheme cluster in s,
// one entry per occurrence. Iterating clusters rather than runes keeps
// ZWJ sequences, skin tones and flags together as single emoji.
func emojiGraphemes(s string) []string {
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		if len(cluster) < 2 {
			// Single-byte clusters are plain ASCII, never emoji.
			continue
		}
		if gomoji.ContainsEmoji(cluster) {
			out = append(out, cluster)
		}
	}
	return out
}
