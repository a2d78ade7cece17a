package stats

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// stopWords are excluded from word-frequency counting: common English and
// Spanish function words plus the placeholder tokens WhatsApp inserts for
// stripped media ("image omitted", "sticker omitted", literal "null").
var stopWords = map[string]struct{}{
	// English function words
	"this": {}, "that": {}, "with": {}, "have": {}, "from": {},
	"your": {}, "what": {}, "when": {}, "then": {}, "than": {},
	"them": {}, "they": {}, "will": {}, "would": {}, "just": {},
	"like": {}, "about": {}, "there": {}, "here": {}, "been": {},
	"were": {}, "because": {}, "also": {}, "into": {}, "only": {},
	"some": {}, "dont": {}, "didnt": {}, "thats": {},
	// Spanish function words
	"para": {}, "pero": {}, "como": {}, "esta": {}, "este": {},
	"esto": {}, "pues": {}, "porque": {}, "aunque": {}, "cuando": {},
	"donde": {}, "tengo": {}, "tiene": {}, "jajaja": {},
	// Export placeholders
	"omitted": {}, "omitido": {}, "image": {}, "imagen": {},
	"sticker": {}, "video": {}, "audio": {}, "media": {},
	"deleted": {}, "null": {},
}

func isTokenBoundary(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case ',', '.', ';', ':', '!', '?', '(', ')', '"':
		return true
	}
	return false
}

// Tokenize lower-cases content, splits it on whitespace and sentence
// punctuation, and keeps tokens longer than three runes that are neither
// stop words nor numbers.
func Tokenize(content string) []string {
	fields := strings.FieldsFunc(strings.ToLower(content), isTokenBoundary)

	tokens := fields[:0]
	for _, tok := range fields {
		if utf8.RuneCountInString(tok) <= 3 {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if _, err := strconv.ParseFloat(tok, 64); err == nil {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
