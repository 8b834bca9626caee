package analyzer

import (
	"regexp"
	"strings"
)

// lexicalWord accepts lowercase Latin letters and the French diacritics.
// Digits, underscores and punctuation never match.
var lexicalWord = regexp.MustCompile(`^[a-zàâçéèêëîïôûùüÿñæœ]+$`)

// Cleaner lowercases tokens and drops stop words and non-lexical tokens.
type Cleaner struct {
	stopwords StopWords
}

// NewCleaner creates a Cleaner filtering the given stop words. A nil set
// filters nothing.
func NewCleaner(stopwords StopWords) *Cleaner {
	if stopwords == nil {
		stopwords = StopWords{}
	}
	return &Cleaner{stopwords: stopwords}
}

// Clean returns the surviving tokens in their original order. Duplicates are
// kept since they carry the term frequency.
func (c *Cleaner) Clean(tokens []string) []string {
	cleaned := make([]string, 0, len(tokens))
	for _, token := range tokens {
		word := strings.ToLower(token)
		if c.stopwords.Contains(word) {
			continue
		}
		if !IsLexical(word) {
			continue
		}
		cleaned = append(cleaned, word)
	}
	return cleaned
}

// IsLexical reports whether word is made only of accepted lowercase letters.
func IsLexical(word string) bool {
	return lexicalWord.MatchString(word)
}
