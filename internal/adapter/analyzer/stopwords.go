package analyzer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"tfidf/internal/logger"
)

// StopWords is a set of lowercase words excluded from scoring.
type StopWords map[string]struct{}

// NewStopWords builds a set from words, lowercasing each one.
func NewStopWords(words ...string) StopWords {
	s := make(StopWords, len(words))
	for _, w := range words {
		s[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// Contains reports whether word is a stop word.
func (s StopWords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Sorted returns the stop words in lexical order.
func (s StopWords) Sorted() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// ParseStopWords reads one stop word per line. Lines are trimmed; blank lines
// and lines starting with '#' are ignored.
func ParseStopWords(r io.Reader) (StopWords, error) {
	words := StopWords{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stop words: %w", err)
	}
	return words, nil
}

// LoadStopWords loads the stop-word file at path. It never fails: an
// unreadable file is logged and yields an empty set.
func LoadStopWords(path string) StopWords {
	log := logger.WithComponent("stopwords")

	f, err := os.Open(path)
	if err != nil {
		log.Warn("failed to load stop words, continuing without", "path", path, "error", err)
		return StopWords{}
	}
	defer f.Close()

	words, err := ParseStopWords(f)
	if err != nil {
		log.Warn("failed to load stop words, continuing without", "path", path, "error", err)
		return StopWords{}
	}
	log.Debug("stop words loaded", "path", path, "count", len(words))
	return words
}
