package analyzer

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"tfidf/internal/logger"
)

func TestParseStopWords(t *testing.T) {
	input := `# common words
the
  And  

# articles
a
`
	words, err := ParseStopWords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"a", "and", "the"}
	if got := words.Sorted(); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
	if words.Contains("#") || words.Contains("") {
		t.Error("comments and blank lines must not become stop words")
	}
}

func TestLoadStopWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop_words.txt")
	if err := os.WriteFile(path, []byte("the\nof\n"), 0644); err != nil {
		t.Fatal(err)
	}

	words := LoadStopWords(path)
	if len(words) != 2 || !words.Contains("the") || !words.Contains("of") {
		t.Errorf("unexpected stop words: %v", words.Sorted())
	}
}

func TestLoadStopWords_MissingFile(t *testing.T) {
	words := LoadStopWords(filepath.Join(t.TempDir(), "missing.txt"))
	if words == nil {
		t.Fatal("expected an empty set, got nil")
	}
	if len(words) != 0 {
		t.Errorf("expected no stop words, got %v", words.Sorted())
	}
}

func TestLoadStopWords_MissingFileWarnsWithComponent(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	logger.Setup(&buf, "info", "json")

	path := filepath.Join(t.TempDir(), "missing.txt")
	LoadStopWords(path)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one JSON log entry, got %q: %v", buf.String(), err)
	}
	if entry["level"] != "WARN" || entry["component"] != "stopwords" || entry["path"] != path {
		t.Errorf("unexpected entry: %v", entry)
	}
}
