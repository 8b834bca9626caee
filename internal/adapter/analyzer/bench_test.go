package analyzer

import (
	"strings"
	"testing"
)

var benchText = strings.Repeat(`Le garçon mange une pomme. The quick brown fox jumps over
the lazy dog, 42 times in 1999; naïve café owners serve crème brûlée! `, 200)

func BenchmarkTokenize(b *testing.B) {
	tok := NewTokenizer()
	b.ReportAllocs()
	b.SetBytes(int64(len(benchText)))
	for i := 0; i < b.N; i++ {
		_ = tok.Tokenize(benchText)
	}
}

func BenchmarkClean(b *testing.B) {
	tokens := NewTokenizer().Tokenize(benchText)
	c := NewCleaner(NewStopWords("the", "le", "une", "in", "over"))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Clean(tokens)
	}
}
