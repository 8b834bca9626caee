package scorer

import (
	"fmt"
	"testing"

	"tfidf/internal/domain"
)

func benchCorpus(docs, tokensPerDoc, vocab int) domain.CleanedTokens {
	cleaned := make(domain.CleanedTokens, docs)
	for d := 0; d < docs; d++ {
		tokens := make([]string, tokensPerDoc)
		for i := range tokens {
			tokens[i] = fmt.Sprintf("t%d", (d*7+i*13)%vocab)
		}
		cleaned[int64(d+1)] = tokens
	}
	return cleaned
}

func BenchmarkScore(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		cleaned := benchCorpus(size, 200, 500)
		b.Run(fmt.Sprintf("docs=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Score(cleaned, size); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
