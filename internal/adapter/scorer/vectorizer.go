package scorer

import "tfidf/internal/domain"

// Vectorize folds every (document, token) pair into a term-document matrix.
// Each document is counted on its own and then merged, so the result does
// not depend on map iteration order.
func Vectorize(cleaned domain.CleanedTokens) domain.TermDocumentMatrix {
	matrix := make(domain.TermDocumentMatrix)
	for docID, tokens := range cleaned {
		matrix = Merge(matrix, countDocument(docID, tokens))
	}
	return matrix
}

// countDocument builds the single-document matrix for tokens.
func countDocument(docID int64, tokens []string) domain.TermDocumentMatrix {
	m := make(domain.TermDocumentMatrix, len(tokens))
	for _, token := range tokens {
		if m[token] == nil {
			m[token] = make(map[int64]int, 1)
		}
		m[token][docID]++
	}
	return m
}

// Merge adds the counts of src into dst and returns dst. A nil dst is
// allocated. Counts for the same (term, document) key are summed, which makes
// Merge safe for combining partial matrices built by separate workers.
func Merge(dst, src domain.TermDocumentMatrix) domain.TermDocumentMatrix {
	if dst == nil {
		dst = make(domain.TermDocumentMatrix, len(src))
	}
	for term, docs := range src {
		row := dst[term]
		if row == nil {
			row = make(map[int64]int, len(docs))
			dst[term] = row
		}
		for docID, count := range docs {
			if count <= 0 {
				continue
			}
			row[docID] += count
		}
		if len(row) == 0 {
			delete(dst, term)
		}
	}
	return dst
}
