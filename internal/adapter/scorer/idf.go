package scorer

import (
	"fmt"
	"math"

	"tfidf/internal/domain"
)

// ComputeIDF returns log10(totalDocs / df(t)) for every term of the matrix.
// totalDocs counts every document of the run, including those that produced
// no tokens. A corpus of zero documents is an error.
func ComputeIDF(matrix domain.TermDocumentMatrix, totalDocs int) (domain.IDFTable, error) {
	if totalDocs <= 0 {
		return nil, fmt.Errorf("%w: total documents = %d", domain.ErrEmptyCorpus, totalDocs)
	}

	idf := make(domain.IDFTable, len(matrix))
	n := float64(totalDocs)
	for term, docs := range matrix {
		df := len(docs)
		if df == 0 {
			continue
		}
		if df > totalDocs {
			return nil, fmt.Errorf("term %q occurs in %d documents but the corpus has %d", term, df, totalDocs)
		}
		idf[term] = math.Log10(n / float64(df))
	}
	return idf, nil
}
