package scorer

import "tfidf/internal/domain"

// Combine scores every distinct term of every document as
// count(term, doc) / len(doc) * idf(term). Terms missing from idf weigh 0.
// A document with no cleaned tokens scores nothing.
func Combine(cleaned domain.CleanedTokens, matrix domain.TermDocumentMatrix, idf domain.IDFTable) domain.TFIDFMatrix {
	out := make(domain.TFIDFMatrix, len(cleaned))
	for docID, tokens := range cleaned {
		scores := make(map[string]float64)
		out[docID] = scores
		if len(tokens) == 0 {
			continue
		}

		total := float64(len(tokens))
		for _, term := range tokens {
			if _, done := scores[term]; done {
				continue
			}
			tf := float64(matrix.Count(term, docID)) / total
			scores[term] = tf * idf[term]
		}
	}
	return out
}

// Result bundles every intermediate structure of one scoring pass.
type Result struct {
	Matrix domain.TermDocumentMatrix
	IDF    domain.IDFTable
	TFIDF  domain.TFIDFMatrix
}

// Score runs vectorization, IDF and TF-IDF over cleaned tokens. totalDocs is
// the number of documents in the corpus, which may exceed len(cleaned) when a
// caller omits empty documents.
func Score(cleaned domain.CleanedTokens, totalDocs int) (*Result, error) {
	matrix := Vectorize(cleaned)
	idf, err := ComputeIDF(matrix, totalDocs)
	if err != nil {
		return nil, err
	}
	return &Result{
		Matrix: matrix,
		IDF:    idf,
		TFIDF:  Combine(cleaned, matrix, idf),
	}, nil
}
