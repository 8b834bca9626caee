package domain

// Document is a catalog entry. Ids are assigned by the catalog.
type Document struct {
	ID   int64  `json:"id" yaml:"id"`
	Path string `json:"path" yaml:"path"`
}

// CleanedTokens maps a document id to its normalized token sequence.
// Every token is lowercase, non-empty and purely lexical.
type CleanedTokens map[int64][]string

// TermDocumentMatrix maps term -> document id -> occurrence count.
// A term is present only if it occurs in at least one document, and an
// inner count is present only if it is positive.
type TermDocumentMatrix map[string]map[int64]int

// DocFreq returns the number of documents containing term.
func (m TermDocumentMatrix) DocFreq(term string) int {
	return len(m[term])
}

// Count returns how many times term occurs in document docID.
func (m TermDocumentMatrix) Count(term string, docID int64) int {
	return m[term][docID]
}

// IDFTable maps term -> inverse document frequency.
type IDFTable map[string]float64

// TFIDFMatrix maps document id -> term -> score.
type TFIDFMatrix map[int64]map[string]float64

// TermScore is a single (term, score) pair of a document's result set.
type TermScore struct {
	Term  string  `json:"term" yaml:"term"`
	Score float64 `json:"score" yaml:"score"`
}

// ReadFailure records a document whose content could not be read.
type ReadFailure struct {
	Document Document
	Err      error
}
