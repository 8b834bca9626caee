package domain

import "errors"

var (
	ErrEmptyCorpus       = errors.New("cannot compute IDF over empty corpus")
	ErrDocumentNotFound  = errors.New("document not found")
	ErrSchemaVersion     = errors.New("catalog created by a newer schema version")
	ErrUnsupportedDriver = errors.New("unsupported catalog driver")
	ErrUnsupportedFormat = errors.New("unsupported report format")
)
