// Package pdftext recovers readable text from text-based PDF documents.
//
// Documents are validated, their content streams are scanned for text
// objects, string operands are decoded and lines are rebuilt from text
// positions. Failures local to one text object are skipped; only
// document-level failures are returned to the caller.
package pdftext

// Extractor validates documents and hands them to a Strategy. It holds no
// per-document state and is safe for concurrent use.
type Extractor struct {
	strategy Strategy
	maxBytes int64
}

// New returns an Extractor. A nil strategy selects Positional and a
// non-positive maxBytes selects DefaultMaxBytes.
func New(strategy Strategy, maxBytes int64) *Extractor {
	if strategy == nil {
		strategy = Positional()
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Extractor{strategy: strategy, maxBytes: maxBytes}
}

// Strategy returns the name of the configured strategy.
func (e *Extractor) Strategy() string { return e.strategy.Name() }

// MaxBytes returns the size ceiling.
func (e *Extractor) MaxBytes() int64 { return e.maxBytes }

// Extract checks size and signature, then extracts text from data.
func (e *Extractor) Extract(data []byte) (Result, error) {
	if err := checkBytes(data, e.maxBytes); err != nil {
		return Result{}, err
	}
	return e.strategy.Extract(data)
}

// ExtractUpload is Extract preceded by the declared MIME type check.
func (e *Extractor) ExtractUpload(mimeType string, data []byte) (Result, error) {
	if err := Validate(mimeType, data, e.maxBytes); err != nil {
		return Result{}, err
	}
	return e.strategy.Extract(data)
}
