package pdftext

import (
	"bytes"
	"strings"
)

const (
	// DefaultMaxBytes is the upload ceiling (5 MiB).
	DefaultMaxBytes int64 = 5 << 20
	// MimeType is the only declared content type accepted for uploads.
	MimeType = "application/pdf"
)

var signature = []byte("%PDF-")

// Validate checks an upload before any parsing happens: declared MIME type,
// size ceiling and the %PDF- signature, in that order. A missing MIME type
// is rejected like a wrong one; callers without one (files on disk) go
// through Extractor.Extract, which skips the MIME check.
func Validate(mimeType string, data []byte, maxBytes int64) error {
	if !isPDFMime(mimeType) {
		return validationError(ErrUnsupportedType, "")
	}
	return checkBytes(data, maxBytes)
}

func checkBytes(data []byte, maxBytes int64) error {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if int64(len(data)) > maxBytes {
		return validationError(ErrTooLarge, "maximum size is %d bytes", maxBytes)
	}
	if !bytes.HasPrefix(data, signature) {
		return validationError(ErrNotPDF, "")
	}
	return nil
}

// isPDFMime accepts "application/pdf" with optional parameters.
func isPDFMime(mimeType string) bool {
	base, _, _ := strings.Cut(mimeType, ";")
	return strings.EqualFold(strings.TrimSpace(base), MimeType)
}
