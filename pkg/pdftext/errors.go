package pdftext

import (
	"errors"
	"fmt"
)

// Validation failures wrap ErrValidation together with the specific reason,
// so callers can branch on either.
var (
	ErrValidation      = errors.New("invalid upload")
	ErrUnsupportedType = errors.New("only PDF files are supported")
	ErrTooLarge        = errors.New("file too large")
	ErrNotPDF          = errors.New("invalid PDF file")
)

var (
	// ErrNoText means the document parsed but yielded too little text,
	// which usually points to a scanned or image-only PDF.
	ErrNoText = errors.New("could not extract text from this PDF: it may be a scanned or image-based PDF, please use a text-based PDF")
	// ErrInternal is wrapped by *ParseError.
	ErrInternal = errors.New("failed to parse PDF")
)

// ParseError reports an unexpected failure while scanning a document.
// Context holds a copy of the bytes around Offset for diagnostics.
type ParseError struct {
	Offset  int
	Context []byte
	Cause   any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at offset %d: %v", ErrInternal, e.Offset, e.Cause)
}

func (e *ParseError) Unwrap() error { return ErrInternal }

// IsValidation reports whether err was produced by Validate.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

func validationError(reason error, format string, args ...any) error {
	if format == "" {
		return fmt.Errorf("%w: %w", ErrValidation, reason)
	}
	return fmt.Errorf("%w: %w: %s", ErrValidation, reason, fmt.Sprintf(format, args...))
}

const contextWindow = 128

func newParseError(data []byte, offset int, cause any) *ParseError {
	if offset < 0 {
		offset = 0
	}
	if offset > len(data) {
		offset = len(data)
	}
	lo := offset - contextWindow/2
	if lo < 0 {
		lo = 0
	}
	hi := lo + contextWindow
	if hi > len(data) {
		hi = len(data)
	}
	ctx := make([]byte, hi-lo)
	copy(ctx, data[lo:hi])
	return &ParseError{Offset: offset, Context: ctx, Cause: cause}
}
