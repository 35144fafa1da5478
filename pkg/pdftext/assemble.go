package pdftext

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Result is the outcome of a successful extraction.
type Result struct {
	Text string `json:"text"`
	// Pages is advisory: it is derived from page object markers.
	Pages     int `json:"pages"`
	WordCount int `json:"wordCount"`
}

var pageMarker = regexp.MustCompile(`/Type\s*/Page(?:[^s]|$)`)

// countPages counts page objects in the raw bytes, never less than one.
func countPages(buf []byte) int {
	n := len(pageMarker.FindAllIndex(buf, -1))
	if n < 1 {
		return 1
	}
	return n
}

// assemble normalizes the reconstructed layout and applies the
// minimum-length policy.
func assemble(layout string, pages, minChars int) (Result, error) {
	text := normalize(layout)
	if utf8.RuneCountInString(text) < minChars {
		return Result{}, ErrNoText
	}
	return Result{Text: text, Pages: pages, WordCount: CountWords(text)}, nil
}

// normalize drops control characters, composes to NFC and collapses every
// whitespace run, line breaks included, to a single space.
func normalize(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	s = norm.NFC.String(s)
	return strings.Join(strings.Fields(s), " ")
}

// CountWords returns the number of non-empty whitespace-separated tokens.
func CountWords(s string) int { return len(strings.Fields(s)) }
