package pdftext

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// Library reads documents through github.com/ledongthuc/pdf, which follows
// the xref table and resolves font encodings, then lays the positioned text
// items out the same way as Positional.
func Library() Strategy { return libraryStrategy{minChars: minCharsLibrary} }

type libraryStrategy struct {
	minChars int
}

func (libraryStrategy) Name() string { return "library" }

func (s libraryStrategy) Extract(data []byte) (res Result, err error) {
	page := 0
	defer func() {
		if r := recover(); r != nil {
			res, err = Result{}, newParseError(data, 0, fmt.Sprintf("page %d: %v", page, r))
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Result{}, newParseError(data, 0, err)
	}
	var frags []Fragment
	pages := r.NumPage()
	for page = 1; page <= pages; page++ {
		p := r.Page(page)
		if p.V.IsNull() {
			continue
		}
		var prev pdf.Text
		for i, t := range p.Content().Text {
			if i > 0 && wordGap(prev, t) {
				frags[len(frags)-1].EOL = true
			}
			frags = append(frags, Fragment{
				Text:  t.S,
				Y:     t.Y,
				HasY:  true,
				Break: i == 0 && len(frags) > 0,
			})
			prev = t
		}
	}
	if pages < 1 {
		pages = 1
	}
	return assemble(Reconstruct(frags, ModePositional), pages, s.minChars)
}

// wordGapRatio is the horizontal gap, in units of font size, between two
// glyphs on one line that reads as a word break. TJ kerning in typeset
// documents moves words apart without emitting a space glyph.
const wordGapRatio = 0.25

func wordGap(prev, cur pdf.Text) bool {
	if math.Abs(cur.Y-prev.Y) > lineThreshold {
		return false
	}
	if strings.HasSuffix(prev.S, " ") || strings.HasPrefix(cur.S, " ") {
		return false
	}
	return cur.X-(prev.X+prev.W) > wordGapRatio*cur.FontSize
}
