package pdftext

import (
	"math"
	"strings"
)

// Mode selects how fragments are joined into lines.
type Mode int

const (
	// ModePositional breaks lines on vertical movement.
	ModePositional Mode = iota
	// ModePlain joins every fragment with a single space.
	ModePlain
)

// lineThreshold is the vertical distance, in text space units, above which
// two fragments are considered to sit on different lines.
const lineThreshold = 5.0

// Fragment is decoded text ready for layout.
type Fragment struct {
	Text string
	Y    float64
	HasY bool
	EOL  bool
	// Break forces a line break before the fragment (page boundaries).
	Break bool
}

// Reconstruct joins fragments into text with '\n' at inferred line
// boundaries. Whitespace is not collapsed here.
func Reconstruct(frags []Fragment, mode Mode) string {
	var b strings.Builder
	if mode == ModePlain {
		for i, f := range frags {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(f.Text)
		}
		return b.String()
	}

	var (
		lastY     float64
		havePrev  bool
		lineStart = true
		space     bool
	)
	for _, f := range frags {
		brk := f.Break
		if f.HasY {
			if havePrev && math.Abs(f.Y-lastY) > lineThreshold {
				brk = true
			}
			lastY, havePrev = f.Y, true
		}
		switch {
		case brk && !lineStart:
			b.WriteByte('\n')
			lineStart = true
		case space && !lineStart:
			b.WriteByte(' ')
		}
		b.WriteString(f.Text)
		if f.Text != "" {
			lineStart = false
		}
		space = f.EOL
	}
	return b.String()
}
