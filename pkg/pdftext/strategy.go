package pdftext

import (
	"fmt"
	"strings"
)

// Strategy turns validated PDF bytes into a Result.
type Strategy interface {
	Name() string
	Extract(data []byte) (Result, error)
}

// Minimum text lengths below which a document counts as image-only.
const (
	minCharsPositional = 50
	minCharsPlain      = 30
	minCharsLibrary    = 50
)

// Positional scans content streams and rebuilds lines from text positions.
func Positional() Strategy {
	return scanStrategy{name: "positional", mode: ModePositional, minChars: minCharsPositional}
}

// Plain scans content streams and joins every string with a space.
func Plain() Strategy {
	return scanStrategy{name: "plain", mode: ModePlain, minChars: minCharsPlain}
}

// ParseStrategy resolves a configured strategy name. Empty means positional.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "positional":
		return Positional(), nil
	case "plain":
		return Plain(), nil
	case "library":
		return Library(), nil
	default:
		return nil, fmt.Errorf("unknown pdf strategy %q", name)
	}
}

type scanStrategy struct {
	name     string
	mode     Mode
	minChars int
}

func (s scanStrategy) Name() string { return s.name }

func (s scanStrategy) Extract(data []byte) (res Result, err error) {
	buf := expandStreams(data)
	cur := 0
	defer func() {
		if r := recover(); r != nil {
			res, err = Result{}, newParseError(buf, cur, r)
		}
	}()
	frags := scanFragments(buf, &cur)
	return assemble(Reconstruct(frags, s.mode), countPages(buf), s.minChars)
}

// scanFragments runs locate, tokenize and decode over buf. cur tracks the
// offset of the block being processed.
func scanFragments(buf []byte, cur *int) []Fragment {
	var frags []Fragment
	for blk := range blocks(buf) {
		*cur = blk.Start
		shows, _ := tokenize(buf[blk.Start:blk.End])
		for _, sh := range shows {
			frags = append(frags, Fragment{
				Text: decodeText(DecodeEscapes(sh.Raw)),
				Y:    sh.Y,
				HasY: sh.HasY,
				EOL:  sh.EOL,
			})
		}
	}
	return frags
}
