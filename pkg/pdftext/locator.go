package pdftext

import "iter"

// Block is a text object body: the bytes between a BT marker and its ET,
// as offsets into the scanned buffer.
type Block struct {
	Start int
	End   int
}

// blocks lazily yields every BT ... ET region of buf, always scanning from
// byte 0. Literal strings are stepped over so that an "ET" inside a string
// does not close the block. A block whose literal never terminates closes
// at the first ET token after that literal; a block with no ET at all runs
// to the end of input.
func blocks(buf []byte) iter.Seq[Block] {
	return func(yield func(Block) bool) {
		pos := 0
		budget := newScanBudget(len(buf))
		for pos < len(buf) {
			open := findToken(buf, pos, "BT")
			if open < 0 {
				return
			}
			start := open + len("BT")
			end, next := closeBlock(buf, start, &budget)
			if !yield(Block{Start: start, End: end}) {
				return
			}
			pos = next
		}
	}
}

// closeBlock returns the end of the block body starting at start and the
// offset where scanning resumes.
func closeBlock(buf []byte, start int, budget *scanBudget) (end, next int) {
	i := start
	for i < len(buf) {
		switch c := buf[i]; {
		case c == '(':
			j, ok := budget.literal(buf, i)
			if !ok {
				if k := findToken(buf, i+1, "ET"); k >= 0 {
					return k, k + len("ET")
				}
				return len(buf), len(buf)
			}
			i = j
		case c == '%':
			i = skipComment(buf, i)
		case c == 'E' && isTokenAt(buf, i, "ET"):
			return i, i + len("ET")
		default:
			i++
		}
	}
	return len(buf), len(buf)
}
