package pdftext

func isWhitespace(c byte) bool {
	return c == 0x00 || c == 0x09 || c == 0x0A || c == 0x0C || c == 0x0D || c == 0x20
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	default:
		return isWhitespace(c)
	}
}

// isTokenAt reports whether tok sits at buf[i:] as a whole token.
func isTokenAt(buf []byte, i int, tok string) bool {
	if i < 0 || i+len(tok) > len(buf) || string(buf[i:i+len(tok)]) != tok {
		return false
	}
	if i > 0 && !isDelimiter(buf[i-1]) {
		return false
	}
	end := i + len(tok)
	return end == len(buf) || isDelimiter(buf[end])
}

// findToken returns the index of the next whole-token occurrence of tok at
// or after from, or -1.
func findToken(buf []byte, from int, tok string) int {
	for i := from; i+len(tok) <= len(buf); i++ {
		if buf[i] == tok[0] && isTokenAt(buf, i, tok) {
			return i
		}
	}
	return -1
}

// skipLiteral expects buf[i] == '(' and returns the index just past the
// matching ')'. Balanced inner parentheses nest; escaped ones do not count.
// When the parentheses never balance it reports false together with the
// offset where it gave up: the first ET token after an unmatched ')', or
// the end of buf.
func skipLiteral(buf []byte, i int) (int, bool) {
	depth := 0
	closed := false
	for j := i; j < len(buf); j++ {
		switch buf[j] {
		case '\\':
			j++
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return j + 1, true
			}
			closed = true
		case 'E':
			if closed && isTokenAt(buf, j, "ET") {
				return j, false
			}
		}
	}
	return len(buf), false
}

// scanBudget bounds the bytes spent on literal scans that fail to balance.
// Once it runs out callers take their cheap fallback for every literal, so
// a buffer full of unbalanced strings is still walked in linear time.
type scanBudget int

func newScanBudget(n int) scanBudget { return scanBudget(4*n + 1024) }

// literal is skipLiteral charged against the budget. With the budget spent
// it reports false without scanning.
func (b *scanBudget) literal(buf []byte, i int) (int, bool) {
	if *b <= 0 {
		return i, false
	}
	end, ok := skipLiteral(buf, i)
	if !ok {
		*b -= scanBudget(end - i + 1)
	}
	return end, ok
}

// firstClose returns the index just past the first unescaped ')' after
// buf[i] == '('. Used to recover literals with an unbalanced '(' inside.
func firstClose(buf []byte, i int) (int, bool) {
	for j := i + 1; j < len(buf); j++ {
		switch buf[j] {
		case '\\':
			j++
		case ')':
			return j + 1, true
		}
	}
	return len(buf), false
}

func skipComment(buf []byte, i int) int {
	for i < len(buf) && buf[i] != '\n' && buf[i] != '\r' {
		i++
	}
	return i
}
