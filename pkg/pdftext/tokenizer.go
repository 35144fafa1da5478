package pdftext

import (
	"bytes"
	"strconv"
)

// Show is one text-showing instruction recovered from a block.
type Show struct {
	// Raw holds the undecoded literal bytes. Array shows are concatenated;
	// their numeric spacing adjustments are dropped.
	Raw []byte
	// Y is the vertical text-space position in effect when the string was
	// shown. HasY is false until the block positions its text.
	Y    float64
	HasY bool
	// EOL marks the last show of its block.
	EOL bool
}

// matrix is a PDF affine transform [a b c d e f].
type matrix [6]float64

var identity = matrix{1, 0, 0, 1, 0, 0}

// translate returns [1 0 0 1 tx ty] x m.
func (m matrix) translate(tx, ty float64) matrix {
	m[4] += tx*m[0] + ty*m[2]
	m[5] += tx*m[1] + ty*m[3]
	return m
}

type operandKind int

const (
	opOther operandKind = iota
	opNumber
	opLiteral
	opArray
)

type operand struct {
	kind operandKind
	num  float64
	raw  []byte
}

// maxOperands bounds the operand stack on noisy input.
const maxOperands = 64

// tokenizer walks one block body. It is a small state machine: operands
// accumulate on a stack until an operator consumes them.
type tokenizer struct {
	buf     []byte
	pos     int
	stack   []operand
	line    matrix
	leading float64
	hasY    bool
	shows   []Show
	skipped int
	budget  scanBudget
}

// tokenize returns the shows of a block and the number of malformed
// constructs that were skipped on the way.
func tokenize(block []byte) ([]Show, int) {
	t := &tokenizer{buf: block, line: identity, budget: newScanBudget(len(block))}
	t.run()
	if n := len(t.shows); n > 0 {
		t.shows[n-1].EOL = true
	}
	return t.shows, t.skipped
}

func (t *tokenizer) run() {
	for t.pos < len(t.buf) {
		c := t.buf[t.pos]
		switch {
		case isWhitespace(c):
			t.pos++
		case c == '%':
			t.pos = skipComment(t.buf, t.pos)
		case c == '(':
			raw, ok := t.readLiteral()
			if !ok {
				t.skipped++
				return
			}
			t.push(operand{kind: opLiteral, raw: raw})
		case c == '[':
			raw, ok := t.readArray()
			if !ok {
				t.skipped++
				return
			}
			t.push(operand{kind: opArray, raw: raw})
		case c == '<':
			t.skipAngle()
			t.push(operand{kind: opOther})
		case c == '/':
			t.pos++
			t.readRegular()
			t.push(operand{kind: opOther})
		case c == ')' || c == ']' || c == '>' || c == '{' || c == '}':
			t.skipped++
			t.pos++
		case c == '\'' || c == '"':
			t.pos++
			t.operator(string(c))
		case c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9'):
			word := t.readRegular()
			if n, err := strconv.ParseFloat(string(word), 64); err == nil {
				t.push(operand{kind: opNumber, num: n})
			} else {
				t.push(operand{kind: opOther})
			}
		default:
			t.operator(string(t.readRegular()))
		}
	}
}

func (t *tokenizer) push(op operand) {
	if len(t.stack) == maxOperands {
		copy(t.stack, t.stack[1:])
		t.stack = t.stack[:maxOperands-1]
	}
	t.stack = append(t.stack, op)
}

func (t *tokenizer) readRegular() []byte {
	start := t.pos
	for t.pos < len(t.buf) && !isDelimiter(t.buf[t.pos]) && t.buf[t.pos] != '\'' && t.buf[t.pos] != '"' {
		t.pos++
	}
	if t.pos == start {
		t.pos++
	}
	return t.buf[start:t.pos]
}

// readLiteral reads the literal starting at t.pos. A literal whose
// parentheses never balance is cut at its first unescaped ')'; one with no
// ')' at all is unterminated and reported as not ok.
func (t *tokenizer) readLiteral() ([]byte, bool) {
	start := t.pos
	end, ok := t.budget.literal(t.buf, start)
	if !ok {
		t.skipped++
		end, ok = firstClose(t.buf, start)
		if !ok {
			t.pos = len(t.buf)
			return nil, false
		}
	}
	t.pos = end
	return t.buf[start+1 : end-1], true
}

// readArray collects the literal elements of an array operand.
func (t *tokenizer) readArray() ([]byte, bool) {
	t.pos++
	var out bytes.Buffer
	for t.pos < len(t.buf) {
		c := t.buf[t.pos]
		switch {
		case c == ']':
			t.pos++
			return out.Bytes(), true
		case c == '(':
			raw, ok := t.readLiteral()
			if !ok {
				return nil, false
			}
			out.Write(raw)
		case c == '<':
			t.skipAngle()
		case c == '%':
			t.pos = skipComment(t.buf, t.pos)
		case isWhitespace(c) || c == '[':
			t.pos++
		default:
			t.readRegular()
		}
	}
	return nil, false
}

// skipAngle steps over a hex string or a dictionary.
func (t *tokenizer) skipAngle() {
	if t.pos+1 < len(t.buf) && t.buf[t.pos+1] == '<' {
		depth := 0
		for t.pos < len(t.buf) {
			switch {
			case bytes.HasPrefix(t.buf[t.pos:], []byte("<<")):
				depth++
				t.pos += 2
			case bytes.HasPrefix(t.buf[t.pos:], []byte(">>")):
				depth--
				t.pos += 2
				if depth == 0 {
					return
				}
			case t.buf[t.pos] == '(':
				end, _ := skipLiteral(t.buf, t.pos)
				t.pos = end
			default:
				t.pos++
			}
		}
		return
	}
	if i := bytes.IndexByte(t.buf[t.pos:], '>'); i >= 0 {
		t.pos += i + 1
		return
	}
	t.pos = len(t.buf)
}

func (t *tokenizer) operator(name string) {
	defer func() { t.stack = t.stack[:0] }()
	switch name {
	case "Tj":
		t.showTop(opLiteral)
	case "TJ":
		t.showTop(opArray)
	case "'", "\"":
		t.nextLine()
		t.showTop(opLiteral)
	case "Td":
		if tx, ty, ok := t.numbers2(); ok {
			t.moveLine(tx, ty)
		}
	case "TD":
		if tx, ty, ok := t.numbers2(); ok {
			t.leading = -ty
			t.moveLine(tx, ty)
		}
	case "T*":
		t.nextLine()
	case "TL":
		if n := len(t.stack); n > 0 && t.stack[n-1].kind == opNumber {
			t.leading = t.stack[n-1].num
		}
	case "Tm":
		if m, ok := t.numbers6(); ok {
			t.line = m
			t.hasY = true
		}
	case "BT":
		t.line = identity
		t.hasY = false
	}
}

func (t *tokenizer) showTop(kind operandKind) {
	n := len(t.stack)
	if n == 0 || t.stack[n-1].kind != kind {
		t.skipped++
		return
	}
	t.shows = append(t.shows, Show{Raw: t.stack[n-1].raw, Y: t.line[5], HasY: t.hasY})
}

func (t *tokenizer) moveLine(tx, ty float64) {
	t.line = t.line.translate(tx, ty)
	t.hasY = true
}

func (t *tokenizer) nextLine() { t.moveLine(0, -t.leading) }

func (t *tokenizer) numbers2() (float64, float64, bool) {
	n := len(t.stack)
	if n < 2 || t.stack[n-2].kind != opNumber || t.stack[n-1].kind != opNumber {
		t.skipped++
		return 0, 0, false
	}
	return t.stack[n-2].num, t.stack[n-1].num, true
}

func (t *tokenizer) numbers6() (matrix, bool) {
	var m matrix
	n := len(t.stack)
	if n < 6 {
		t.skipped++
		return m, false
	}
	for i, op := range t.stack[n-6:] {
		if op.kind != opNumber {
			t.skipped++
			return m, false
		}
		m[i] = op.num
	}
	return m, true
}
