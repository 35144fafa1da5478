package pdftext

// DecodeEscapes resolves backslash escapes in a literal string payload.
//
// Octal escapes (\d, \dd, \ddd) take precedence over the literal escapes
// (\n \r \t \b \f \( \) \\). The payload is read once, left to right, so an
// escaped backslash is never re-read as the start of an octal escape.
// A backslash before an end-of-line is a line continuation and is dropped.
// Unknown escapes pass through unchanged.
func DecodeEscapes(raw []byte) []byte {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		if i+1 >= len(raw) {
			out = append(out, c)
			break
		}
		i++
		esc := raw[i]
		if isOctal(esc) {
			val := int(esc - '0')
			for k := 0; k < 2 && i+1 < len(raw) && isOctal(raw[i+1]); k++ {
				i++
				val = val<<3 | int(raw[i]-'0')
			}
			out = append(out, byte(val&0xFF))
			continue
		}
		switch esc {
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case '(', ')', '\\':
			out = append(out, esc)
		case '\r':
			if i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
		case '\n':
		default:
			out = append(out, '\\', esc)
		}
	}
	return out
}

func isOctal(c byte) bool { return c >= '0' && c <= '7' }
