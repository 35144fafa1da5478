package pdftext

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var (
	bomBE = []byte{0xFE, 0xFF}
	bomLE = []byte{0xFF, 0xFE}
)

// decodeText turns decoded literal bytes into UTF-8. Strings with a byte
// order mark are UTF-16; anything that is not already valid UTF-8 is read as
// WinAnsi, the encoding of the standard 14 fonts.
//
// Decoders are created per call: they carry transform state and are not
// safe to share between goroutines.
func decodeText(b []byte) string {
	switch {
	case bytes.HasPrefix(b, bomBE):
		if s, ok := decodeWith(unicode.UTF16(unicode.BigEndian, unicode.UseBOM), b); ok {
			return s
		}
	case bytes.HasPrefix(b, bomLE):
		if s, ok := decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), b); ok {
			return s
		}
	}
	if utf8.Valid(b) {
		return string(b)
	}
	if s, ok := decodeWith(charmap.Windows1252, b); ok {
		return s
	}
	return string(bytes.ToValidUTF8(b, []byte("�")))
}

func decodeWith(enc encoding.Encoding, b []byte) (string, bool) {
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", false
	}
	return string(out), true
}
