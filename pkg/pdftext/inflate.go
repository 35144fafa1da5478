package pdftext

import (
	"bytes"
	"io"
	"regexp"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zlib"
)

const (
	// maxInflated caps the bytes expandStreams splices into the document.
	maxInflated = 64 << 20
	// maxInflateWork caps the bytes decompressed overall, spliced or not.
	maxInflateWork = 4 * maxInflated
)

var (
	kwStream    = []byte("stream")
	kwEndstream = []byte("endstream")
	kwObj       = []byte("obj")
	flateName   = []byte("/FlateDecode")

	// Streams that never hold text objects: images, font programs and
	// document plumbing. Form XObjects are content and stay in.
	imageDict   = regexp.MustCompile(`/Subtype\s*/Image\b`)
	xobjectDict = regexp.MustCompile(`/Type\s*/XObject\b`)
	formDict    = regexp.MustCompile(`/Subtype\s*/Form\b`)
	fontDict    = regexp.MustCompile(`/Length[123]\b|/Subtype\s*/(?:Type1C|CIDFontType0C|OpenType)\b`)
	plumbDict   = regexp.MustCompile(`/Type\s*/(?:ObjStm|XRef|Metadata|EmbeddedFile)\b`)
)

// expandStreams returns data with every FlateDecode content stream replaced
// by its inflated bytes, so text blocks inside compressed streams become
// visible to the locator. Non-content streams are left alone. Streams that
// fail to inflate, or inflate to something without a BT marker, are kept as
// they are and do not count against maxInflated. When nothing is spliced
// data is returned unchanged.
func expandStreams(data []byte) []byte {
	var (
		out      bytes.Buffer
		copied   int
		budget   = maxInflated
		work     = maxInflateWork
		expanded bool
	)
	for pos := 0; pos < len(data) && budget > 0 && work > 0; {
		k := bytes.Index(data[pos:], kwStream)
		if k < 0 {
			break
		}
		kw := pos + k
		pos = kw + len(kwStream)
		if kw >= 3 && string(data[kw-3:kw]) == "end" {
			continue
		}
		bodyStart, ok := streamBodyStart(data, pos)
		if !ok {
			continue
		}
		e := bytes.Index(data[bodyStart:], kwEndstream)
		if e < 0 {
			break
		}
		bodyEnd := bodyStart + e
		pos = bodyEnd + len(kwEndstream)
		if !isContentStream(streamDict(data, kw)) {
			continue
		}
		plain := inflate(bytes.TrimRight(data[bodyStart:bodyEnd], "\r\n"), min(budget, work))
		work -= len(plain)
		if findToken(plain, 0, "BT") < 0 {
			continue
		}
		budget -= len(plain)
		out.Write(data[copied:bodyStart])
		out.WriteByte('\n')
		out.Write(plain)
		out.WriteByte('\n')
		copied = bodyEnd
		expanded = true
	}
	if !expanded {
		return data
	}
	out.Write(data[copied:])
	return out.Bytes()
}

// isContentStream reports whether a stream dictionary describes a Flate
// stream that may carry text objects.
func isContentStream(dict []byte) bool {
	switch {
	case !bytes.Contains(dict, flateName):
		return false
	case imageDict.Match(dict), fontDict.Match(dict), plumbDict.Match(dict):
		return false
	case xobjectDict.Match(dict):
		return formDict.Match(dict)
	}
	return true
}

// streamBodyStart skips the end-of-line that must follow the stream keyword.
func streamBodyStart(data []byte, i int) (int, bool) {
	switch {
	case i+1 < len(data) && data[i] == '\r' && data[i+1] == '\n':
		return i + 2, true
	case i < len(data) && (data[i] == '\n' || data[i] == '\r'):
		return i + 1, true
	}
	return 0, false
}

// streamDict returns the bytes between the owning "obj" keyword (or a
// bounded look-back window) and the stream keyword at kw.
func streamDict(data []byte, kw int) []byte {
	lo := max(kw-2048, 0)
	window := data[lo:kw]
	if i := bytes.LastIndex(window, kwObj); i >= 0 {
		window = window[i:]
	}
	return window
}

// inflate decodes a zlib body, falling back to raw deflate for producers
// that omit the zlib header. Truncated input yields what was recovered.
func inflate(body []byte, limit int) []byte {
	var r io.ReadCloser
	zr, err := zlib.NewReader(bytes.NewReader(body))
	if err == nil {
		r = zr
	} else {
		r = flate.NewReader(bytes.NewReader(body))
	}
	defer r.Close()
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, io.LimitReader(r, int64(limit)))
	return buf.Bytes()
}
