package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/klauspost/compress/zlib"
	"golang.org/x/text/encoding/charmap"
)

// US Letter, in points.
const (
	pageWidth    = 612.0
	pageHeight   = 792.0
	marginX      = 50.0
	marginTop    = 742.0
	marginBottom = 56.0
	contentWidth = pageWidth - 2*marginX
)

type placed struct {
	line
	y float64
}

// paginate assigns a baseline to every line, starting a new page when the
// bottom margin is reached.
func paginate(lines []line) [][]placed {
	var (
		pages [][]placed
		cur   []placed
		y     = marginTop
	)
	for _, l := range lines {
		lead := l.size + 5
		if y-lead < marginBottom && len(cur) > 0 {
			pages = append(pages, cur)
			cur, y = nil, marginTop
		}
		y -= lead
		cur = append(cur, placed{line: l, y: y})
	}
	if len(cur) > 0 || len(pages) == 0 {
		pages = append(pages, cur)
	}
	return pages
}

type document struct {
	buf     bytes.Buffer
	offsets []int
}

func newDocument() *document {
	return &document{offsets: []int{0}}
}

func (d *document) object(num int, body string) {
	for len(d.offsets) <= num {
		d.offsets = append(d.offsets, 0)
	}
	d.offsets[num] = d.buf.Len()
	fmt.Fprintf(&d.buf, "%d 0 obj\n%s\nendobj\n", num, body)
}

// Object layout: 1 catalog, 2 page tree, 3 font, then a page and its
// content stream per page.
func (d *document) write(pages [][]placed) ([]byte, error) {
	d.buf.WriteString("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	d.object(1, "<< /Type /Catalog /Pages 2 0 R >>")
	d.object(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d /MediaBox [0 0 %g %g] >>",
		strings.Join(kids, " "), len(pages), pageWidth, pageHeight))
	d.object(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	for i, p := range pages {
		pageNum, contentNum := 4+2*i, 5+2*i
		d.object(pageNum, fmt.Sprintf("<< /Type /Page /Parent 2 0 R /Contents %d 0 R /Resources << /Font << /F1 3 0 R >> >> >>", contentNum))

		stream, err := deflate(content(p))
		if err != nil {
			return nil, fmt.Errorf("compress page %d: %w", i+1, err)
		}
		d.offsets = append(d.offsets, d.buf.Len())
		fmt.Fprintf(&d.buf, "%d 0 obj\n<< /Length %d /Filter /FlateDecode >>\nstream\n", contentNum, len(stream))
		d.buf.Write(stream)
		d.buf.WriteString("\nendstream\nendobj\n")
	}

	xref := d.buf.Len()
	fmt.Fprintf(&d.buf, "xref\n0 %d\n0000000000 65535 f \n", len(d.offsets))
	for _, off := range d.offsets[1:] {
		fmt.Fprintf(&d.buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&d.buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(d.offsets), xref)
	return d.buf.Bytes(), nil
}

// content draws every non-empty line as its own text object.
func content(lines []placed) []byte {
	var b bytes.Buffer
	for _, l := range lines {
		if l.text == "" {
			continue
		}
		fmt.Fprintf(&b, "BT /F1 %g Tf %g %.2f Td (%s) Tj ET\n", l.size, marginX+l.indent, l.y, escape(l.text))
	}
	return b.Bytes()
}

func deflate(data []byte) ([]byte, error) {
	var out bytes.Buffer
	w := zlib.NewWriter(&out)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// escape encodes s as WinAnsi and escapes it for a literal string. Bytes
// outside printable ASCII are written as octal escapes; runes WinAnsi cannot
// represent become '?'.
func escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		c, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			c = '?'
		}
		switch {
		case c == '(' || c == ')' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < 0x20 || c > 0x7e:
			fmt.Fprintf(&b, "\\%03o", c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
