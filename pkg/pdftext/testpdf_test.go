package pdftext

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/require"
)

// buildPDF returns a well-formed PDF with one page per content stream.
// When compress is set every content stream is FlateDecode encoded.
func buildPDF(t testing.TB, compress bool, contents ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	n := len(contents)
	fontObj := 3 + 2*n
	offsets := make([]int, fontObj+1)
	writeObj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	kids := make([]string, n)
	for i := range contents {
		kids[i] = fmt.Sprintf("%d 0 R", 3+2*i)
	}
	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), n))
	for i, content := range contents {
		page, stream := 3+2*i, 4+2*i
		writeObj(page, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents %d 0 R /Resources << /Font << /F1 %d 0 R >> >> >>",
			stream, fontObj))
		body, filter := []byte(content), ""
		if compress {
			body, filter = deflate(t, bytes.NewReader(body)), " /Filter /FlateDecode"
		}
		offsets[stream] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Length %d%s >>\nstream\n", stream, len(body), filter)
		buf.Write(body)
		buf.WriteString("\nendstream\nendobj\n")
	}
	writeObj(fontObj, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(offsets))
	for _, off := range offsets[1:] {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets), xref)
	return buf.Bytes()
}

// linesContent draws each line in its own text object, 20 units apart.
func linesContent(lines ...string) string {
	var b strings.Builder
	for i, l := range lines {
		fmt.Fprintf(&b, "BT /F1 12 Tf 72 %d Td (%s) Tj ET\n", 720-20*i, escapeLiteral(l))
	}
	return b.String()
}

func escapeLiteral(s string) string {
	return strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`).Replace(s)
}

// deflate zlib-compresses everything r yields.
func deflate(t testing.TB, r io.Reader) []byte {
	t.Helper()
	var z bytes.Buffer
	w := zlib.NewWriter(&z)
	_, err := io.Copy(w, r)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return z.Bytes()
}

type zeros struct{}

func (zeros) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

// zeroStream is n compressed zero bytes, the shape of a blank raster.
func zeroStream(t testing.TB, n int64) []byte {
	return deflate(t, io.LimitReader(zeros{}, n))
}

// streamObj renders one indirect stream object. dict is spliced into the
// stream dictionary next to /Length.
func streamObj(num int, dict string, body []byte) string {
	return fmt.Sprintf("%d 0 obj\n<< %s /Length %d >>\nstream\n%s\nendstream\nendobj\n", num, dict, len(body), body)
}
