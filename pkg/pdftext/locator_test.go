package pdftext

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blockBodies(buf string) []string {
	var out []string
	for b := range blocks([]byte(buf)) {
		out = append(out, buf[b.Start:b.End])
	}
	return out
}

func TestBlocks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"none", "no text objects here", nil},
		{"two blocks with noise", "\x00 BT (a) Tj ET\n\xff\xfe q Q BT (b) Tj ET", []string{" (a) Tj ", " (b) Tj "}},
		{"ET inside literal", "BT (GET ET) Tj ET", []string{" (GET ET) Tj "}},
		{"markers must be whole tokens", "OBTAIN BT (x) Tj ETC ET", []string{" (x) Tj ETC "}},
		{"missing ET runs to end", "BT (a) Tj", []string{" (a) Tj"}},
		{"unterminated literal closes at next ET", "BT (broken Tj ET\nBT (ok) Tj ET", []string{" (broken Tj ", " (ok) Tj "}},
		{"unbalanced literal closes at its ET", "BT 72 700 Td (a :( b) Tj ET\nBT (ok) Tj ET", []string{" 72 700 Td (a :( b) Tj ", " (ok) Tj "}},
		{"comment hides ET", "BT % ET\n(a) Tj ET", []string{" % ET\n(a) Tj "}},
		{"delimiter-adjacent markers", "[(x)]BT(y)Tj ET", []string{"(y)Tj "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, blockBodies(tt.in))
		})
	}
}

func TestBlocksStopsWhenConsumerStops(t *testing.T) {
	n := 0
	for range blocks([]byte("BT ET BT ET BT ET")) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestSkipLiteralStopsAtET(t *testing.T) {
	buf := []byte("(a :( b) Tj ET BT (c) Tj ET")
	end, ok := skipLiteral(buf, 0)
	assert.False(t, ok)
	assert.Equal(t, strings.Index(string(buf), "ET"), end)

	end, ok = skipLiteral([]byte("(9am ET (remote))"), 0)
	assert.True(t, ok)
	assert.Equal(t, 17, end)
}

func TestUnbalancedLiteralsScanInLinearTime(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		unit     string
		suffix   string
		count    int
		wantText string
	}{
		{"one block each", "", "BT 72 700 Td (a :( b) Tj ET\n", "", 150_000, "a :( b"},
		{"one huge block", "BT ", "(a :( b) Tj ", "ET", 300_000, "a :( b"},
		{"never closed", "", "BT (a Tj ET\n", "", 300_000, ""},
		{"closed only at the end", "", "BT (a Tj ET\n", ")", 300_000, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := []byte(tt.prefix + strings.Repeat(tt.unit, tt.count) + tt.suffix)
			cur := 0
			start := time.Now()
			frags := scanFragments(buf, &cur)
			require.Less(t, time.Since(start), 5*time.Second, "%d bytes", len(buf))

			if tt.wantText != "" {
				require.NotEmpty(t, frags)
				assert.Equal(t, tt.wantText, frags[0].Text)
			}
		})
	}
}
