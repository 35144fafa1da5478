package pdftext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a b c", normalize("  a\n\n b\t\r\nc  "))
	assert.Equal(t, "Hello", normalize("H\x00e\x01llo"))
	assert.Equal(t, "café", normalize("café"))
	assert.Equal(t, "a b", normalize("a b"))
}

func TestAssembleThreshold(t *testing.T) {
	_, err := assemble(strings.Repeat("a", 49), 1, 50)
	require.ErrorIs(t, err, ErrNoText)

	res, err := assemble(strings.Repeat("a", 50), 1, 50)
	require.NoError(t, err)
	assert.Equal(t, 1, res.WordCount)

	_, err = assemble("  \n ", 1, 1)
	require.ErrorIs(t, err, ErrNoText)
}

func TestAssembleWordCountMatchesText(t *testing.T) {
	res, err := assemble("Senior  Go\nengineer\t with  ten\n\nyears of distributed systems work", 2, 10)
	require.NoError(t, err)
	assert.Equal(t, "Senior Go engineer with ten years of distributed systems work", res.Text)
	assert.Equal(t, len(strings.Fields(res.Text)), res.WordCount)
	assert.Equal(t, 10, res.WordCount)
	assert.Equal(t, 2, res.Pages)
}

func TestCountPages(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 1},
		{"<< /Type /Pages /Count 2 >>", 1},
		{"<< /Type /Page >> << /Type/Page/Parent 2 0 R >> << /Type /Pages >>", 2},
		{"/Type /Page", 1},
		{"/Type /Page\n/Type /Page\n/Type /Page\n", 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, countPages([]byte(tt.in)), tt.in)
	}
}
