package report

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumescan/pkg/pdftext"
	"github.com/artem13815/resumescan/pkg/scoring"
)

var generatedAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func sampleEvaluation() scoring.Evaluation {
	return scoring.Evaluation{
		Score:     79,
		Summary:   "Strong Go background (8 years) with a café-sized gap in cloud tooling.",
		Strengths: []string{"Go services at scale", "PostgreSQL tuning"},
		Gaps:      []scoring.Gap{{Issue: "No AWS experience", Fix: "Mention the S3 migration project"}},
		RewriteSuggestions: []scoring.Rewrite{
			{Original: "Worked on backend", Improved: "Built a Go billing API serving 10k rps"},
		},
		ATS: scoring.ATS{
			Score:    64,
			Keywords: scoring.Keywords{Found: []string{"Go", "Redis"}, Missing: []string{"Kubernetes"}},
			Sections: scoring.Sections{Contact: true, Experience: true},
			Tips:     []string{"Add a skills section"},
		},
	}
}

func TestRenderRoundTrip(t *testing.T) {
	data, err := Render(Input{Filename: "jane.pdf", JobTitle: "Backend Engineer", Evaluation: sampleEvaluation()}, generatedAt)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "%PDF-1.4\n"))

	res, err := pdftext.New(nil, 0).Extract(data)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pages)
	for _, want := range []string{
		"Resume Match Report",
		"File: jane.pdf Role: Backend Engineer",
		"Match score: 79/100 ATS score: 64/100",
		"Strong Go background (8 years) with a café-sized gap in cloud tooling.",
		"- No AWS experience Fix: Mention the S3 migration project",
		"Found: Go, Redis Missing: Kubernetes",
		"Contact: yes Summary: no Experience: yes",
		"Generated: 2026-03-14 09:30 UTC",
	} {
		assert.Contains(t, res.Text, want)
	}
	assert.NotContains(t, res.Text, "Formatting warnings")
}

func TestRenderPaginates(t *testing.T) {
	ev := sampleEvaluation()
	ev.Strengths = nil
	for i := range 120 {
		ev.Strengths = append(ev.Strengths, fmt.Sprintf("strength number %d", i))
	}
	data, err := Render(Input{Evaluation: ev}, generatedAt)
	require.NoError(t, err)

	res, err := pdftext.New(nil, 0).Extract(data)
	require.NoError(t, err)
	assert.Greater(t, res.Pages, 1)
	assert.Contains(t, res.Text, "- strength number 0 - strength number 1 ")
	assert.Contains(t, res.Text, "- strength number 119")
}

func TestRenderReadableByLibrary(t *testing.T) {
	data, err := Render(Input{Evaluation: sampleEvaluation()}, generatedAt)
	require.NoError(t, err)

	res, err := pdftext.New(pdftext.Library(), 0).Extract(data)
	require.NoError(t, err)
	assert.Contains(t, res.Text, "Resume Match Report")
}

func TestRenderRequiresEvaluation(t *testing.T) {
	_, err := Render(Input{Filename: "x.pdf"}, generatedAt)
	require.ErrorIs(t, err, ErrMissingEvaluation)
}

func TestEscape(t *testing.T) {
	assert.Equal(t, `a\(b\)c\\`, escape(`a(b)c\`))
	assert.Equal(t, `caf\351 \200 ?`, escape("café € ☃"))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, wrap("   ", 10))
	assert.Equal(t, []string{"one two", "three"}, wrap("one two three", 8))
	assert.Equal(t, []string{"abcd", "efgh", "ij k"}, wrap("abcdefghij k", 4))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "jane-doe-cv-report.pdf", Filename("jane doe cv.pdf"))
	assert.Equal(t, "resume-report.pdf", Filename(""))
	assert.Equal(t, "resume-report.pdf", Filename("(((.pdf"))
}
