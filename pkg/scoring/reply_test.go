package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validReply = `{
  "score": 78.6,
  "summary": "Solid backend engineer. Missing some cloud experience.",
  "strengths": ["Go", "PostgreSQL"],
  "gaps": [{"issue": "No AWS", "fix": "Add the AWS project"}],
  "rewrite_suggestions": [{"original": "Wrote code", "improved": "Built a Go service handling 10k rps"}],
  "ats": {
    "ats_score": 64,
    "keywords": {"found": ["Go"], "missing": ["Kubernetes"]},
    "formatting_warnings": [],
    "sections": {"contact": true, "experience": true, "skills": true},
    "ats_tips": ["Add a summary section"]
  }
}`

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{"bare", `{"a":1}`, `{"a":1}`},
		{"fenced", "Here you go:\n```json\n{\"a\":1}\n```\nthanks", `{"a":1}`},
		{"fenced without language", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding prose", `Sure! {"a":{"b":2}} Hope it helps.`, `{"a":{"b":2}}`},
		{"no object", "  nothing here  ", "nothing here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.reply))
		})
	}
}

func TestParseReply(t *testing.T) {
	ev, err := ParseReply("```json\n" + validReply + "\n```")
	require.NoError(t, err)

	assert.Equal(t, 79, ev.Score)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, ev.Strengths)
	assert.Equal(t, []Gap{{Issue: "No AWS", Fix: "Add the AWS project"}}, ev.Gaps)
	assert.Len(t, ev.RewriteSuggestions, 1)
	assert.Equal(t, 64, ev.ATS.Score)
	assert.Equal(t, []string{"Kubernetes"}, ev.ATS.Keywords.Missing)
	assert.Equal(t, Sections{Contact: true, Experience: true, Skills: true}, ev.ATS.Sections)
	assert.NotNil(t, ev.ATS.FormattingWarnings)
	assert.Empty(t, ev.ATS.FormattingWarnings)
}

func TestParseReplyClampsAndCaps(t *testing.T) {
	many := `"` + strings.Repeat(`x", "`, 20) + `x"`
	reply := `{"score": 140, "summary": "ok", "strengths": [` + many + `],
		"gaps": [], "rewrite_suggestions": [],
		"ats": {"ats_score": -3, "keywords": {"found": [` + many + `]}, "ats_tips": [` + many + `]}}`

	ev, err := ParseReply(reply)
	require.NoError(t, err)
	assert.Equal(t, 100, ev.Score)
	assert.Equal(t, 0, ev.ATS.Score)
	assert.Len(t, ev.Strengths, maxStrengths)
	assert.Len(t, ev.ATS.Keywords.Found, maxKeywords)
	assert.Len(t, ev.ATS.Tips, maxATSTips)
	assert.NotNil(t, ev.ATS.Keywords.Missing)
	assert.NotNil(t, ev.Gaps)
}

func TestParseReplyWithoutATS(t *testing.T) {
	ev, err := ParseReply(`{"score": 50, "summary": "ok", "strengths": [], "gaps": [], "rewrite_suggestions": []}`)
	require.NoError(t, err)
	assert.Equal(t, 0, ev.ATS.Score)
	assert.Equal(t, Sections{}, ev.ATS.Sections)
	assert.Equal(t, []string{}, ev.ATS.Tips)
}

func TestParseReplyRejects(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
	}{
		{"empty", "   ", ErrEmptyReply},
		{"not json", "I cannot help with that.", ErrInvalidReply},
		{"truncated", `{"score": 70, "summary": "cut of`, ErrInvalidReply},
		{"score as string", `{"score": "70", "summary": "x", "strengths": [], "gaps": [], "rewrite_suggestions": []}`, ErrInvalidReply},
		{"missing score", `{"summary": "x", "strengths": [], "gaps": [], "rewrite_suggestions": []}`, ErrInvalidReply},
		{"empty summary", `{"score": 1, "summary": "", "strengths": [], "gaps": [], "rewrite_suggestions": []}`, ErrInvalidReply},
		{"missing gaps", `{"score": 1, "summary": "x", "strengths": [], "rewrite_suggestions": []}`, ErrInvalidReply},
		{"null strengths", `{"score": 1, "summary": "x", "strengths": null, "gaps": [], "rewrite_suggestions": []}`, ErrInvalidReply},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReply(tt.reply)
			require.ErrorIs(t, err, tt.err)
		})
	}
}
