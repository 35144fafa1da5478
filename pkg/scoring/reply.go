package scoring

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
)

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// extractJSON pulls the JSON payload out of a model reply: a fenced block
// wins, otherwise the span from the first '{' to the last '}'.
func extractJSON(reply string) string {
	if m := fencedJSON.FindStringSubmatch(reply); m != nil {
		return strings.TrimSpace(m[1])
	}
	start, end := strings.Index(reply, "{"), strings.LastIndex(reply, "}")
	if start != -1 && end > start {
		return strings.TrimSpace(reply[start : end+1])
	}
	return strings.TrimSpace(reply)
}

type rawATS struct {
	Score    *float64 `json:"ats_score"`
	Keywords struct {
		Found   []string `json:"found"`
		Missing []string `json:"missing"`
	} `json:"keywords"`
	FormattingWarnings []string `json:"formatting_warnings"`
	Sections           Sections `json:"sections"`
	Tips               []string `json:"ats_tips"`
}

type rawEvaluation struct {
	Score              *float64  `json:"score"`
	Summary            string    `json:"summary"`
	Strengths          []string  `json:"strengths"`
	Gaps               []Gap     `json:"gaps"`
	RewriteSuggestions []Rewrite `json:"rewrite_suggestions"`
	ATS                *rawATS   `json:"ats"`
}

// ParseReply decodes and normalizes a model reply.
func ParseReply(reply string) (Evaluation, error) {
	if strings.TrimSpace(reply) == "" {
		return Evaluation{}, ErrEmptyReply
	}
	var raw rawEvaluation
	if err := json.Unmarshal([]byte(extractJSON(reply)), &raw); err != nil {
		return Evaluation{}, fmt.Errorf("%w: %v", ErrInvalidReply, err)
	}
	switch {
	case raw.Score == nil:
		return Evaluation{}, fmt.Errorf("%w: score is missing", ErrInvalidReply)
	case raw.Summary == "":
		return Evaluation{}, fmt.Errorf("%w: summary is missing", ErrInvalidReply)
	case raw.Strengths == nil, raw.Gaps == nil, raw.RewriteSuggestions == nil:
		return Evaluation{}, fmt.Errorf("%w: strengths, gaps and rewrite_suggestions must be arrays", ErrInvalidReply)
	}

	ev := Evaluation{
		Score:              clampScore(*raw.Score),
		Summary:            raw.Summary,
		Strengths:          capped(raw.Strengths, maxStrengths),
		Gaps:               capped(raw.Gaps, maxGaps),
		RewriteSuggestions: capped(raw.RewriteSuggestions, maxRewrites),
	}
	ats := raw.ATS
	if ats == nil {
		ats = &rawATS{}
	}
	ev.ATS = ATS{
		Keywords: Keywords{
			Found:   capped(ats.Keywords.Found, maxKeywords),
			Missing: capped(ats.Keywords.Missing, maxKeywords),
		},
		FormattingWarnings: capped(ats.FormattingWarnings, maxFormattingWarnings),
		Sections:           ats.Sections,
		Tips:               capped(ats.Tips, maxATSTips),
	}
	if ats.Score != nil {
		ev.ATS.Score = clampScore(*ats.Score)
	}
	return ev, nil
}

func clampScore(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Min(100, math.Max(0, math.Round(v))))
}

func capped[T any](s []T, n int) []T {
	if len(s) > n {
		s = s[:n]
	}
	if s == nil {
		return []T{}
	}
	return s
}
