package scoring

import (
	"context"
	"errors"
)

var (
	ErrEmptyInput             = errors.New("resume text and job description are required")
	ErrJobDescriptionTooShort = errors.New("job description is too short, please paste the full job description")
	ErrModel                  = errors.New("AI service error, please try again")
	ErrEmptyReply             = errors.New("empty response from AI, please try again")
	ErrInvalidReply           = errors.New("invalid AI response format, please try again")
)

// MinJobDescriptionChars: минимальная длина описания вакансии после trim.
const MinJobDescriptionChars = 20

// Limits applied to the lists of a parsed evaluation.
const (
	maxStrengths          = 6
	maxGaps               = 6
	maxRewrites           = 5
	maxKeywords           = 12
	maxFormattingWarnings = 5
	maxATSTips            = 5
)

type Request struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
}

type Gap struct {
	Issue string `json:"issue"`
	Fix   string `json:"fix"`
}

type Rewrite struct {
	Original string `json:"original"`
	Improved string `json:"improved"`
}

type Keywords struct {
	Found   []string `json:"found"`
	Missing []string `json:"missing"`
}

// Sections reports which résumé sections the model detected.
type Sections struct {
	Contact        bool `json:"contact"`
	Summary        bool `json:"summary"`
	Experience     bool `json:"experience"`
	Education      bool `json:"education"`
	Skills         bool `json:"skills"`
	Certifications bool `json:"certifications"`
}

// ATS: оценка совместимости резюме с ATS-парсерами.
type ATS struct {
	Score              int      `json:"ats_score"`
	Keywords           Keywords `json:"keywords"`
	FormattingWarnings []string `json:"formatting_warnings"`
	Sections           Sections `json:"sections"`
	Tips               []string `json:"ats_tips"`
}

// Evaluation is a normalized model verdict: scores are clamped to 0..100 and
// every list is capped and never nil.
type Evaluation struct {
	Score              int       `json:"score"`
	Summary            string    `json:"summary"`
	Strengths          []string  `json:"strengths"`
	Gaps               []Gap     `json:"gaps"`
	RewriteSuggestions []Rewrite `json:"rewrite_suggestions"`
	ATS                ATS       `json:"ats"`
}

// UseCase scores a résumé against a job description.
type UseCase interface {
	Evaluate(ctx context.Context, req Request) (Evaluation, error)
}
