// Package report renders a scan evaluation as a small PDF 1.4 document.
package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/artem13815/resumescan/pkg/scoring"
)

var ErrMissingEvaluation = errors.New("evaluation is required")

type Input struct {
	Filename   string             `json:"filename"`
	JobTitle   string             `json:"jobTitle"`
	Evaluation scoring.Evaluation `json:"evaluation"`
}

const (
	titleSize   = 16.0
	headingSize = 12.0
	bodySize    = 10.0
	footerSize  = 8.0
)

type line struct {
	size   float64
	indent float64
	text   string
}

// Render lays out the evaluation and returns the PDF bytes.
func Render(in Input, now time.Time) ([]byte, error) {
	if strings.TrimSpace(in.Evaluation.Summary) == "" {
		return nil, ErrMissingEvaluation
	}
	return newDocument().write(paginate(layout(in, now)))
}

// Filename returns the attachment name for a report about the given upload.
func Filename(upload string) string {
	base := strings.TrimSuffix(strings.TrimSpace(upload), ".pdf")
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, base)
	base = strings.Trim(base, "-")
	if base == "" {
		return "resume-report.pdf"
	}
	return base + "-report.pdf"
}

func layout(in Input, now time.Time) []line {
	ev := in.Evaluation
	var out []line
	add := func(size, indent float64, text string) {
		for _, t := range wrap(text, maxChars(size, indent)) {
			out = append(out, line{size: size, indent: indent, text: t})
		}
	}
	heading := func(text string) {
		out = append(out, line{size: bodySize})
		add(headingSize, 0, text)
	}
	bullets := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		heading(title)
		for _, it := range items {
			add(bodySize, 0, "- "+it)
		}
	}

	add(titleSize, 0, "Resume Match Report")
	meta := []string{}
	if in.Filename != "" {
		meta = append(meta, "File: "+in.Filename)
	}
	if in.JobTitle != "" {
		meta = append(meta, "Role: "+in.JobTitle)
	}
	if len(meta) > 0 {
		add(bodySize, 0, strings.Join(meta, "   "))
	}
	out = append(out, line{size: bodySize})
	add(headingSize, 0, fmt.Sprintf("Match score: %d/100   ATS score: %d/100", ev.Score, ev.ATS.Score))

	heading("Summary")
	add(bodySize, 0, ev.Summary)
	bullets("Strengths", ev.Strengths)

	if len(ev.Gaps) > 0 {
		heading("Gaps")
		for _, g := range ev.Gaps {
			add(bodySize, 0, "- "+g.Issue)
			add(bodySize, 12, "Fix: "+g.Fix)
		}
	}
	if len(ev.RewriteSuggestions) > 0 {
		heading("Rewrite suggestions")
		for _, r := range ev.RewriteSuggestions {
			add(bodySize, 0, "- Before: "+r.Original)
			add(bodySize, 12, "After: "+r.Improved)
		}
	}

	heading("ATS keywords")
	add(bodySize, 0, "Found: "+listOrNone(ev.ATS.Keywords.Found))
	add(bodySize, 0, "Missing: "+listOrNone(ev.ATS.Keywords.Missing))

	s := ev.ATS.Sections
	heading("Sections detected")
	add(bodySize, 0, fmt.Sprintf("Contact: %s   Summary: %s   Experience: %s",
		yesNo(s.Contact), yesNo(s.Summary), yesNo(s.Experience)))
	add(bodySize, 0, fmt.Sprintf("Education: %s   Skills: %s   Certifications: %s",
		yesNo(s.Education), yesNo(s.Skills), yesNo(s.Certifications)))

	bullets("Formatting warnings", ev.ATS.FormattingWarnings)
	bullets("ATS tips", ev.ATS.Tips)

	out = append(out, line{size: bodySize})
	add(footerSize, 0, "Generated: "+now.UTC().Format("2006-01-02 15:04 MST"))
	return out
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// maxChars approximates how many Helvetica glyphs fit on a line.
func maxChars(size, indent float64) int {
	return int((contentWidth - indent) / (size * 0.5))
}

// wrap splits text on word boundaries into lines of at most width runes.
// Words longer than width are cut.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var (
		lines []string
		cur   []rune
	)
	for _, w := range words {
		rw := []rune(w)
		for len(rw) > width {
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = nil
			}
			lines = append(lines, string(rw[:width]))
			rw = rw[width:]
		}
		switch {
		case len(cur) == 0:
			cur = append(cur, rw...)
		case len(cur)+1+len(rw) <= width:
			cur = append(append(cur, ' '), rw...)
		default:
			lines = append(lines, string(cur))
			cur = append([]rune(nil), rw...)
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}
