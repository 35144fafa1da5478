package scoring

import "fmt"

const systemPrompt = "You are an expert technical recruiter and career coach with 10+ years of experience, also specialized in ATS (Applicant Tracking System) optimization."

const replySchema = `{
  "score": <number 0-100>,
  "summary": "<2 sentence overview of the candidate's fit>",
  "strengths": ["<strength 1>", "<strength 2>", "<strength 3>"],
  "gaps": [
    { "issue": "<gap 1>", "fix": "<specific actionable advice to fix this gap>" }
  ],
  "rewrite_suggestions": [
    { "original": "<original bullet from resume>", "improved": "<improved version tailored to JD>" }
  ],
  "ats": {
    "ats_score": <number 0-100, overall ATS compatibility score>,
    "keywords": {
      "found": ["<keyword found in both resume and JD>"],
      "missing": ["<important JD keyword missing from resume>"]
    },
    "formatting_warnings": ["<warning about tables, columns, headers, graphics, or other ATS-unfriendly formatting detected>"],
    "sections": {
      "contact": <true if contact info section detected>,
      "summary": <true if professional summary/objective detected>,
      "experience": <true if work experience section detected>,
      "education": <true if education section detected>,
      "skills": <true if skills section detected>,
      "certifications": <true if certifications section detected>
    },
    "ats_tips": ["<specific actionable tip to improve ATS score>"]
  }
}`

const scoringGuide = `Scoring guide for main score:
- 80-100: Strong match, most requirements met
- 60-79: Good match, some gaps
- 40-59: Partial match, significant gaps
- 0-39: Weak match, major gaps

ATS score guide:
- 80-100: Well optimized for ATS parsing
- 60-79: Mostly compatible, minor issues
- 40-59: Several ATS issues that may cause filtering
- 0-39: Major ATS problems, likely to be filtered out

For formatting_warnings: look for indicators in the text like unusual characters, garbled text, missing spaces between words (which suggests columns/tables), or very sparse text (which suggests graphics/images). Return an empty array [] if no formatting issues detected.

Be specific and actionable. Reference actual skills and keywords from the job description.`

func userPrompt(req Request) string {
	return fmt.Sprintf(
		"Analyze the following resume against the job description and return a detailed evaluation.\n\nRESUME:\n%s\n\nJOB DESCRIPTION:\n%s\n\nReturn ONLY a valid JSON object with exactly this structure, no markdown, no explanation, no code blocks:\n%s\n\n%s",
		req.ResumeText, req.JobDescription, replySchema, scoringGuide,
	)
}
