package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/midbel/hexdump"

	"github.com/artem13815/resumescan/api/http/presenter"
	"github.com/artem13815/resumescan/pkg/history"
	"github.com/artem13815/resumescan/pkg/pdftext"
	"github.com/artem13815/resumescan/pkg/scoring"
)

type ResumeHandler struct {
	extractor *pdftext.Extractor
	scorer    scoring.UseCase
	history   history.UseCase
}

func NewResumeHandler(extractor *pdftext.Extractor, scorer scoring.UseCase, hist history.UseCase) *ResumeHandler {
	return &ResumeHandler{extractor: extractor, scorer: scorer, history: hist}
}

type ParseResponse struct {
	Success bool `json:"success"`
	pdftext.Result
}

// Parse извлекает текст из загруженного PDF-резюме.
// @Summary Extract text from a PDF résumé
// @Tags    resume
// @Accept  multipart/form-data
// @Produce json
// @Param   resume formData file true "PDF résumé, up to 5 MB"
// @Success 200 {object} ParseResponse
// @Failure 400 {object} presenter.ErrorResponse "Missing file, wrong type, too large or not a PDF"
// @Failure 422 {object} presenter.ErrorResponse "No extractable text (scanned PDF)"
// @Failure 500 {object} presenter.ErrorResponse "Internal parse failure"
// @Router  /resume/parse [post]
func (h *ResumeHandler) Parse(c *fiber.Ctx) error {
	fh, err := c.FormFile("resume")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "No file uploaded.")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Failed to read uploaded file.")
	}
	defer file.Close()

	data, err := readAtMost(file, h.extractor.MaxBytes())
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Failed to read uploaded file.")
	}
	res, err := h.extractor.ExtractUpload(fh.Header.Get("Content-Type"), data)
	if err != nil {
		status, msg := h.parseFailure(fh.Filename, err)
		return presenter.Error(c, status, msg)
	}
	return presenter.JSON(c, http.StatusOK, ParseResponse{Success: true, Result: res})
}

func (h *ResumeHandler) parseFailure(filename string, err error) (int, string) {
	var pe *pdftext.ParseError
	switch {
	case errors.Is(err, pdftext.ErrUnsupportedType):
		return http.StatusBadRequest, "Only PDF files are supported."
	case errors.Is(err, pdftext.ErrTooLarge):
		return http.StatusBadRequest, fmt.Sprintf("File too large. Maximum size is %s.", humanBytes(h.extractor.MaxBytes()))
	case errors.Is(err, pdftext.ErrNotPDF):
		return http.StatusBadRequest, "Invalid PDF file."
	case errors.Is(err, pdftext.ErrNoText):
		return http.StatusUnprocessableEntity, "Could not extract text from this PDF. It may be a scanned or image-based PDF. Please use a text-based PDF."
	case errors.As(err, &pe):
		log.Printf("pdf parse error in %q (strategy %s) at offset %d: %v\n%s",
			filename, h.extractor.Strategy(), pe.Offset, pe.Cause, hexdump.Dump(pe.Context))
	default:
		log.Printf("pdf parse error in %q: %v", filename, err)
	}
	return http.StatusInternalServerError, "Failed to parse PDF. Please try a different file."
}

type AnalyzeRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
	Filename       string `json:"filename"`
	JobTitle       string `json:"jobTitle"`
}

type AnalyzeResponse struct {
	Success bool `json:"success"`
	scoring.Evaluation
}

// Analyze сравнивает текст резюме с описанием вакансии через LLM.
// @Summary Score a résumé against a job description
// @Tags    resume
// @Accept  json
// @Produce json
// @Param   body body AnalyzeRequest true "Résumé text and job description"
// @Security BearerAuth
// @Success 200 {object} AnalyzeResponse
// @Failure 400 {object} presenter.ErrorResponse "Missing input or job description too short"
// @Failure 500 {object} presenter.ErrorResponse "AI service failure"
// @Router  /resume/analyze [post]
func (h *ResumeHandler) Analyze(c *fiber.Ctx) error {
	var req AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid request body.")
	}
	ev, err := h.scorer.Evaluate(c.UserContext(), scoring.Request{
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescription,
	})
	if err != nil {
		switch {
		case errors.Is(err, scoring.ErrEmptyInput):
			return presenter.Error(c, http.StatusBadRequest, "Resume text and job description are required.")
		case errors.Is(err, scoring.ErrJobDescriptionTooShort):
			return presenter.Error(c, http.StatusBadRequest, "Job description is too short. Please paste the full job description.")
		case errors.Is(err, scoring.ErrEmptyReply):
			log.Printf("analyze: %v", err)
			return presenter.Error(c, http.StatusInternalServerError, "Empty response from AI. Please try again.")
		case errors.Is(err, scoring.ErrInvalidReply):
			log.Printf("analyze: %v", err)
			return presenter.Error(c, http.StatusInternalServerError, "Invalid AI response format. Please try again.")
		case errors.Is(err, scoring.ErrModel):
			log.Printf("analyze: %v", err)
			return presenter.Error(c, http.StatusInternalServerError, "AI service error. Please try again.")
		default:
			log.Printf("analyze: %v", err)
			return presenter.Error(c, http.StatusInternalServerError, "Analysis failed. Please try again.")
		}
	}

	if h.history != nil {
		_, err := h.history.Add(c.UserContext(), ownerFrom(c), history.Record{
			Filename: strings.TrimSpace(req.Filename),
			JobTitle: strings.TrimSpace(req.JobTitle),
			Score:    ev.Score,
			ATSScore: ev.ATS.Score,
			Summary:  ev.Summary,
		})
		if err != nil {
			// история не должна ломать ответ
			log.Printf("analyze: save history: %v", err)
		}
	}
	return presenter.JSON(c, http.StatusOK, AnalyzeResponse{Success: true, Evaluation: ev})
}

// readAtMost reads up to max+1 bytes so that an oversized upload is still
// detected by the extractor without buffering all of it.
func readAtMost(f multipart.File, max int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(f, max+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return b, nil
}

func humanBytes(n int64) string {
	const mb = 1 << 20
	if n >= mb && n%mb == 0 {
		return fmt.Sprintf("%dMB", n/mb)
	}
	if n >= 1<<10 && n%(1<<10) == 0 {
		return fmt.Sprintf("%dKB", n>>10)
	}
	return fmt.Sprintf("%d bytes", n)
}
