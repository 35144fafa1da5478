package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumescan/api/http/presenter"
	"github.com/artem13815/resumescan/pkg/report"
)

type ReportHandler struct {
	now func() time.Time
}

func NewReportHandler() *ReportHandler { return &ReportHandler{now: time.Now} }

// Render returns the evaluation as a downloadable PDF.
// @Summary Export an evaluation as PDF
// @Tags    report
// @Accept  json
// @Produce application/pdf
// @Param   body body report.Input true "Evaluation to render"
// @Success 200 {file} binary
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /report [post]
func (h *ReportHandler) Render(c *fiber.Ctx) error {
	var in report.Input
	if err := c.BodyParser(&in); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid request body.")
	}
	data, err := report.Render(in, h.now())
	if err != nil {
		if errors.Is(err, report.ErrMissingEvaluation) {
			return presenter.Error(c, http.StatusBadRequest, "Evaluation is required.")
		}
		log.Printf("report: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "Failed to build report.")
	}
	return presenter.Attachment(c, "application/pdf", report.Filename(in.Filename), data)
}
