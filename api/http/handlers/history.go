package handlers

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumescan/api/http/presenter"
	"github.com/artem13815/resumescan/pkg/history"
)

type HistoryHandler struct {
	uc       history.UseCase
	maxLimit int
}

// NewHistoryHandler: keep is the number of records the service retains per
// owner and caps the limit query parameter.
func NewHistoryHandler(uc history.UseCase, keep int) *HistoryHandler {
	if keep <= 0 {
		keep = history.DefaultLimit
	}
	return &HistoryHandler{uc: uc, maxLimit: keep}
}

type HistoryResponse struct {
	Records []history.Record `json:"records"`
	Stats   history.Stats    `json:"stats"`
}

// List: последние сканы владельца и сводная статистика.
// @Summary Scan history, newest first
// @Tags    history
// @Produce json
// @Param   limit  query int false "Max records (default and cap: HISTORY_LIMIT)"
// @Param   offset query int false "Records to skip"
// @Security BearerAuth
// @Success 200 {object} HistoryResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /history [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	p := pageFrom(c, h.maxLimit)
	recs, stats, err := h.uc.List(c.UserContext(), ownerFrom(c), p.Limit, p.Offset)
	if err != nil {
		log.Printf("history list: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "Failed to load history.")
	}
	return presenter.JSON(c, http.StatusOK, HistoryResponse{Records: recs, Stats: stats})
}

// Clear removes the caller's history.
// @Summary Clear scan history
// @Tags    history
// @Security BearerAuth
// @Success 204
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /history [delete]
func (h *HistoryHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.UserContext(), ownerFrom(c)); err != nil {
		log.Printf("history clear: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "Failed to clear history.")
	}
	return c.SendStatus(http.StatusNoContent)
}
