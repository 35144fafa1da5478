package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumescan/api/http/handlers"
)

type Handlers struct {
	Health  *handlers.HealthHandler
	Resume  *handlers.ResumeHandler
	History *handlers.HistoryHandler
	Report  *handlers.ReportHandler
}

// Register wires all HTTP routes onto given Fiber app. authMW guards the
// owner-scoped routes; nil leaves them open.
func Register(app *fiber.App, h Handlers, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	guard := func(c *fiber.Ctx) error { return c.Next() }
	if authMW != nil {
		guard = authMW
	}

	rg := v1.Group("/resume")
	rg.Post("/parse", h.Resume.Parse)
	rg.Post("/analyze", guard, h.Resume.Analyze)

	hg := v1.Group("/history", guard)
	hg.Get("/", h.History.List)
	hg.Delete("/", h.History.Clear)

	v1.Post("/report", h.Report.Render)
}
