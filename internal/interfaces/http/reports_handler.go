package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SumitSinghvi/invoice-bliss/internal/application/reports"
)

// ReportsHandler serves the dashboard and reports aggregates.
type ReportsHandler struct {
	uc *reports.SummaryUseCase
}

// NewReportsHandler builds the handler.
func NewReportsHandler(uc *reports.SummaryUseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// Dashboard returns the home-screen figures.
// GET /api/dashboard/summary
func (h *ReportsHandler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(h.uc.Dashboard())
}

// Reports returns the reports-screen aggregates.
// GET /api/reports/summary
func (h *ReportsHandler) Reports(c *fiber.Ctx) error {
	return c.JSON(h.uc.Reports())
}
