package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SumitSinghvi/invoice-bliss/internal/application/billing"
	"github.com/SumitSinghvi/invoice-bliss/internal/application/reports"
	"github.com/SumitSinghvi/invoice-bliss/pkg/logger"
)

// RouterDeps are the router's dependencies.
type RouterDeps struct {
	CustomerUC *billing.CustomerUseCase
	InvoiceUC  *billing.InvoiceUseCase
	InvoicePDF *billing.PDFUseCase
	ReportsUC  *reports.SummaryUseCase
	Log        *logger.Logger
}

// Router registers the API routes. There is no authentication layer: the app
// is single-user by design.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequestLogger(deps.Log))

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)

	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDF)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Patch("/:id/status", invoiceHandler.UpdateStatus)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	reportsHandler := NewReportsHandler(deps.ReportsUC)
	api.Get("/dashboard/summary", reportsHandler.Dashboard)
	api.Get("/reports/summary", reportsHandler.Reports)
}
