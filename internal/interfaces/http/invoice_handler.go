package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/SumitSinghvi/invoice-bliss/internal/application/billing"
	"github.com/SumitSinghvi/invoice-bliss/internal/application/dto"
	"github.com/SumitSinghvi/invoice-bliss/internal/domain"
)

// InvoiceHandler serves the invoice endpoints.
type InvoiceHandler struct {
	uc    *billing.InvoiceUseCase
	pdfUC *billing.PDFUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdfUC *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdfUC: pdfUC}
}

// Create issues a new invoice with engine-computed totals.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
	}
	invoice, err := h.uc.Create(in)
	if err != nil {
		return mapDomainError(c, err, "customer not found")
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// List returns invoices newest-first. ?status= filters by payment status,
// ?q= searches invoice number and party name.
// GET /api/invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	invoices, err := h.uc.List(c.Query("status"), c.Query("q"))
	if err != nil {
		return mapDomainError(c, err, "")
	}
	return c.JSON(invoices)
}

// GetByID returns one invoice with full detail.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	invoice, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err, "invoice not found")
	}
	return c.JSON(invoice)
}

// UpdateStatus records a payment state change (mark paid, partial payment,
// flag overdue).
// PATCH /api/invoices/:id/status
func (h *InvoiceHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
	}
	invoice, err := h.uc.UpdateStatus(c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err, "invoice not found")
	}
	return c.JSON(invoice)
}

// Delete removes an invoice. Missing ids still return 204 — the operation is
// idempotent all the way down to the store.
// DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	h.uc.Delete(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadPDF streams the rendered invoice document.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DownloadInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err, "invoice not found")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// mapDomainError translates application errors into HTTP responses.
func mapDomainError(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: notFoundMsg})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
