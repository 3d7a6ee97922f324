package billing

import (
	"context"

	"github.com/SumitSinghvi/invoice-bliss/internal/domain/entity"
)

// BusinessProfile identifies the issuing business on rendered documents.
// It comes from configuration; there is no multi-tenant surface.
type BusinessProfile struct {
	Name    string
	Phone   string
	Email   string
	Address string
	GSTIN   string
}

// InvoicePDFGenerator renders the printable document for an invoice.
// Implemented by infrastructure/pdf.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, business BusinessProfile, invoice entity.Invoice) ([]byte, error)
}
