package billing

import (
	"context"
	"fmt"

	"github.com/SumitSinghvi/invoice-bliss/internal/domain"
	"github.com/SumitSinghvi/invoice-bliss/internal/domain/repository"
)

// PDFUseCase renders the printable document of an invoice.
type PDFUseCase struct {
	store     repository.Store
	business  BusinessProfile
	generator InvoicePDFGenerator
}

// NewPDFUseCase builds the use case.
func NewPDFUseCase(store repository.Store, business BusinessProfile, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{store: store, business: business, generator: generator}
}

// DownloadInvoicePDF loads the invoice and renders it.
//
// Returns (pdfBytes, filename, nil) on success, domain.ErrNotFound if the
// invoice does not exist.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) ([]byte, string, error) {
	inv, ok := uc.store.GetInvoice(invoiceID)
	if !ok {
		return nil, "", domain.ErrNotFound
	}
	pdfBytes, err := uc.generator.GenerateInvoicePDF(ctx, uc.business, inv)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: render invoice %s: %w", inv.InvoiceNumber, err)
	}
	return pdfBytes, inv.InvoiceNumber + ".pdf", nil
}
