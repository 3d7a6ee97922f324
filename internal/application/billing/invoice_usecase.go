package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SumitSinghvi/invoice-bliss/internal/application/dto"
	"github.com/SumitSinghvi/invoice-bliss/internal/domain"
	domainbilling "github.com/SumitSinghvi/invoice-bliss/internal/domain/billing"
	"github.com/SumitSinghvi/invoice-bliss/internal/domain/entity"
	"github.com/SumitSinghvi/invoice-bliss/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// InvoiceUseCase covers the invoice screens: create, browse/search, detail,
// record payments, delete.
//
// The store stays free of validation and arithmetic; everything the spec
// leaves to "the edge" — required fields, numeric ranges, running the billing
// formulas — happens here before the store is touched.
type InvoiceUseCase struct {
	store repository.Store
	now   func() time.Time
}

// NewInvoiceUseCase builds the use case.
func NewInvoiceUseCase(store repository.Store) *InvoiceUseCase {
	return &InvoiceUseCase{store: store, now: time.Now}
}

// Create issues a new invoice in one atomic operation: it validates the
// draft, snapshots the party, computes every line amount and the invoice
// rollups, assigns the next sequential number and saves. New invoices start
// unpaid with nothing collected.
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CustomerID == "" {
		return nil, fmt.Errorf("%w: customer is required", domain.ErrInvalidInput)
	}
	customer, ok := uc.store.GetCustomer(in.CustomerID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", domain.ErrInvalidInput)
	}
	if in.DueDate == "" {
		return nil, fmt.Errorf("%w: due date is required", domain.ErrInvalidInput)
	}
	dueDate, err := time.Parse(dateLayout, in.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: due date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	issueDate := uc.now().Truncate(24 * time.Hour)
	if in.Date != "" {
		issueDate, err = time.Parse(dateLayout, in.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
	}

	items := make([]entity.InvoiceItem, 0, len(in.Items))
	for i, it := range in.Items {
		if err := validateItem(it); err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		unit := it.Unit
		if unit == "" {
			unit = "nos"
		}
		items = append(items, entity.InvoiceItem{
			ID:       uuid.New().String(),
			Name:     strings.TrimSpace(it.Name),
			Quantity: it.Quantity,
			Unit:     unit,
			Rate:     it.Rate,
			Discount: it.Discount,
			Tax:      it.Tax,
			Amount:   domainbilling.ItemAmount(it.Quantity, it.Rate, it.Discount, it.Tax),
		})
	}

	totals := domainbilling.InvoiceTotals(items)
	inv := entity.Invoice{
		ID:            uuid.New().String(),
		InvoiceNumber: uc.store.NextInvoiceNumber(),
		Date:          issueDate,
		DueDate:       dueDate,
		Customer:      customer,
		Items:         items,
		Subtotal:      totals.Subtotal,
		TotalDiscount: totals.TotalDiscount,
		TotalTax:      totals.TotalTax,
		GrandTotal:    totals.GrandTotal,
		Status:        entity.StatusUnpaid,
		Notes:         in.Notes,
		AmountPaid:    decimal.Zero,
	}
	uc.store.AddInvoice(inv)

	resp := ToInvoiceResponse(inv)
	return &resp, nil
}

func validateItem(it dto.InvoiceItemRequest) error {
	if strings.TrimSpace(it.Name) == "" {
		return fmt.Errorf("%w: item name is required", domain.ErrInvalidInput)
	}
	if !it.Quantity.IsPositive() {
		return fmt.Errorf("%w: quantity must be greater than zero", domain.ErrInvalidInput)
	}
	if it.Rate.IsNegative() {
		return fmt.Errorf("%w: rate must not be negative", domain.ErrInvalidInput)
	}
	if it.Discount.IsNegative() || it.Discount.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w: discount must be between 0 and 100", domain.ErrInvalidInput)
	}
	if it.Tax.IsNegative() {
		return fmt.Errorf("%w: tax must not be negative", domain.ErrInvalidInput)
	}
	return nil
}

// List returns invoices newest-first, optionally filtered by status and by a
// case-insensitive search over invoice number and party name.
func (uc *InvoiceUseCase) List(status, q string) ([]dto.InvoiceResponse, error) {
	if status != "" && !entity.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}
	q = strings.ToLower(strings.TrimSpace(q))
	invoices := uc.store.Invoices()
	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		if status != "" && inv.Status != status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(inv.InvoiceNumber), q) &&
			!strings.Contains(strings.ToLower(inv.Customer.Name), q) {
			continue
		}
		out = append(out, ToInvoiceResponse(inv))
	}
	return out, nil
}

// Get returns one invoice with its full detail.
func (uc *InvoiceUseCase) Get(id string) (*dto.InvoiceResponse, error) {
	inv, ok := uc.store.GetInvoice(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	resp := ToInvoiceResponse(inv)
	return &resp, nil
}

// UpdateStatus records a payment state change: mark paid, record a partial
// payment, flag overdue. AmountPaid nil leaves the collected amount as is.
//
// The store would silently no-op on a missing id; the API contract is
// tighter, so existence is checked here first.
func (uc *InvoiceUseCase) UpdateStatus(id string, in dto.UpdateInvoiceStatusRequest) (*dto.InvoiceResponse, error) {
	if !entity.ValidStatus(in.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, in.Status)
	}
	if in.AmountPaid != nil && in.AmountPaid.IsNegative() {
		return nil, fmt.Errorf("%w: amount paid must not be negative", domain.ErrInvalidInput)
	}
	if _, ok := uc.store.GetInvoice(id); !ok {
		return nil, domain.ErrNotFound
	}
	uc.store.UpdateInvoiceStatus(id, in.Status, in.AmountPaid)

	inv, _ := uc.store.GetInvoice(id)
	resp := ToInvoiceResponse(inv)
	return &resp, nil
}

// Delete removes an invoice. A missing id is not an error — the delete is
// idempotent all the way down to the store.
func (uc *InvoiceUseCase) Delete(id string) {
	uc.store.DeleteInvoice(id)
}

// ToInvoiceResponse maps an invoice to its response shape.
func ToInvoiceResponse(inv entity.Invoice) dto.InvoiceResponse {
	items := make([]dto.InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, dto.InvoiceItemResponse{
			ID:       it.ID,
			Name:     it.Name,
			Quantity: it.Quantity,
			Unit:     it.Unit,
			Rate:     it.Rate,
			Discount: it.Discount,
			Tax:      it.Tax,
			Amount:   it.Amount,
		})
	}
	return dto.InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		Date:          inv.Date.Format(dateLayout),
		DueDate:       inv.DueDate.Format(dateLayout),
		Customer:      ToCustomerResponse(inv.Customer),
		Items:         items,
		Subtotal:      inv.Subtotal,
		TotalDiscount: inv.TotalDiscount,
		TotalTax:      inv.TotalTax,
		GrandTotal:    inv.GrandTotal,
		Status:        inv.Status,
		Notes:         inv.Notes,
		AmountPaid:    inv.AmountPaid,
		Outstanding:   inv.Outstanding(),
	}
}
