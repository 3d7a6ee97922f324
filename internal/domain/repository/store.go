package repository

import (
	"github.com/shopspring/decimal"

	"github.com/SumitSinghvi/invoice-bliss/internal/domain/entity"
)

// Unsubscribe releases one observer registration. Calling it again is
// harmless; it removes exactly one registration per call site.
type Unsubscribe func()

// Store is the authoritative home of the customer and invoice collections.
//
// Both collections are newest-first: adds prepend. The store performs no
// referential-integrity checks (the customer on an invoice is a snapshot, not
// a foreign key) and never recomputes totals — callers run the billing
// arithmetic before saving. Mutations on a missing id are silent no-ops, and
// every mutation notifies all current observers synchronously after it is
// applied.
type Store interface {
	// Customers returns a snapshot copy of the customer collection,
	// newest-first.
	Customers() []entity.Customer
	// Invoices returns a snapshot copy of the invoice collection,
	// newest-first.
	Invoices() []entity.Invoice
	GetCustomer(id string) (entity.Customer, bool)
	GetInvoice(id string) (entity.Invoice, bool)

	AddCustomer(c entity.Customer)
	AddInvoice(inv entity.Invoice)
	// UpdateInvoiceStatus replaces the invoice's status and, when amountPaid
	// is non-nil, its amount paid. Both fields change atomically as observed
	// by any subscriber notified afterward.
	UpdateInvoiceStatus(id, status string, amountPaid *decimal.Decimal)
	DeleteInvoice(id string)

	// NextInvoiceNumber derives the next sequential "INV-NNN" number from
	// the current invoice collection.
	NextInvoiceNumber() string

	// Subscribe registers an observer invoked synchronously after every
	// mutation, so it can re-read the latest collections.
	Subscribe(fn func()) Unsubscribe
}
