package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice payment statuses (closed set).
//
// Status is caller-assigned: nothing in the core demotes an unpaid invoice to
// overdue when its due date passes.
const (
	StatusPaid    = "paid"
	StatusUnpaid  = "unpaid"
	StatusPartial = "partial"
	StatusOverdue = "overdue"
)

// ValidStatus reports whether s belongs to the closed status set.
func ValidStatus(s string) bool {
	switch s {
	case StatusPaid, StatusUnpaid, StatusPartial, StatusOverdue:
		return true
	}
	return false
}

// InvoiceItem is one billable line on an invoice.
//
// Amount is fixed at creation time from quantity, rate, discount and tax; it
// is not recomputed if those fields change afterward — callers recompute
// before re-saving.
type InvoiceItem struct {
	ID       string
	Name     string
	Quantity decimal.Decimal
	Unit     string // free-text unit label: "nos", "month", ...
	Rate     decimal.Decimal
	Discount decimal.Decimal // percent, 0–100
	Tax      decimal.Decimal // percent, >= 0
	Amount   decimal.Decimal
}

// Invoice is a billing document.
//
// Items are ordered (the order is display-relevant) and Customer is an
// embedded snapshot, not a reference into the customer collection. AmountPaid
// is caller-supplied state, never derived from the totals.
type Invoice struct {
	ID            string
	InvoiceNumber string
	Date          time.Time
	DueDate       time.Time
	Customer      Customer
	Items         []InvoiceItem
	Subtotal      decimal.Decimal
	TotalDiscount decimal.Decimal
	TotalTax      decimal.Decimal
	GrandTotal    decimal.Decimal
	Status        string
	Notes         string
	AmountPaid    decimal.Decimal
}

// Outstanding is the unpaid remainder of the invoice (grand total minus what
// has been collected so far).
func (i Invoice) Outstanding() decimal.Decimal {
	return i.GrandTotal.Sub(i.AmountPaid)
}
