package entity

import "github.com/shopspring/decimal"

// Customer is a billing counterparty ("party").
//
// Invoices embed a full snapshot of the customer at issue time, so editing a
// party never rewrites historical documents.
type Customer struct {
	ID      string
	Name    string
	Phone   string
	Email   string
	Address string
	GSTIN   string // optional tax registration number, opaque to the core

	// Balance is the party's running balance: positive means the party owes
	// the business, negative means the business owes the party. It is
	// independent state — no invoice operation updates it.
	Balance decimal.Decimal
}
