// Package billing holds the pure invoice arithmetic: per-line amounts,
// invoice-level rollups and sequential invoice numbering.
//
// Everything here is stateless and side-effect free. Nothing validates input
// ranges (negative quantities, discounts above 100) — the application layer
// constrains inputs at the edge; these functions just compute.
package billing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SumitSinghvi/invoice-bliss/internal/domain/entity"
)

// InvoiceNumberPrefix is the prefix of every generated invoice number.
const InvoiceNumberPrefix = "INV-"

var hundred = decimal.NewFromInt(100)

// Totals are the invoice-level rollups over a sequence of lines.
type Totals struct {
	Subtotal      decimal.Decimal
	TotalDiscount decimal.Decimal
	TotalTax      decimal.Decimal
	GrandTotal    decimal.Decimal
}

// ItemAmount computes the final amount of one line:
//
//	base          = quantity × rate
//	afterDiscount = base × (1 − discountPct/100)
//	amount        = afterDiscount × (1 + taxPct/100)
func ItemAmount(quantity, rate, discountPct, taxPct decimal.Decimal) decimal.Decimal {
	base := quantity.Mul(rate)
	afterDiscount := base.Sub(base.Mul(discountPct).Div(hundred))
	return afterDiscount.Add(afterDiscount.Mul(taxPct).Div(hundred))
}

// InvoiceTotals rolls up the invoice-level figures over the given lines.
//
// The tax sum is taken over the discounted base of each line, so GrandTotal
// (subtotal − discount + tax) always equals the sum of ItemAmount over the
// same lines.
func InvoiceTotals(items []entity.InvoiceItem) Totals {
	var t Totals
	for _, it := range items {
		base := it.Quantity.Mul(it.Rate)
		discount := base.Mul(it.Discount).Div(hundred)
		tax := base.Sub(discount).Mul(it.Tax).Div(hundred)
		t.Subtotal = t.Subtotal.Add(base)
		t.TotalDiscount = t.TotalDiscount.Add(discount)
		t.TotalTax = t.TotalTax.Add(tax)
	}
	t.GrandTotal = t.Subtotal.Sub(t.TotalDiscount).Add(t.TotalTax)
	return t
}

// NextInvoiceNumber derives the next sequential number from the numbers
// already issued: the largest numeric suffix of any "INV-" number, plus one,
// zero-padded to at least three digits.
//
// Numbers that do not parse ("INV-XYZ", a foreign prefix) contribute zero
// rather than failing, so stray documents in the collection never block
// numbering. An empty collection yields "INV-001".
func NextInvoiceNumber(existing []string) string {
	max := 0
	for _, n := range existing {
		suffix := strings.TrimPrefix(n, InvoiceNumberPrefix)
		if v, err := strconv.Atoi(suffix); err == nil && v > max {
			max = v
		}
	}
	return fmt.Sprintf("%s%03d", InvoiceNumberPrefix, max+1)
}
