package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SumitSinghvi/invoice-bliss/internal/domain/billing"
	"github.com/SumitSinghvi/invoice-bliss/internal/domain/entity"
)

// Seed returns the demo fixture the store boots with: five parties and five
// invoices with realistic figures. Line amounts and invoice totals are
// computed through the billing package so the fixture always satisfies the
// rollup invariants.
func Seed() ([]entity.Customer, []entity.Invoice) {
	customers := []entity.Customer{
		{ID: "1", Name: "Rajesh Kumar", Phone: "9876543210", Email: "rajesh@email.com", Address: "123 MG Road, Mumbai", GSTIN: "27AABCU9603R1ZM", Balance: decimal.NewFromInt(15000)},
		{ID: "2", Name: "Priya Sharma", Phone: "9876543211", Email: "priya@email.com", Address: "456 Brigade Rd, Bangalore", Balance: decimal.NewFromInt(-5000)},
		{ID: "3", Name: "Amit Patel", Phone: "9876543212", Email: "amit@email.com", Address: "789 SG Highway, Ahmedabad", GSTIN: "24AAACP3456R1ZX", Balance: decimal.NewFromInt(32000)},
		{ID: "4", Name: "Sneha Reddy", Phone: "9876543213", Email: "sneha@email.com", Address: "321 Jubilee Hills, Hyderabad", Balance: decimal.Zero},
		{ID: "5", Name: "Vikram Singh", Phone: "9876543214", Email: "vikram@email.com", Address: "654 Connaught Place, Delhi", GSTIN: "07AABCV1234R1ZP", Balance: decimal.NewFromInt(8500)},
	}

	invoices := []entity.Invoice{
		seedInvoice("1", "INV-001", date(2026, 2, 1), date(2026, 2, 15), customers[0],
			entity.StatusPaid, "64310",
			seedItem("1", "Web Development Service", "1", "nos", "50000", "0", "18"),
			seedItem("2", "Domain & Hosting", "1", "nos", "5000", "10", "18"),
		),
		seedInvoice("2", "INV-002", date(2026, 2, 3), date(2026, 2, 17), customers[1],
			entity.StatusUnpaid, "0",
			seedItem("1", "Logo Design", "1", "nos", "15000", "0", "18"),
		),
		seedInvoice("3", "INV-003", date(2026, 1, 20), date(2026, 2, 3), customers[2],
			entity.StatusOverdue, "0",
			seedItem("1", "Annual Maintenance Contract", "1", "nos", "120000", "5", "18"),
		),
		seedInvoice("4", "INV-004", date(2026, 2, 8), date(2026, 2, 22), customers[3],
			entity.StatusPartial, "15000",
			seedItem("1", "Social Media Management", "1", "month", "25000", "0", "18"),
		),
		seedInvoice("5", "INV-005", date(2026, 2, 10), date(2026, 2, 24), customers[4],
			entity.StatusUnpaid, "0",
			seedItem("1", "SEO Optimization", "3", "month", "10000", "0", "18"),
			seedItem("2", "Content Writing", "10", "nos", "2000", "5", "18"),
		),
	}

	// Fixture is stored newest-first, like live inserts.
	reverse(invoices)
	reverse(customers)
	return customers, invoices
}

func seedItem(id, name, qty, unit, rate, discount, tax string) entity.InvoiceItem {
	it := entity.InvoiceItem{
		ID:       id,
		Name:     name,
		Quantity: decimal.RequireFromString(qty),
		Unit:     unit,
		Rate:     decimal.RequireFromString(rate),
		Discount: decimal.RequireFromString(discount),
		Tax:      decimal.RequireFromString(tax),
	}
	it.Amount = billing.ItemAmount(it.Quantity, it.Rate, it.Discount, it.Tax)
	return it
}

func seedInvoice(id, number string, issued, due time.Time, customer entity.Customer,
	status, amountPaid string, items ...entity.InvoiceItem) entity.Invoice {
	totals := billing.InvoiceTotals(items)
	return entity.Invoice{
		ID:            id,
		InvoiceNumber: number,
		Date:          issued,
		DueDate:       due,
		Customer:      customer,
		Items:         items,
		Subtotal:      totals.Subtotal,
		TotalDiscount: totals.TotalDiscount,
		TotalTax:      totals.TotalTax,
		GrandTotal:    totals.GrandTotal,
		Status:        status,
		AmountPaid:    decimal.RequireFromString(amountPaid),
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
