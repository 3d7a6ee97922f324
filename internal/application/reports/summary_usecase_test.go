package reports_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SumitSinghvi/invoice-bliss/internal/application/reports"
	"github.com/SumitSinghvi/invoice-bliss/internal/infrastructure/memory"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Seed figures: grand totals 64310 + 17700 + 134520 + 29500 + 57820 = 303850,
// collected 64310 (paid) + 15000 (partial) = 79310.
func TestDashboardSummary_SeedFigures(t *testing.T) {
	customers, invoices := memory.Seed()
	uc := reports.NewSummaryUseCase(memory.NewStore(customers, invoices))

	got := uc.Dashboard()

	assert.True(t, got.TotalRevenue.Equal(dec("79310")), "revenue %s", got.TotalRevenue)
	assert.True(t, got.TotalPending.Equal(dec("224540")), "pending %s", got.TotalPending)
	assert.True(t, got.OverdueTotal.Equal(dec("134520")), "overdue %s", got.OverdueTotal)
	assert.Equal(t, 5, got.InvoiceCount)

	require.Len(t, got.RecentInvoices, 4, "dashboard shows the newest four")
	assert.Equal(t, "INV-005", got.RecentInvoices[0].InvoiceNumber)
}

func TestReportsSummary_SeedFigures(t *testing.T) {
	customers, invoices := memory.Seed()
	uc := reports.NewSummaryUseCase(memory.NewStore(customers, invoices))

	got := uc.Reports()

	assert.True(t, got.TotalSales.Equal(dec("303850")), "sales %s", got.TotalSales)
	assert.True(t, got.Collected.Equal(dec("79310")), "collected %s", got.Collected)
	assert.True(t, got.Pending.Equal(dec("224540")), "pending %s", got.Pending)
	assert.Equal(t, 5, got.PartyCount)

	assert.Equal(t, map[string]int{
		"paid": 1, "unpaid": 2, "partial": 1, "overdue": 1,
	}, got.StatusCounts)

	// One January invoice (INV-003), the rest issued in February.
	require.Len(t, got.MonthlySales, 2)
	assert.Equal(t, "2026-01", got.MonthlySales[0].Month)
	assert.True(t, got.MonthlySales[0].Amount.Equal(dec("134520")))
	assert.Equal(t, "2026-02", got.MonthlySales[1].Month)
	assert.True(t, got.MonthlySales[1].Amount.Equal(dec("169330")))
}

func TestReportsSummary_TopPartiesByAbsoluteBalance(t *testing.T) {
	customers, invoices := memory.Seed()
	uc := reports.NewSummaryUseCase(memory.NewStore(customers, invoices))

	got := uc.Reports()

	require.Len(t, got.TopParties, 5)
	assert.Equal(t, "Amit Patel", got.TopParties[0].Name, "32 000 leads")
	assert.Equal(t, "Rajesh Kumar", got.TopParties[1].Name)
	assert.Equal(t, "Vikram Singh", got.TopParties[2].Name)
	// A negative balance still ranks by magnitude, sign preserved.
	assert.Equal(t, "Priya Sharma", got.TopParties[3].Name)
	assert.True(t, got.TopParties[3].Balance.Equal(dec("-5000")))
	assert.Equal(t, "Sneha Reddy", got.TopParties[4].Name)
}
