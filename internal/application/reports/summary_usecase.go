// Package reports contains the read-only aggregates behind the dashboard and
// reports screens. Everything here is derived on demand from a store
// snapshot; nothing is cached or persisted.
package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	appbilling "github.com/SumitSinghvi/invoice-bliss/internal/application/billing"
	"github.com/SumitSinghvi/invoice-bliss/internal/application/dto"
	"github.com/SumitSinghvi/invoice-bliss/internal/domain/entity"
	"github.com/SumitSinghvi/invoice-bliss/internal/domain/repository"
)

const (
	dashboardRecentInvoices = 4
	reportTopParties        = 5
)

// SummaryUseCase computes the dashboard and reports aggregates.
type SummaryUseCase struct {
	store repository.Store
}

// NewSummaryUseCase builds the use case.
func NewSummaryUseCase(store repository.Store) *SummaryUseCase {
	return &SummaryUseCase{store: store}
}

// Dashboard returns the home-screen figures: collected revenue, outstanding
// amount, the overdue exposure and the most recent invoices.
func (uc *SummaryUseCase) Dashboard() *dto.DashboardSummaryDTO {
	invoices := uc.store.Invoices()

	revenue, pending, overdue := decimal.Zero, decimal.Zero, decimal.Zero
	for _, inv := range invoices {
		revenue = revenue.Add(inv.AmountPaid)
		pending = pending.Add(inv.Outstanding())
		if inv.Status == entity.StatusOverdue {
			overdue = overdue.Add(inv.GrandTotal)
		}
	}

	recent := invoices
	if len(recent) > dashboardRecentInvoices {
		recent = recent[:dashboardRecentInvoices]
	}
	recentDTO := make([]dto.InvoiceResponse, 0, len(recent))
	for _, inv := range recent {
		recentDTO = append(recentDTO, appbilling.ToInvoiceResponse(inv))
	}

	return &dto.DashboardSummaryDTO{
		TotalRevenue:   revenue,
		TotalPending:   pending,
		OverdueTotal:   overdue,
		InvoiceCount:   len(invoices),
		RecentInvoices: recentDTO,
	}
}

// Reports returns the reports-screen aggregates: sales vs collected,
// per-status counts, sales grouped by issue month and the top parties by
// absolute running balance.
func (uc *SummaryUseCase) Reports() *dto.ReportsSummaryDTO {
	invoices := uc.store.Invoices()
	customers := uc.store.Customers()

	sales, collected := decimal.Zero, decimal.Zero
	statusCounts := map[string]int{}
	monthly := map[string]decimal.Decimal{}
	for _, inv := range invoices {
		sales = sales.Add(inv.GrandTotal)
		collected = collected.Add(inv.AmountPaid)
		statusCounts[inv.Status]++
		month := inv.Date.Format("2006-01")
		monthly[month] = monthly[month].Add(inv.GrandTotal)
	}

	months := make([]dto.MonthlySalesDTO, 0, len(monthly))
	for month, amount := range monthly {
		months = append(months, dto.MonthlySalesDTO{Month: month, Amount: amount})
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })

	// Rank parties by |balance|; sign is kept on the way out so the caller
	// can tell receivables from payables.
	ranked := append([]entity.Customer(nil), customers...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Balance.Abs().GreaterThan(ranked[j].Balance.Abs())
	})
	if len(ranked) > reportTopParties {
		ranked = ranked[:reportTopParties]
	}
	top := make([]dto.TopPartyDTO, 0, len(ranked))
	for _, c := range ranked {
		top = append(top, dto.TopPartyDTO{CustomerID: c.ID, Name: c.Name, Balance: c.Balance})
	}

	return &dto.ReportsSummaryDTO{
		TotalSales:   sales,
		Collected:    collected,
		Pending:      sales.Sub(collected),
		PartyCount:   len(customers),
		StatusCounts: statusCounts,
		MonthlySales: months,
		TopParties:   top,
	}
}
