package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO is the response of GET /api/dashboard/summary: the
// headline figures of the home screen plus the most recent invoices.
type DashboardSummaryDTO struct {
	TotalRevenue   decimal.Decimal   `json:"total_revenue"`   // Σ amount paid across all invoices
	TotalPending   decimal.Decimal   `json:"total_pending"`   // Σ (grand total − amount paid)
	OverdueTotal   decimal.Decimal   `json:"overdue_total"`   // Σ grand total of overdue invoices
	InvoiceCount   int               `json:"invoice_count"`
	RecentInvoices []InvoiceResponse `json:"recent_invoices"` // newest four
}

// ReportsSummaryDTO is the response of GET /api/reports/summary.
type ReportsSummaryDTO struct {
	TotalSales   decimal.Decimal   `json:"total_sales"` // Σ grand total
	Collected    decimal.Decimal   `json:"collected"`   // Σ amount paid
	Pending      decimal.Decimal   `json:"pending"`
	PartyCount   int               `json:"party_count"`
	StatusCounts map[string]int    `json:"status_counts"` // closed status set → count
	MonthlySales []MonthlySalesDTO `json:"monthly_sales"`
	TopParties   []TopPartyDTO     `json:"top_parties"`
}

// MonthlySalesDTO is one bar of the monthly sales chart: Σ grand total of the
// invoices issued in that month.
type MonthlySalesDTO struct {
	Month  string          `json:"month"` // "2026-01"
	Amount decimal.Decimal `json:"amount"`
}

// TopPartyDTO is one row of the top-parties widget, ranked by absolute
// running balance.
type TopPartyDTO struct {
	CustomerID string          `json:"customer_id"`
	Name       string          `json:"name"`
	Balance    decimal.Decimal `json:"balance"` // signed: negative means the business owes the party
}
