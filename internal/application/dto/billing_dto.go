package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body for POST /api/customers.
// Balance always starts at zero; it is not part of the request.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	GSTIN   string `json:"gstin,omitempty"`
}

// CustomerResponse is a party in responses.
type CustomerResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Phone   string          `json:"phone"`
	Email   string          `json:"email,omitempty"`
	Address string          `json:"address,omitempty"`
	GSTIN   string          `json:"gstin,omitempty"`
	Balance decimal.Decimal `json:"balance"`
}

// CreateInvoiceRequest body for POST /api/invoices.
//
// Dates use the "2006-01-02" layout. Date defaults to today when empty;
// DueDate is required. Totals are never accepted from the client — they are
// recomputed from the items on every create.
type CreateInvoiceRequest struct {
	CustomerID string               `json:"customer_id"`
	Date       string               `json:"date,omitempty"`
	DueDate    string               `json:"due_date"`
	Notes      string               `json:"notes,omitempty"`
	Items      []InvoiceItemRequest `json:"items"`
}

// InvoiceItemRequest is one billable line in a create request.
type InvoiceItemRequest struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit,omitempty"` // defaults to "nos"
	Rate     decimal.Decimal `json:"rate"`
	Discount decimal.Decimal `json:"discount"` // percent, 0–100
	Tax      decimal.Decimal `json:"tax"`      // percent, >= 0
}

// UpdateInvoiceStatusRequest body for PATCH /api/invoices/:id/status.
// AmountPaid nil means "leave as is".
type UpdateInvoiceStatusRequest struct {
	Status     string           `json:"status"`
	AmountPaid *decimal.Decimal `json:"amount_paid,omitempty"`
}

// InvoiceResponse is a full invoice with its lines.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	InvoiceNumber string                `json:"invoice_number"`
	Date          string                `json:"date"`
	DueDate       string                `json:"due_date"`
	Customer      CustomerResponse      `json:"customer"`
	Items         []InvoiceItemResponse `json:"items"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	TotalDiscount decimal.Decimal       `json:"total_discount"`
	TotalTax      decimal.Decimal       `json:"total_tax"`
	GrandTotal    decimal.Decimal       `json:"grand_total"`
	Status        string                `json:"status"`
	Notes         string                `json:"notes,omitempty"`
	AmountPaid    decimal.Decimal       `json:"amount_paid"`
	Outstanding   decimal.Decimal       `json:"outstanding"`
}

// InvoiceItemResponse is one line in a response.
type InvoiceItemResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
	Rate     decimal.Decimal `json:"rate"`
	Discount decimal.Decimal `json:"discount"`
	Tax      decimal.Decimal `json:"tax"`
	Amount   decimal.Decimal `json:"amount"`
}
