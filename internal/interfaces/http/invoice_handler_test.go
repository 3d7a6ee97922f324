package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/SumitSinghvi/invoice-bliss/internal/application/billing"
	"github.com/SumitSinghvi/invoice-bliss/internal/application/dto"
	"github.com/SumitSinghvi/invoice-bliss/internal/application/reports"
	apphttp "github.com/SumitSinghvi/invoice-bliss/internal/interfaces/http"
	"github.com/SumitSinghvi/invoice-bliss/internal/infrastructure/memory"
	"github.com/SumitSinghvi/invoice-bliss/internal/infrastructure/pdf"
	"github.com/SumitSinghvi/invoice-bliss/pkg/logger"
)

// buildTestApp wires a Fiber app over a freshly seeded store, the full route
// table included.
func buildTestApp() *fiber.App {
	customers, invoices := memory.Seed()
	store := memory.NewStore(customers, invoices)

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	business := appbilling.BusinessProfile{Name: "My Business"}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CustomerUC: appbilling.NewCustomerUseCase(store),
		InvoiceUC:  appbilling.NewInvoiceUseCase(store),
		InvoicePDF: appbilling.NewPDFUseCase(store, business, pdf.NewMarotoPDFGenerator()),
		ReportsUC:  reports.NewSummaryUseCase(store),
		Log:        log,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCreateInvoice_EndToEnd(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/invoices", map[string]any{
		"customer_id": "1",
		"date":        "2026-02-12",
		"due_date":    "2026-02-26",
		"items": []map[string]any{
			{"name": "Web Development Service", "quantity": "1", "rate": "50000", "discount": "0", "tax": "18"},
			{"name": "Domain & Hosting", "quantity": "1", "rate": "5000", "discount": "10", "tax": "18"},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	got := decode[dto.InvoiceResponse](t, resp)
	assert.Equal(t, "INV-006", got.InvoiceNumber)
	assert.Equal(t, "unpaid", got.Status)
	assert.Equal(t, "64310", got.GrandTotal.String())
	assert.Equal(t, "Rajesh Kumar", got.Customer.Name)

	// It shows up first in the list.
	list := decode[[]dto.InvoiceResponse](t, doJSON(t, app, http.MethodGet, "/api/invoices", nil))
	require.Len(t, list, 6)
	assert.Equal(t, got.ID, list[0].ID)
}

func TestCreateInvoice_UnknownCustomer(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/invoices", map[string]any{
		"customer_id": "ghost",
		"due_date":    "2026-03-01",
		"items":       []map[string]any{{"name": "x", "quantity": "1", "rate": "100", "discount": "0", "tax": "0"}},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListInvoices_StatusFilter(t *testing.T) {
	app := buildTestApp()

	list := decode[[]dto.InvoiceResponse](t, doJSON(t, app, http.MethodGet, "/api/invoices?status=overdue", nil))
	require.Len(t, list, 1)
	assert.Equal(t, "INV-003", list[0].InvoiceNumber)

	resp := doJSON(t, app, http.MethodGet, "/api/invoices?status=archived", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateStatus_ThenDelete(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPatch, "/api/invoices/2/status", map[string]any{
		"status": "paid", "amount_paid": "17700",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[dto.InvoiceResponse](t, resp)
	assert.Equal(t, "paid", got.Status)
	assert.Equal(t, "0", got.Outstanding.String())

	// Unknown id is 404 at the API edge even though the store would no-op.
	resp = doJSON(t, app, http.MethodPatch, "/api/invoices/ghost/status", map[string]any{"status": "paid"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Delete is idempotent and the invoice is gone afterwards.
	assert.Equal(t, http.StatusNoContent, doJSON(t, app, http.MethodDelete, "/api/invoices/2", nil).StatusCode)
	assert.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodGet, "/api/invoices/2", nil).StatusCode)
	assert.Equal(t, http.StatusNoContent, doJSON(t, app, http.MethodDelete, "/api/invoices/2", nil).StatusCode)
}

func TestCreateCustomer_Validation(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/customers", map[string]any{"name": "Deepa Nair", "phone": "9876500000"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	got := decode[dto.CustomerResponse](t, resp)
	assert.Equal(t, "0", got.Balance.String(), "balance starts at zero")

	resp = doJSON(t, app, http.MethodPost, "/api/customers", map[string]any{"name": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDashboardSummary_Route(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[dto.DashboardSummaryDTO](t, resp)
	assert.Equal(t, 5, got.InvoiceCount)
	assert.Equal(t, "79310", got.TotalRevenue.String())
}

func TestDownloadInvoicePDF(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/invoices/1/pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")), "response is a PDF document")
}
