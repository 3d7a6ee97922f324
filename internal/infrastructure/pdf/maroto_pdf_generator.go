// Package pdf renders the printable A4 document for an invoice.
//
// Page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Business name + GSTIN  │  Invoice no. + dates      │
//	│  ───────────────────────────────────────────────────────── │
//	│  BILLED BY: address / phone / email                         │
//	│  BILLED TO: party snapshot + GSTIN                          │
//	│  ───────────────────────────────────────────────────────── │
//	│  TABLE: Item | Qty | Rate | Disc % | Tax % | Amount         │
//	│  ───────────────────────────────────────────────────────── │
//	│  TOTALS: subtotal / discount / tax / GRAND TOTAL            │
//	│          amount paid / balance due                           │
//	│  FOOTER: status + notes                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/SumitSinghvi/invoice-bliss/internal/application/billing"
	"github.com/SumitSinghvi/invoice-bliss/internal/domain/entity"
	"github.com/SumitSinghvi/invoice-bliss/pkg/money"
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 90, Blue: 190}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator implements billing.InvoicePDFGenerator using Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator builds the generator.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF renders the document and returns its bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	business appbilling.BusinessProfile,
	invoice entity.Invoice,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+invoice.InvoiceNumber, true).
		WithAuthor(business.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(business, invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(business, invoice.Customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(invoice.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range totalsRows(invoice) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(invoice))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: business identity on the left, invoice number and dates on the
// right.
func headerRow(business appbilling.BusinessProfile, invoice entity.Invoice) core.Row {
	left := []core.Component{
		text.New(business.Name, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
		}),
	}
	if business.GSTIN != "" {
		left = append(left, text.New("GSTIN: "+business.GSTIN, props.Text{
			Size: 9, Top: 9, Color: colorGray,
		}))
	}

	return row.New(20).Add(
		col.New(7).Add(left...),
		col.New(5).Add(
			text.New("TAX INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New("Date: "+invoice.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
			text.New("Due: "+invoice.DueDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 17, Color: colorGray,
			}),
		),
	)
}

// partiesRow: issuing business and the billed party side by side.
func partiesRow(business appbilling.BusinessProfile, customer entity.Customer) core.Row {
	from := []string{business.Address, business.Phone, business.Email}
	to := []string{customer.Name, customer.Address, customer.Phone, customer.Email}
	if customer.GSTIN != "" {
		to = append(to, "GSTIN: "+customer.GSTIN)
	}
	return row.New(26).Add(
		partyCol("BILLED BY", from),
		partyCol("BILLED TO", to),
	)
}

func partyCol(label string, lines []string) core.Col {
	components := []core.Component{
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 1}),
	}
	top := 6.0
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		components = append(components, text.New(l, props.Text{Size: 8, Top: top}))
		top += 4
	}
	return col.New(6).Add(components...)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string, alignment align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: alignment, Top: 1, Color: colorPrimary,
		}))
	}
	return row.New(7).Add(
		header(4, "Item", align.Left),
		header(2, "Qty", align.Right),
		header(2, "Rate", align.Right),
		header(1, "Disc %", align.Right),
		header(1, "Tax %", align.Right),
		header(2, "Amount", align.Right),
	)
}

func tableItemRows(items []entity.InvoiceItem) []core.Row {
	cell := func(size int, value string, alignment align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: alignment, Top: 1}))
	}
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			cell(4, it.Name, align.Left),
			cell(2, it.Quantity.String()+" "+it.Unit, align.Right),
			cell(2, money.FormatINR(it.Rate), align.Right),
			cell(1, it.Discount.String(), align.Right),
			cell(1, it.Tax.String(), align.Right),
			cell(2, money.FormatINR(it.Amount), align.Right),
		))
	}
	return rows
}

func totalsRows(invoice entity.Invoice) []core.Row {
	totalLine := func(label, value string, bold bool) core.Row {
		style := fontstyle.Normal
		size := 8.0
		if bold {
			style = fontstyle.Bold
			size = 10
		}
		return row.New(5).Add(
			col.New(8),
			col.New(2).Add(text.New(label, props.Text{Size: size, Style: style, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(value, props.Text{Size: size, Style: style, Align: align.Right, Top: 1})),
		)
	}
	return []core.Row{
		totalLine("Subtotal", money.FormatINR(invoice.Subtotal), false),
		totalLine("Discount", "− "+money.FormatINR(invoice.TotalDiscount), false),
		totalLine("Tax", money.FormatINR(invoice.TotalTax), false),
		totalLine("GRAND TOTAL", money.FormatINR(invoice.GrandTotal), true),
		totalLine("Amount paid", money.FormatINR(invoice.AmountPaid), false),
		totalLine("Balance due", money.FormatINR(invoice.Outstanding()), false),
	}
}

func footerRow(invoice entity.Invoice) core.Row {
	components := []core.Component{
		text.New("Status: "+strings.ToUpper(invoice.Status), props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1,
		}),
	}
	if invoice.Notes != "" {
		components = append(components, text.New("Notes: "+invoice.Notes, props.Text{
			Size: 8, Color: colorGray, Top: 6,
		}))
	}
	return row.New(12).Add(col.New(12).Add(components...))
}
