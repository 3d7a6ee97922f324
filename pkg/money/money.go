// Package money renders decimal amounts for display in Indian rupees.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders d with Indian digit grouping and the rupee sign, the same
// shape the mobile UI produced with Intl.NumberFormat: ₹1,23,456.78.
func FormatINR(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("₹%v", number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
