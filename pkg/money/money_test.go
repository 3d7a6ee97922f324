package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/SumitSinghvi/invoice-bliss/pkg/money"
)

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹59,000.00", money.FormatINR(decimal.NewFromInt(59000)))
	assert.Equal(t, "₹5,310.00", money.FormatINR(decimal.RequireFromString("5310")))
	assert.Equal(t, "₹0.00", money.FormatINR(decimal.Zero))
	assert.Equal(t, "₹249.99", money.FormatINR(decimal.RequireFromString("249.99")))
}
