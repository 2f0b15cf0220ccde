package checkbook

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// parseAmount reads a monetary cell. An unparsable or empty cell counts
// as zero: every ledger row leaves either its debit or its credit blank.
func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// cellAmount renders a monetary value the way the workbook stores it,
// fixed to two decimal places.
func cellAmount(d decimal.Decimal) string { return d.StringFixed(2) }

// DisplayAmount renders a monetary value for terminal listings, with the
// currency symbol and thousands separators, like "-$1,234.50".
func DisplayAmount(d decimal.Decimal) string {
	cents := d.Round(2).Shift(2)
	return money.New(cents.IntPart(), money.USD).Display()
}
