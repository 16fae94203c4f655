package utils

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount for display, e.g. "USD 1,234.50".
func FormatMoney(currency string, amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return strings.TrimSpace(currency + " " + humanize.FormatFloat("#,###.##", f))
}
