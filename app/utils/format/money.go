package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var cad = accounting.Accounting{Symbol: "$", Precision: 2, Thousand: ",", Decimal: "."}

// Money renders an amount for CLI and log output, e.g. "$1,234.50".
func Money(amount decimal.Decimal) string {
	return cad.FormatMoney(amount)
}
