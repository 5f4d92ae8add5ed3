package calc

import (
	"orderdesk/app/models"

	"github.com/shopspring/decimal"
)

type taxRule struct {
	percent decimal.Decimal
	desc    string
}

var provinceTaxes = map[models.Province]taxRule{
	models.ProvinceON: {decimal.NewFromInt(13), "HST 13%"},
	models.ProvinceQC: {decimal.RequireFromString("14.975"), "GST+QST 14.975%"},
	models.ProvinceNS: {decimal.NewFromInt(15), "HST 15%"},
	models.ProvinceNB: {decimal.NewFromInt(15), "HST 15%"},
	models.ProvinceMB: {decimal.NewFromInt(12), "GST+PST 12%"},
	models.ProvinceBC: {decimal.NewFromInt(12), "GST+PST 12%"},
	models.ProvincePE: {decimal.NewFromInt(15), "HST 15%"},
	models.ProvinceSK: {decimal.NewFromInt(11), "GST+PST 11%"},
	models.ProvinceAB: {decimal.NewFromInt(5), "GST 5%"},
	models.ProvinceNL: {decimal.NewFromInt(15), "HST 15%"},
}

// TaxFor applies the province's sales-tax rate to baseTotal, rounded to
// cents. An unknown province yields zero tax and an empty description.
func TaxFor(province models.Province, baseTotal decimal.Decimal) (decimal.Decimal, string) {
	rule, ok := provinceTaxes[province]
	if !ok {
		return decimal.Zero, ""
	}
	tax := baseTotal.Mul(rule.percent).Div(decimal.NewFromInt(100)).Round(2)
	return tax, rule.desc
}
