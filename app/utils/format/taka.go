package format

import (
	"github.com/leekchan/accounting"
)

const CurrencySymbol = "৳"

var taka = accounting.Accounting{Symbol: CurrencySymbol, Precision: 0, Thousand: ",", Decimal: "."}

// FormatTaka renders whole currency units, e.g. 2500 -> "৳2,500".
func FormatTaka(amount int64) string {
	if amount < 0 {
		return "-" + taka.FormatMoney(-amount)
	}
	return taka.FormatMoney(amount)
}
