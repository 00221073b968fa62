package format

import (
	"strconv"

	"github.com/leekchan/accounting"
)

var money = accounting.Accounting{Symbol: "₹", Precision: 0, Thousand: ",", Decimal: "."}

// Price renders an integer amount with currency symbol and thousands separator.
func Price(amount int) string {
	return money.FormatMoney(amount)
}

// Rating renders a review mean with one decimal place.
func Rating(value float64) string {
	return strconv.FormatFloat(value, 'f', 1, 64)
}
