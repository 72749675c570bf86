package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer renders numbers with vi-VN digit grouping ("45.000")
var printer = message.NewPrinter(language.Vietnamese)

// Format renders an amount of Vietnamese đồng for display.
// The đồng has no fractional minor unit, so amounts are plain integers.
func Format(amount int64) string {
	return printer.Sprintf("%v ₫", number.Decimal(amount))
}
