package sanitizer

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var gbPrinter = message.NewPrinter(language.BritishEnglish)

// Whole amounts at or above this are grouped from their decimal text; they
// no longer fit an int64 exactly.
const maxGroupedInt = 1e15

// CurrencyDisplay formats v as pounds sterling with thousands grouping. Whole
// amounts carry no pence; fractional amounts are shown to two places. Empty,
// zero or non-numeric input yields "".
func CurrencyDisplay(v any) string {
	amount, ok := ToFloat(v)
	if !ok || amount == 0 {
		return ""
	}
	amount = math.Abs(amount)

	switch {
	case amount != math.Trunc(amount):
		return gbPrinter.Sprintf("£%.2f", amount)
	case amount >= maxGroupedInt:
		return "£" + AddCommas(amount)
	default:
		return gbPrinter.Sprintf("£%d", int64(amount))
	}
}

// NumberDisplay formats v with British thousands grouping, keeping any
// fractional digits as given.
func NumberDisplay(v any) string {
	amount, ok := ToFloat(v)
	if !ok {
		return toString(v)
	}
	if amount == math.Trunc(amount) && math.Abs(amount) < maxGroupedInt {
		return gbPrinter.Sprintf("%d", int64(amount))
	}
	return AddCommas(amount)
}
