package validator

import (
	"regexp"
)

// Digits with optional thousands separators and at most two decimal places.
var currencyAmountRegex = regexp.MustCompile(`^[0-9,]+(\.[0-9]{1,2})?$`)

// CurrencyAmount validates that a string is a non-negative amount of money with
// no more than two decimal places. Currency symbols must be stripped first.
func CurrencyAmount(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return currencyAmountRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be an amount of money",
			TranslationKey: KeyCurrency,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func MinAmount(field string, value, min float64) Rule {
	return MinNum(field, value, min).Keyed(KeyCurrencyMin)
}

func MaxAmount(field string, value, max float64) Rule {
	return MaxNum(field, value, max).Keyed(KeyCurrencyMax)
}

func AmountRange(field string, value, min, max float64) Rule {
	return NumBetween(field, value, min, max).Keyed(KeyBetweenCurrency)
}
