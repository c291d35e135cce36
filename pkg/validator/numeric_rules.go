package validator

import (
	"fmt"

	"github.com/nubz/gds-validation/pkg/sanitizer"
)

// NumberString validates that a string parses as a finite number.
func NumberString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, ok := sanitizer.ParseNumber(value)
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a number",
			TranslationKey: KeyNumber,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v", min),
			TranslationKey: KeyNumberMin,
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %v", max),
			TranslationKey: KeyNumberMax,
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// NumBetween validates an inclusive numeric range.
func NumBetween[T Numeric](field string, value T, min T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %v and %v", min, max),
			TranslationKey: KeyBetweenMinAndMaxNumbers,
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}
