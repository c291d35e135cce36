package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Required validates that a string is not empty. Whitespace counts as content;
// callers trim beforehand when they want otherwise.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: KeyRequired,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ExactLen validates the rune length of a string once spaces are removed.
func ExactLen(field, value string, exact int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(strings.ReplaceAll(value, " ", "")) == exact
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be exactly %d characters long", exact),
			TranslationKey: KeyExactLength,
			TranslationValues: map[string]any{
				"field":  field,
				"length": exact,
			},
		},
	}
}

// LenBetween validates that length lies within [min, max].
func LenBetween(field string, length, min, max int) Rule {
	return Rule{
		Check: func() bool {
			return length >= min && length <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %d and %d characters long", min, max),
			TranslationKey: KeyBetweenMinAndMaxLength,
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}

// MinLen validates that length is at least min.
func MinLen(field string, length, min int) Rule {
	return Rule{
		Check: func() bool {
			return length >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: KeyTooShort,
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxLen validates that length is at most max.
func MaxLen(field string, length, max int) Rule {
	return Rule{
		Check: func() bool {
			return length <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: KeyTooLong,
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// Length returns the measure used by the length rules: runes for strings.
func Length(value string) int {
	return utf8.RuneCountInString(value)
}
