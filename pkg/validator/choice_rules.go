package validator

import (
	"fmt"
	"slices"
)

// InList validates that value is one of the allowed values.
func InList[T comparable](field string, value T, allowedValues []T) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowedValues, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %v", allowedValues),
			TranslationKey: KeyEnum,
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": allowedValues,
			},
		},
	}
}

// MatchesOneOf validates that value appears in an allow-list.
func MatchesOneOf(field, value string, matches []string) Rule {
	return InList(field, value, matches).Keyed(KeyNoMatch)
}

// NotOneOf validates that value does not appear in a deny-list.
func NotOneOf(field, value string, exclusions []string) Rule {
	return Rule{
		Check: func() bool {
			return !slices.Contains(exclusions, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must not be one of: %v", exclusions),
			TranslationKey: KeyNoMatch,
			TranslationValues: map[string]any{
				"field":            field,
				"forbidden_values": exclusions,
			},
		},
	}
}
