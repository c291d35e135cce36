package validator

import (
	"fmt"
	"slices"
)

// MinItems validates that a slice holds at least min elements.
func MinItems[T any](field string, items []T, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(items) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain at least %d items", min),
			TranslationKey: KeyEnum,
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// EachInList validates that every element is an allowed value. An empty allow-list
// accepts anything.
func EachInList[T comparable](field string, items []T, allowedValues []T) Rule {
	return Rule{
		Check: func() bool {
			if len(allowedValues) == 0 {
				return true
			}
			for _, item := range items {
				if !slices.Contains(allowedValues, item) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("all items must be one of: %v", allowedValues),
			TranslationKey: KeyEnum,
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": allowedValues,
			},
		},
	}
}

// RequiredFile validates that an upload reference is present.
func RequiredFile(field, value string) Rule {
	return Required(field, value).Keyed(KeyMissingFile)
}
