package validator

import (
	"regexp"
)

// MatchesRegex validates a string against a precompiled pattern.
// A nil pattern always passes.
func MatchesRegex(field, value string, pattern *regexp.Regexp) Rule {
	expr := ""
	if pattern != nil {
		expr = pattern.String()
	}
	return Rule{
		Check: func() bool {
			if pattern == nil {
				return true
			}
			return pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must match pattern " + expr,
			TranslationKey: KeyPattern,
			TranslationValues: map[string]any{
				"field":   field,
				"pattern": expr,
			},
		},
	}
}
