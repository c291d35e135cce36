// Package validator provides the small rule-building toolkit the page engine is
// assembled from: each exported function returns a Rule that couples a boolean
// Check with a ValidationError describing the failure by error key.
//
// Error keys (TranslationKey) are the symbolic identifiers used to pick a
// message template, for example "required", "tooLong" or "betweenMinAndMaxDates".
// TranslationValues carries the raw values a template may interpolate.
//
// # Evaluation
//
// Two evaluators are provided:
//
//   - Apply runs every rule and aggregates failures into ValidationErrors.
//   - First runs rules in order and stops at the first failure. The page engine
//     uses it to honour a fixed precedence where exactly one error is reported
//     per field.
//
// # Usage
//
//	verr := validator.First(
//	    validator.ExactLen("sortCode", "12-34-56", 6),
//	    validator.MatchesRegex("sortCode", "12-34-56", sortCodePattern),
//	)
//	if verr != nil {
//	    fmt.Println(verr.TranslationKey) // "exactLength"
//	}
//
// Rules are plain values with no shared state, so they are safe to build and
// evaluate from multiple goroutines.
package validator
