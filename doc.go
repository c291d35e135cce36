// Package gdsvalidation validates GOV.UK style form pages and produces the
// error summary and inline messages a page renders.
//
// A Page is an ordered list of Field definitions. Each field has a type that
// decides its required and shape checks, followed by optional constraints:
// length, numeric or date bounds, a pattern, and allow or deny lists.
//
//	page := gdsvalidation.Page{
//	    Key: "about-you",
//	    Fields: []gdsvalidation.Field{
//	        {Key: "fullName", Type: gdsvalidation.NonEmptyString, Name: "your full name", MaxLength: 100},
//	        {Key: "dob", Type: gdsvalidation.Date, Name: "your date of birth", BeforeToday: true},
//	        {Key: "savings", Type: gdsvalidation.Currency, Name: "your savings", Max: gdsvalidation.Literal(16000)},
//	    },
//	}
//
//	report, err := gdsvalidation.Validate(ctx, payload, page)
//	if err != nil {
//	    // the page definition itself is broken
//	}
//	if report.HasErrors {
//	    // render report.Summary and report.Inline
//	}
//
// # Checks
//
// Each field reports at most one error. The type check runs first:
//
//	nonEmptyString  required
//	optionalString  none
//	number          required, number
//	currency        required, currency
//	date            required or a missing part key, date
//	enum            enum
//	array           enum
//	file            missingFile
//
// When it passes, constraints are tried in a fixed order and the first failure
// wins: exactLength, betweenMinAndMaxLength, tooLong, tooShort, the between
// bounds variant, the min variant, the max variant, pattern, beforeToday,
// afterToday, then noMatch for Matches and for MatchingExclusions. An empty
// optionalString skips them all.
//
// # Dates
//
// A date answer is either a single YYYY-MM-DD value under the field key or
// three inputs named key-day, key-month and key-year. Single digit parts are
// zero padded. When parts are missing the error key names them, for example
// dayAndYearRequired, and the summary links to the first missing input.
//
// # Bounds
//
// Min and Max take a Literal, a FieldRef to another answer or a Computed value.
// Bounds are evaluated per call by Resolve and never written back to the Field,
// so pages can be shared between goroutines. Numeric bounds are inclusive, date
// bounds are strict.
//
// # Messages
//
// Messages come from an embedded English catalogue rendered through
// pkg/i18n. Field.Errors overrides individual keys with fixed text or a
// function of the ResolvedField.
package gdsvalidation
