package validator

import (
	"fmt"
	"time"

	"github.com/nubz/gds-validation/pkg/dateparts"
)

// ValidDate validates that a string is a real calendar date in YYYY-MM-DD form.
func ValidDate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := dateparts.Parse(value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a real date",
			TranslationKey: KeyDate,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// DateAfter validates that value is strictly after the given date.
func DateAfter(field string, value time.Time, after time.Time) Rule {
	return Rule{
		Check: func() bool {
			return value.After(after)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("date must be after %s", after.Format(dateparts.ISOLayout)),
			TranslationKey: KeyAfterFixedDate,
			TranslationValues: map[string]any{
				"field": field,
				"after": after.Format(dateparts.ISOLayout),
			},
		},
	}
}

// DateBefore validates that value is strictly before the given date.
func DateBefore(field string, value time.Time, before time.Time) Rule {
	return Rule{
		Check: func() bool {
			return value.Before(before)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("date must be before %s", before.Format(dateparts.ISOLayout)),
			TranslationKey: KeyBeforeFixedDate,
			TranslationValues: map[string]any{
				"field":  field,
				"before": before.Format(dateparts.ISOLayout),
			},
		},
	}
}

// DateBetween validates that value lies strictly between start and end.
func DateBetween(field string, value time.Time, start time.Time, end time.Time) Rule {
	return Rule{
		Check: func() bool {
			return value.After(start) && value.Before(end)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("date must be between %s and %s", start.Format(dateparts.ISOLayout), end.Format(dateparts.ISOLayout)),
			TranslationKey: KeyBetweenMinAndMaxDates,
			TranslationValues: map[string]any{
				"field": field,
				"start": start.Format(dateparts.ISOLayout),
				"end":   end.Format(dateparts.ISOLayout),
			},
		},
	}
}

// BeforeToday compares calendar days: a value equal to today fails.
func BeforeToday(field string, value time.Time, today time.Time) Rule {
	return DateBefore(field, value, dateparts.Day(today)).Keyed(KeyBeforeToday)
}

// AfterToday compares calendar days: a value equal to today fails.
func AfterToday(field string, value time.Time, today time.Time) Rule {
	return DateAfter(field, value, dateparts.Day(today)).Keyed(KeyAfterToday)
}
