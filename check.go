package gdsvalidation

import (
	"time"

	"github.com/nubz/gds-validation/pkg/sanitizer"
	"github.com/nubz/gds-validation/pkg/validator"
)

// check runs the type's primary checks and then the generic constraints in
// precedence order. It returns the key of the first failure.
func check(rf ResolvedField, a answer, today time.Time) (ErrorKey, bool) {
	if verr := validator.First(primaryRules(rf, a)...); verr != nil {
		return ErrorKey(verr.TranslationKey), true
	}

	if rf.Type == OptionalString && a.empty() {
		return "", false
	}

	if verr := validator.First(constraintRules(rf, a, today)...); verr != nil {
		return ErrorKey(verr.TranslationKey), true
	}
	return "", false
}

func primaryRules(rf ResolvedField, a answer) []validator.Rule {
	key := rf.Key

	switch rf.Type {
	case Date:
		if a.partial != nil {
			return []validator.Rule{incomplete(key, completenessKey(a.partial.Classify()))}
		}
		return []validator.Rule{
			validator.Required(key, a.text),
			validator.ValidDate(key, a.text),
		}

	case OptionalString:
		return nil

	case Enum:
		return []validator.Rule{
			validator.Required(key, a.text).Keyed(validator.KeyEnum),
			validator.InList(key, a.text, rf.ValidValues),
		}

	case Array:
		return []validator.Rule{
			validator.MinItems(key, a.items, rf.MinLength),
			validator.EachInList(key, a.items, rf.ValidValues),
		}

	case Number:
		return []validator.Rule{
			validator.Required(key, a.text),
			validator.NumberString(key, a.text),
		}

	case Currency:
		return []validator.Rule{
			validator.Required(key, a.text),
			validator.CurrencyAmount(key, a.text),
		}

	case File:
		return []validator.Rule{validator.RequiredFile(key, a.text)}

	default:
		return []validator.Rule{validator.Required(key, a.text)}
	}
}

// incomplete always fails with the given date completeness key.
func incomplete(field string, key ErrorKey) validator.Rule {
	return validator.Rule{
		Check: func() bool { return false },
		Error: validator.ValidationError{
			Field:          field,
			Message:        "date is incomplete",
			TranslationKey: string(key),
		},
	}
}

// constraintRules lists the generic checks in the order they take precedence.
// Constraints the field does not carry are left out.
func constraintRules(rf ResolvedField, a answer, today time.Time) []validator.Rule {
	key := rf.Key
	length := validator.Length(a.text)
	if a.list {
		length = len(a.items)
	}

	var rules []validator.Rule

	if rf.ExactLength > 0 {
		if a.list {
			rules = append(rules, validator.LenBetween(key, length, rf.ExactLength, rf.ExactLength).Keyed(validator.KeyExactLength))
		} else {
			rules = append(rules, validator.ExactLen(key, a.text, rf.ExactLength))
		}
	}
	switch {
	case rf.MinLength > 0 && rf.MaxLength > 0:
		rules = append(rules, validator.LenBetween(key, length, rf.MinLength, rf.MaxLength))
	case rf.MaxLength > 0:
		rules = append(rules, validator.MaxLen(key, length, rf.MaxLength))
	case rf.MinLength > 0:
		rules = append(rules, validator.MinLen(key, length, rf.MinLength))
	}

	// Lists only take part in length checks.
	if a.list {
		return rules
	}

	rules = append(rules, rangeRules(rf, a)...)

	if rf.Regex != nil {
		rules = append(rules, validator.MatchesRegex(key, a.text, rf.Regex))
	}
	if a.isDate {
		if rf.BeforeToday {
			rules = append(rules, validator.BeforeToday(key, a.date, today))
		}
		if rf.AfterToday {
			rules = append(rules, validator.AfterToday(key, a.date, today))
		}
	}
	if len(rf.Matches) > 0 {
		rules = append(rules, validator.MatchesOneOf(key, a.text, rf.Matches))
	}
	if len(rf.MatchingExclusions) > 0 {
		rules = append(rules, validator.NotOneOf(key, a.text, rf.MatchingExclusions))
	}

	return rules
}

// rangeRules yields the between, min and max checks for number, currency and
// date answers. A between check is only used when neither bound is derived.
func rangeRules(rf ResolvedField, a answer) []validator.Rule {
	lo, hi := rf.MinValue, rf.MaxValue
	if !lo.Set && !hi.Set {
		return nil
	}
	between := lo.Set && hi.Set && !lo.Derived && !hi.Derived
	key := rf.Key

	var rules []validator.Rule

	switch rf.Type {
	case Date:
		if !a.isDate {
			return nil
		}
		if between {
			rules = append(rules, validator.DateBetween(key, a.date, lo.Date, hi.Date))
		}
		if lo.Set {
			r := validator.DateAfter(key, a.date, lo.Date)
			if lo.Derived {
				r = r.Keyed(string(KeyAfterDate))
			}
			rules = append(rules, r)
		}
		if hi.Set {
			r := validator.DateBefore(key, a.date, hi.Date)
			if hi.Derived {
				r = r.Keyed(string(KeyBeforeDate))
			}
			rules = append(rules, r)
		}

	case Number:
		n, ok := sanitizer.ParseNumber(a.text)
		if !ok {
			return nil
		}
		if between {
			rules = append(rules, validator.NumBetween(key, n, lo.Number, hi.Number))
		}
		if lo.Set {
			rules = append(rules, validator.MinNum(key, n, lo.Number))
		}
		if hi.Set {
			rules = append(rules, maxFieldAware(validator.MaxNum(key, n, hi.Number), hi))
		}

	case Currency:
		n, ok := sanitizer.ParseNumber(a.text)
		if !ok {
			return nil
		}
		if between {
			rules = append(rules, validator.AmountRange(key, n, lo.Number, hi.Number))
		}
		if lo.Set {
			rules = append(rules, validator.MinAmount(key, n, lo.Number))
		}
		if hi.Set {
			rules = append(rules, maxFieldAware(validator.MaxAmount(key, n, hi.Number), hi))
		}
	}

	return rules
}

// maxFieldAware reports a maximum taken from another answer as currencyMaxField.
func maxFieldAware(r validator.Rule, hi BoundValue) validator.Rule {
	if hi.Derived {
		return r.Keyed(string(KeyCurrencyMaxField))
	}
	return r
}
