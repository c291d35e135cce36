package validator

import "errors"

var (
	// ErrValidationFailed is matched by ValidationErrors via errors.Is.
	ErrValidationFailed = errors.New("validation failed")
)

// Error keys produced by the rules in this package.
const (
	KeyRequired                = "required"
	KeyExactLength             = "exactLength"
	KeyBetweenMinAndMaxLength  = "betweenMinAndMaxLength"
	KeyTooShort                = "tooShort"
	KeyTooLong                 = "tooLong"
	KeyNumber                  = "number"
	KeyNumberMin               = "numberMin"
	KeyNumberMax               = "numberMax"
	KeyBetweenMinAndMaxNumbers = "betweenMinAndMaxNumbers"
	KeyCurrency                = "currency"
	KeyCurrencyMin             = "currencyMin"
	KeyCurrencyMax             = "currencyMax"
	KeyBetweenCurrency         = "betweenCurrencyMinAndMax"
	KeyDate                    = "date"
	KeyAfterFixedDate          = "afterFixedDate"
	KeyBeforeFixedDate         = "beforeFixedDate"
	KeyBetweenMinAndMaxDates   = "betweenMinAndMaxDates"
	KeyBeforeToday             = "beforeToday"
	KeyAfterToday              = "afterToday"
	KeyPattern                 = "pattern"
	KeyEnum                    = "enum"
	KeyNoMatch                 = "noMatch"
	KeyMissingFile             = "missingFile"
)
