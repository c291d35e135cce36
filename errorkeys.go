package gdsvalidation

import (
	"github.com/nubz/gds-validation/pkg/dateparts"
	"github.com/nubz/gds-validation/pkg/validator"
)

// ErrorKey names a kind of validation failure and selects its message.
type ErrorKey string

const (
	KeyRequired    ErrorKey = validator.KeyRequired
	KeyEnum        ErrorKey = validator.KeyEnum
	KeyMissingFile ErrorKey = validator.KeyMissingFile
	KeyNumber      ErrorKey = validator.KeyNumber
	KeyCurrency    ErrorKey = validator.KeyCurrency
	KeyDate        ErrorKey = validator.KeyDate

	KeyDayRequired          ErrorKey = "dayRequired"
	KeyMonthRequired        ErrorKey = "monthRequired"
	KeyYearRequired         ErrorKey = "yearRequired"
	KeyDayAndMonthRequired  ErrorKey = "dayAndMonthRequired"
	KeyDayAndYearRequired   ErrorKey = "dayAndYearRequired"
	KeyMonthAndYearRequired ErrorKey = "monthAndYearRequired"

	KeyExactLength            ErrorKey = validator.KeyExactLength
	KeyBetweenMinAndMaxLength ErrorKey = validator.KeyBetweenMinAndMaxLength
	KeyTooLong                ErrorKey = validator.KeyTooLong
	KeyTooShort               ErrorKey = validator.KeyTooShort

	KeyBetweenMinAndMaxNumbers ErrorKey = validator.KeyBetweenMinAndMaxNumbers
	KeyNumberMin               ErrorKey = validator.KeyNumberMin
	KeyNumberMax               ErrorKey = validator.KeyNumberMax
	KeyBetweenCurrency         ErrorKey = validator.KeyBetweenCurrency
	KeyCurrencyMin             ErrorKey = validator.KeyCurrencyMin
	KeyCurrencyMax             ErrorKey = validator.KeyCurrencyMax
	KeyCurrencyMaxField        ErrorKey = "currencyMaxField"
	KeyBetweenMinAndMaxDates   ErrorKey = validator.KeyBetweenMinAndMaxDates
	KeyAfterFixedDate          ErrorKey = validator.KeyAfterFixedDate
	KeyBeforeFixedDate         ErrorKey = validator.KeyBeforeFixedDate
	KeyAfterDate               ErrorKey = "afterDate"
	KeyBeforeDate              ErrorKey = "beforeDate"
	KeyBeforeToday             ErrorKey = validator.KeyBeforeToday
	KeyAfterToday              ErrorKey = validator.KeyAfterToday

	KeyPattern ErrorKey = validator.KeyPattern
	KeyNoMatch ErrorKey = validator.KeyNoMatch
)

// ErrorKeys lists every key the engine can report.
var ErrorKeys = []ErrorKey{
	KeyRequired, KeyEnum, KeyMissingFile, KeyNumber, KeyCurrency, KeyDate,
	KeyDayRequired, KeyMonthRequired, KeyYearRequired,
	KeyDayAndMonthRequired, KeyDayAndYearRequired, KeyMonthAndYearRequired,
	KeyExactLength, KeyBetweenMinAndMaxLength, KeyTooLong, KeyTooShort,
	KeyBetweenMinAndMaxNumbers, KeyNumberMin, KeyNumberMax,
	KeyBetweenCurrency, KeyCurrencyMin, KeyCurrencyMax, KeyCurrencyMaxField,
	KeyBetweenMinAndMaxDates, KeyAfterFixedDate, KeyBeforeFixedDate,
	KeyAfterDate, KeyBeforeDate, KeyBeforeToday, KeyAfterToday,
	KeyPattern, KeyNoMatch,
}

func completenessKey(c dateparts.Completeness) ErrorKey {
	return ErrorKey(c.Key())
}
