package gdsvalidation

import (
	"regexp"
)

// FieldType selects the required and shape checks applied to a field.
type FieldType string

const (
	NonEmptyString FieldType = "nonEmptyString"
	OptionalString FieldType = "optionalString"
	Number         FieldType = "number"
	Currency       FieldType = "currency"
	Date           FieldType = "date"
	Enum           FieldType = "enum"
	Array          FieldType = "array"
	File           FieldType = "file"
)

// FieldTypes lists every supported type.
var FieldTypes = []FieldType{NonEmptyString, OptionalString, Number, Currency, Date, Enum, Array, File}

// Known reports whether t is one of the supported types.
func (t FieldType) Known() bool {
	for _, known := range FieldTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Normalize maps unknown or empty types to NonEmptyString.
func (t FieldType) Normalize() FieldType {
	if t.Known() {
		return t
	}
	return NonEmptyString
}

func (t FieldType) hasBounds() bool {
	return t == Number || t == Currency || t == Date
}

const defaultInputType = "characters"

// Field describes one named input on a page. Fields are configuration: the
// engine never modifies them, so a Page can be shared across goroutines.
type Field struct {
	// Key identifies the answer in the payload and is the default anchor target.
	Key  string
	Type FieldType
	// Name is the label used inside messages, e.g. "your date of birth".
	Name string

	// Length constraints. Zero means unset.
	ExactLength int
	MinLength   int
	MaxLength   int
	// InputType is the unit noun used in length messages. Defaults to "characters".
	InputType string

	// Min and Max bound number, currency and date answers.
	Min *Bound
	Max *Bound

	// AfterDateFrom, BeforeDateFrom and MaxCurrencyFrom derive a bound that is
	// reported with the afterDate, beforeDate and currencyMaxField messages. Each
	// takes the place of Min or Max respectively.
	AfterDateFrom   *Bound
	BeforeDateFrom  *Bound
	MaxCurrencyFrom *Bound

	BeforeToday bool
	AfterToday  bool

	ValidValues []string

	Regex       *regexp.Regexp
	PatternText string

	Matches            []string
	MatchingExclusions []string
	NoMatchText        string

	// Transform replaces the submitted value before any normalisation. For
	// dates an empty result still lets the day, month and year inputs compose.
	Transform func(Payload) any
	// IncludeIf skips the field entirely when it returns false.
	IncludeIf Predicate

	// Errors overrides the built-in message for individual error keys.
	Errors map[ErrorKey]Message

	MinDescription   string
	MaxDescription   string
	AfterField       string
	BeforeField      string
	CurrencyMaxField string
}

func (f Field) inputType() string {
	if f.InputType == "" {
		return defaultInputType
	}
	return f.InputType
}

func (f Field) included(p Payload) bool {
	return f.IncludeIf == nil || f.IncludeIf(p)
}
