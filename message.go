package gdsvalidation

import (
	"strconv"

	"github.com/nubz/gds-validation/pkg/dateparts"
	"github.com/nubz/gds-validation/pkg/i18n"
	"github.com/nubz/gds-validation/pkg/sanitizer"
)

// MessageFunc builds a message from the resolved field.
type MessageFunc func(ResolvedField) string

// Message overrides the built-in text for one error key. It is fixed text, a
// template using the catalogue placeholders, or a function of the resolved
// field.
type Message struct {
	text     string
	template bool
	fn       MessageFunc
}

// Text replaces the message with fixed text.
func Text(s string) Message {
	return Message{text: s}
}

// Template interpolates %{name}, %{Name}, %{min}, %{max} and the other
// catalogue placeholders.
func Template(s string) Message {
	return Message{text: s, template: true}
}

// Dynamic builds the message from the resolved field on each failure.
func Dynamic(fn MessageFunc) Message {
	return Message{fn: fn}
}

func (m Message) render(rf ResolvedField) string {
	switch {
	case m.fn != nil:
		return m.fn(rf)
	case m.template:
		return i18n.Interpolate(m.text, messageParams(rf))
	default:
		return m.text
	}
}

const (
	defaultNoMatchText = "the expected value"
	patternFallback    = " is not valid"
)

// messageParams exposes the field attributes templates may interpolate.
func messageParams(rf ResolvedField) map[string]string {
	name := rf.Name
	if name == "" {
		name = rf.Key
	}
	capitalised := sanitizer.Capitalise(name)

	params := map[string]string{
		"key":              rf.Key,
		"name":             name,
		"Name":             capitalised,
		"inputType":        rf.inputType(),
		"exactLength":      strconv.Itoa(rf.ExactLength),
		"minLength":        strconv.Itoa(rf.MinLength),
		"maxLength":        strconv.Itoa(rf.MaxLength),
		"min":              formatBound(rf.MinValue, rf.Type),
		"max":              formatBound(rf.MaxValue, rf.Type),
		"minDescription":   describe(rf.MinDescription),
		"maxDescription":   describe(rf.MaxDescription),
		"afterField":       rf.AfterField,
		"beforeField":      rf.BeforeField,
		"currencyMaxField": rf.CurrencyMaxField,
		"patternText":      rf.PatternText,
		"noMatchText":      rf.NoMatchText,
	}
	if rf.MaxValue.Derived && rf.Type != Date {
		params["max"] = formatBound(rf.MaxValue, Currency)
	}
	if params["patternText"] == "" {
		params["patternText"] = capitalised + patternFallback
	}
	if params["noMatchText"] == "" {
		params["noMatchText"] = defaultNoMatchText
	}
	return params
}

func describe(desc string) string {
	if desc == "" {
		return ""
	}
	return " (" + desc + ")"
}

func formatBound(v BoundValue, typ FieldType) string {
	if !v.Set {
		return ""
	}
	switch typ {
	case Date:
		return v.Date.Format(dateparts.DisplayLayout)
	case Currency:
		if v.Number == 0 {
			return "£0"
		}
		return sanitizer.CurrencyDisplay(v.Number)
	default:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	}
}
