package schema

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// Document is the serialised form of a schema.
type Document struct {
	Pages []PageDef `json:"pages"`
}

type PageDef struct {
	Key    string     `json:"key"`
	Title  string     `json:"title,omitempty"`
	Fields []FieldDef `json:"fields"`
}

// FieldDef mirrors gdsvalidation.Field with serialisable bounds, a pattern
// source, named transforms and a declarative condition.
type FieldDef struct {
	Key  string `json:"key"`
	Type string `json:"type,omitempty"`
	Name string `json:"name,omitempty"`

	ExactLength int    `json:"exactLength,omitempty"`
	MinLength   int    `json:"minLength,omitempty"`
	MaxLength   int    `json:"maxLength,omitempty"`
	InputType   string `json:"inputType,omitempty"`

	Min             *BoundDef `json:"min,omitempty"`
	Max             *BoundDef `json:"max,omitempty"`
	AfterDateFrom   *BoundDef `json:"afterDateFrom,omitempty"`
	BeforeDateFrom  *BoundDef `json:"beforeDateFrom,omitempty"`
	MaxCurrencyFrom *BoundDef `json:"maxCurrencyFrom,omitempty"`

	BeforeToday bool `json:"beforeToday,omitempty"`
	AfterToday  bool `json:"afterToday,omitempty"`

	ValidValues []string `json:"validValues,omitempty"`

	Pattern     string `json:"pattern,omitempty"`
	PatternText string `json:"patternText,omitempty"`

	Matches            []string `json:"matches,omitempty"`
	MatchingExclusions []string `json:"matchingExclusions,omitempty"`
	NoMatchText        string   `json:"noMatchText,omitempty"`

	Transform []string      `json:"transform,omitempty"`
	IncludeIf *ConditionDef `json:"includeIf,omitempty"`

	// Errors holds message templates keyed by error key.
	Errors map[string]string `json:"errors,omitempty"`

	MinDescription   string `json:"minDescription,omitempty"`
	MaxDescription   string `json:"maxDescription,omitempty"`
	AfterField       string `json:"afterField,omitempty"`
	BeforeField      string `json:"beforeField,omitempty"`
	CurrencyMaxField string `json:"currencyMaxField,omitempty"`
}

// BoundDef is a number, a string, {"field": key} or {"today": offset}.
//
// A string that is a number or an ISO date is a literal; any other string
// names a field, so "max: income" reads the income answer.
type BoundDef struct {
	Value any
	Field string
	Today *Offset
}

// Offset moves a date relative to today.
type Offset struct {
	Years  int `json:"years,omitempty"`
	Months int `json:"months,omitempty"`
	Days   int `json:"days,omitempty"`
}

func (b *BoundDef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			Field string  `json:"field"`
			Today *Offset `json:"today"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		b.Field, b.Today = obj.Field, obj.Today
		return nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch v.(type) {
	case float64, string:
		b.Value = v
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrInvalidBound, data)
	}
}

func (b BoundDef) MarshalJSON() ([]byte, error) {
	switch {
	case b.Field != "":
		return json.Marshal(map[string]string{"field": b.Field})
	case b.Today != nil:
		return json.Marshal(map[string]*Offset{"today": b.Today})
	default:
		return json.Marshal(b.Value)
	}
}

// ConditionDef is the declarative form of an includeIf predicate. A leaf
// names a field and one test (equals, present or truthy); all, any and not
// combine other conditions.
type ConditionDef struct {
	Field   string         `json:"field,omitempty"`
	Equals  []string       `json:"equals,omitempty"`
	Present bool           `json:"present,omitempty"`
	Truthy  bool           `json:"truthy,omitempty"`
	All     []ConditionDef `json:"all,omitempty"`
	Any     []ConditionDef `json:"any,omitempty"`
	Not     *ConditionDef  `json:"not,omitempty"`
}
