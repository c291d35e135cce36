package gdsvalidation

import (
	"strings"
	"time"

	"github.com/nubz/gds-validation/pkg/dateparts"
	"github.com/nubz/gds-validation/pkg/sanitizer"
)

// answer is the normalised value of one field.
type answer struct {
	text  string
	items []string
	list  bool

	// partial is set when a date was submitted as parts that could not all be
	// found; text is then empty.
	partial *dateparts.Parts

	date   time.Time
	isDate bool
}

func (a answer) empty() bool {
	if a.list {
		return len(a.items) == 0
	}
	return a.text == ""
}

// coerce reads and normalises the answer for f from p, writing the normalised
// value back into p under the field key.
func coerce(p Payload, key string, f Field, typ FieldType) answer {
	raw := p[key]
	if f.Transform != nil {
		raw = f.Transform(p)
		p[key] = raw
	}

	if typ == Array {
		return answer{items: listify(raw), list: true}
	}

	switch typ {
	case Currency:
		text := normaliseAmount(stringify(raw))
		if text != "" || p.Has(key) {
			p[key] = text
		}
		return answer{text: text}

	case Date:
		text := strings.TrimSpace(stringify(raw))
		if text == "" {
			parts := dateparts.Collect(key, func(name string) (string, bool) {
				v, ok := p[name]
				return stringify(v), ok
			})
			if !parts.Complete() {
				return answer{partial: &parts}
			}
			text = parts.ISO()
			p[key] = text
		}
		a := answer{text: text}
		if d, err := dateparts.Parse(text); err == nil {
			a.date, a.isDate = d, true
		}
		return a

	default:
		return answer{text: stringify(raw)}
	}
}

func normaliseAmount(s string) string {
	return sanitizer.Apply(s, sanitizer.StripCurrencySymbol, func(v string) string { return sanitizer.StripCommas(v) })
}

// peek normalises the answer under key for a field of type typ without
// touching the payload.
func peek(p Payload, key string, typ FieldType) answer {
	scratch := Payload{}
	if v, ok := p[key]; ok {
		scratch[key] = v
	}
	if typ == Date {
		for _, suffix := range []string{dateparts.DaySuffix, dateparts.MonthSuffix, dateparts.YearSuffix} {
			if v, ok := p[key+suffix]; ok {
				scratch[key+suffix] = v
			}
		}
	}
	return coerce(scratch, key, Field{Key: key}, typ)
}
