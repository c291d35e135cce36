package gdsvalidation

import (
	"time"

	"github.com/nubz/gds-validation/pkg/dateparts"
	"github.com/nubz/gds-validation/pkg/sanitizer"
)

// ResolvedField is a Field together with the bounds evaluated against one
// payload. It is what message functions receive.
type ResolvedField struct {
	Field

	MinValue BoundValue
	MaxValue BoundValue
}

// Resolve evaluates the bounds of f against p. Neither f nor p is modified.
// Bounds that cannot be evaluated, such as a reference to an unanswered field,
// are left unset and their checks are skipped.
func Resolve(p Payload, f Field) ResolvedField {
	rf := ResolvedField{Field: f}
	rf.Type = f.Type.Normalize()
	if !rf.Type.hasBounds() {
		return rf
	}

	if rf.Type == Date && f.AfterDateFrom != nil {
		rf.MinValue = evalBound(p, f.AfterDateFrom, rf.Type)
		rf.MinValue.Derived = rf.MinValue.Set
	} else {
		rf.MinValue = evalBound(p, f.Min, rf.Type)
	}

	switch {
	case rf.Type == Date && f.BeforeDateFrom != nil:
		rf.MaxValue = evalBound(p, f.BeforeDateFrom, rf.Type)
		rf.MaxValue.Derived = rf.MaxValue.Set
	case rf.Type != Date && f.MaxCurrencyFrom != nil:
		rf.MaxValue = evalBound(p, f.MaxCurrencyFrom, rf.Type)
		rf.MaxValue.Derived = rf.MaxValue.Set
	default:
		rf.MaxValue = evalBound(p, f.Max, rf.Type)
	}

	return rf
}

func evalBound(p Payload, b *Bound, typ FieldType) BoundValue {
	if b == nil {
		return BoundValue{}
	}

	switch b.kind {
	case boundLiteral:
		return boundFromValue(b.literal, typ)
	case boundComputed:
		if b.compute == nil {
			return BoundValue{}
		}
		return boundFromValue(b.compute(p), typ)
	case boundFieldRef:
		a := peek(p, b.ref, typ)
		if typ == Date {
			if !a.isDate {
				return BoundValue{}
			}
			return BoundValue{Set: true, Date: a.date}
		}
		return boundFromValue(a.text, typ)
	default:
		return BoundValue{}
	}
}

func boundFromValue(v any, typ FieldType) BoundValue {
	if typ == Date {
		switch d := v.(type) {
		case time.Time:
			if d.IsZero() {
				return BoundValue{}
			}
			return BoundValue{Set: true, Date: dateparts.Day(d)}
		case *time.Time:
			if d == nil {
				return BoundValue{}
			}
			return boundFromValue(*d, typ)
		default:
			parsed, err := dateparts.Parse(stringify(v))
			if err != nil {
				return BoundValue{}
			}
			return BoundValue{Set: true, Date: parsed}
		}
	}

	if s, ok := v.(string); ok {
		v = normaliseAmount(s)
	}
	n, ok := sanitizer.ToFloat(v)
	if !ok {
		return BoundValue{}
	}
	return BoundValue{Set: true, Number: n}
}
