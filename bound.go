package gdsvalidation

import (
	"fmt"
	"time"
)

type boundKind uint8

const (
	boundLiteral boundKind = iota + 1
	boundFieldRef
	boundComputed
)

// Bound is a min or max constraint whose value is known up front, read from
// another answer, or computed from the whole payload.
type Bound struct {
	kind    boundKind
	literal any
	ref     string
	compute func(Payload) any
}

// Literal bounds by a fixed value: a number, a numeric string, an ISO date
// string or a time.Time.
func Literal(v any) *Bound {
	return &Bound{kind: boundLiteral, literal: v}
}

// FieldRef bounds by the answer given for another field. The referenced
// answer is normalised the same way as the field carrying the bound, so a date
// field can refer to another date entered as day, month and year parts.
func FieldRef(key string) *Bound {
	return &Bound{kind: boundFieldRef, ref: key}
}

// Computed bounds by the result of fn, called with the submitted payload.
func Computed(fn func(Payload) any) *Bound {
	return &Bound{kind: boundComputed, compute: fn}
}

// Ref returns the referenced key for FieldRef bounds.
func (b *Bound) Ref() (string, bool) {
	if b == nil || b.kind != boundFieldRef {
		return "", false
	}
	return b.ref, true
}

// Fixed evaluates a Literal bound for a field of type typ. It reports false
// for other kinds, whose value depends on the payload.
func (b *Bound) Fixed(typ FieldType) (BoundValue, bool) {
	if b == nil || b.kind != boundLiteral {
		return BoundValue{}, false
	}
	return boundFromValue(b.literal, typ.Normalize()), true
}

func (b *Bound) String() string {
	if b == nil {
		return "<nil>"
	}
	switch b.kind {
	case boundLiteral:
		return fmt.Sprintf("literal(%v)", b.literal)
	case boundFieldRef:
		return "field(" + b.ref + ")"
	case boundComputed:
		return "computed"
	default:
		return "<invalid>"
	}
}

// BoundValue is a bound evaluated for one validation call.
type BoundValue struct {
	Set bool
	// Number holds the bound for number and currency fields.
	Number float64
	// Date holds the bound for date fields, at midnight UTC.
	Date time.Time
	// Derived marks values produced by AfterDateFrom, BeforeDateFrom or
	// MaxCurrencyFrom.
	Derived bool
}

// ISO renders a date bound as YYYY-MM-DD.
func (v BoundValue) ISO() string {
	if !v.Set || v.Date.IsZero() {
		return ""
	}
	return v.Date.Format("2006-01-02")
}
