package gdsvalidation

import (
	"slices"
	"strings"
)

// Predicate decides whether a field takes part in validation.
type Predicate func(Payload) bool

// WhenEquals is true when the answer under key (or any item of a list answer)
// equals one of values.
func WhenEquals(key string, values ...string) Predicate {
	return func(p Payload) bool {
		for _, answer := range p.Strings(key) {
			if slices.Contains(values, answer) {
				return true
			}
		}
		return false
	}
}

// WhenPresent is true when key holds a non-blank answer.
func WhenPresent(key string) Predicate {
	return func(p Payload) bool {
		for _, answer := range p.Strings(key) {
			if strings.TrimSpace(answer) != "" {
				return true
			}
		}
		return false
	}
}

// WhenTrue is true when key holds a truthy answer such as "true", "yes" or "on".
func WhenTrue(key string) Predicate {
	return func(p Payload) bool {
		switch strings.ToLower(strings.TrimSpace(p.String(key))) {
		case "true", "yes", "on", "1":
			return true
		}
		return false
	}
}

// WhenAll is true when every non-nil predicate holds, including when there are none.
func WhenAll(preds ...Predicate) Predicate {
	return func(p Payload) bool {
		for _, pred := range preds {
			if pred != nil && !pred(p) {
				return false
			}
		}
		return true
	}
}

// WhenAny is true when at least one non-nil predicate holds.
func WhenAny(preds ...Predicate) Predicate {
	return func(p Payload) bool {
		for _, pred := range preds {
			if pred != nil && pred(p) {
				return true
			}
		}
		return false
	}
}

// Not negates pred. Not(nil) is false.
func Not(pred Predicate) Predicate {
	return func(p Payload) bool {
		return pred != nil && !pred(p)
	}
}
