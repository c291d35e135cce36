package schema

import (
	"fmt"
	"slices"

	gdsvalidation "github.com/nubz/gds-validation"
)

// Severity grades a lint issue.
type Severity string

const (
	// SeverityError marks definitions that reject every answer or can never
	// be satisfied.
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one authoring problem found by Lint.
type Issue struct {
	Page     string   `json:"page"`
	Field    string   `json:"field,omitempty"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	loc := i.Page
	if i.Field != "" {
		loc += "." + i.Field
	}
	return fmt.Sprintf("%s: %s: %s", i.Severity, loc, i.Message)
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	return slices.ContainsFunc(issues, func(i Issue) bool { return i.Severity == SeverityError })
}

// Lint reports definitions that validate but are unlikely to behave as
// intended: choices with no valid values, contradictory constraints,
// references to unknown fields and settings the field type ignores.
func Lint(schema gdsvalidation.Schema) []Issue {
	known := map[string]bool{}
	for _, page := range schema.Pages {
		for _, f := range page.Fields {
			known[f.Key] = true
		}
	}

	var issues []Issue
	for _, page := range schema.Pages {
		if len(page.Fields) == 0 {
			issues = append(issues, Issue{Page: page.Key, Severity: SeverityWarning, Message: "page has no fields"})
		}
		for _, f := range page.Fields {
			l := fieldLinter{page: page.Key, field: f, known: known}
			l.run()
			issues = append(issues, l.issues...)
		}
	}
	return issues
}

type fieldLinter struct {
	page   string
	field  gdsvalidation.Field
	known  map[string]bool
	issues []Issue
}

func (l *fieldLinter) report(sev Severity, format string, args ...any) {
	l.issues = append(l.issues, Issue{
		Page:     l.page,
		Field:    l.field.Key,
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (l *fieldLinter) run() {
	f := l.field
	typ := f.Type.Normalize()

	if !f.Type.Known() {
		l.report(SeverityWarning, "unknown type %q is validated as %s", f.Type, gdsvalidation.NonEmptyString)
	}
	if f.Name == "" {
		l.report(SeverityWarning, "no name, messages will use the key")
	}

	if (typ == gdsvalidation.Enum || typ == gdsvalidation.Array) && len(f.ValidValues) == 0 {
		if typ == gdsvalidation.Enum {
			l.report(SeverityError, "enum without validValues rejects every answer")
		} else {
			l.report(SeverityWarning, "array without validValues accepts any items")
		}
	}

	if f.ExactLength > 0 && (f.MinLength > 0 || f.MaxLength > 0) {
		l.report(SeverityWarning, "exactLength is checked first, minLength and maxLength are redundant")
	}
	if f.MinLength > 0 && f.MaxLength > 0 && f.MinLength > f.MaxLength {
		l.report(SeverityError, "minLength %d is greater than maxLength %d", f.MinLength, f.MaxLength)
	}

	if f.BeforeToday && f.AfterToday {
		l.report(SeverityError, "beforeToday and afterToday can never both pass")
	}
	if (f.BeforeToday || f.AfterToday) && typ != gdsvalidation.Date {
		l.report(SeverityWarning, "beforeToday and afterToday only apply to dates")
	}

	l.bounds(typ)

	for key := range f.Errors {
		if !slices.Contains(gdsvalidation.ErrorKeys, key) {
			l.report(SeverityWarning, "message override for unknown error key %q", key)
		}
	}
}

func (l *fieldLinter) bounds(typ gdsvalidation.FieldType) {
	f := l.field
	bounds := []struct {
		name  string
		bound *gdsvalidation.Bound
	}{
		{"min", f.Min},
		{"max", f.Max},
		{"afterDateFrom", f.AfterDateFrom},
		{"beforeDateFrom", f.BeforeDateFrom},
		{"maxCurrencyFrom", f.MaxCurrencyFrom},
	}

	for _, nb := range bounds {
		name, b := nb.name, nb.bound
		if b == nil {
			continue
		}
		switch {
		case typ != gdsvalidation.Number && typ != gdsvalidation.Currency && typ != gdsvalidation.Date:
			l.report(SeverityWarning, "%s is ignored for %s fields", name, typ)
			continue
		case (name == "afterDateFrom" || name == "beforeDateFrom") && typ != gdsvalidation.Date:
			l.report(SeverityWarning, "%s only applies to dates", name)
		case name == "maxCurrencyFrom" && typ == gdsvalidation.Date:
			l.report(SeverityWarning, "maxCurrencyFrom does not apply to dates")
		}

		if v, ok := b.Fixed(typ); ok && !v.Set {
			if typ == gdsvalidation.Date {
				l.report(SeverityError, "%s %s is not a YYYY-MM-DD date and is ignored", name, b)
			} else {
				l.report(SeverityError, "%s %s is not a number and is ignored", name, b)
			}
		}

		if ref, ok := b.Ref(); ok {
			if ref == f.Key {
				l.report(SeverityError, "%s refers to the field itself", name)
			} else if !l.known[ref] {
				l.report(SeverityWarning, "%s refers to unknown field %q", name, ref)
			}
		}
	}

	rf := gdsvalidation.Resolve(nil, f)
	lo, hi := rf.MinValue, rf.MaxValue
	if !lo.Set || !hi.Set {
		return
	}
	if typ == gdsvalidation.Date {
		if !lo.Date.Before(hi.Date) {
			l.report(SeverityError, "min %s is not before max %s", lo.ISO(), hi.ISO())
		}
		return
	}
	if lo.Number > hi.Number {
		l.report(SeverityError, "min %v is greater than max %v", lo.Number, hi.Number)
	}
}
