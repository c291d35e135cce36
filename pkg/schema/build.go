package schema

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	gdsvalidation "github.com/nubz/gds-validation"
	"github.com/nubz/gds-validation/pkg/dateparts"
	"github.com/nubz/gds-validation/pkg/sanitizer"
)

// Build turns a decoded document into engine pages. now supplies "today" for
// relative date bounds.
func Build(doc Document, now func() time.Time) (gdsvalidation.Schema, error) {
	if now == nil {
		now = time.Now
	}

	schema := gdsvalidation.Schema{Pages: make([]gdsvalidation.Page, 0, len(doc.Pages))}
	for _, pd := range doc.Pages {
		page := gdsvalidation.Page{
			Key:    pd.Key,
			Title:  pd.Title,
			Fields: make([]gdsvalidation.Field, 0, len(pd.Fields)),
		}
		for _, fd := range pd.Fields {
			f, err := buildField(fd, now)
			if err != nil {
				return gdsvalidation.Schema{}, fmt.Errorf("page %q field %q: %w", pd.Key, fd.Key, err)
			}
			page.Fields = append(page.Fields, f)
		}
		if err := page.Check(); err != nil {
			return gdsvalidation.Schema{}, err
		}
		schema.Pages = append(schema.Pages, page)
	}
	return schema, nil
}

func buildField(fd FieldDef, now func() time.Time) (gdsvalidation.Field, error) {
	f := gdsvalidation.Field{
		Key:                fd.Key,
		Type:               gdsvalidation.FieldType(fd.Type),
		Name:               fd.Name,
		ExactLength:        fd.ExactLength,
		MinLength:          fd.MinLength,
		MaxLength:          fd.MaxLength,
		InputType:          fd.InputType,
		BeforeToday:        fd.BeforeToday,
		AfterToday:         fd.AfterToday,
		ValidValues:        fd.ValidValues,
		PatternText:        fd.PatternText,
		Matches:            fd.Matches,
		MatchingExclusions: fd.MatchingExclusions,
		NoMatchText:        fd.NoMatchText,
		MinDescription:     fd.MinDescription,
		MaxDescription:     fd.MaxDescription,
		AfterField:         fd.AfterField,
		BeforeField:        fd.BeforeField,
		CurrencyMaxField:   fd.CurrencyMaxField,
	}

	var err error
	bounds := []struct {
		def *BoundDef
		dst **gdsvalidation.Bound
	}{
		{fd.Min, &f.Min},
		{fd.Max, &f.Max},
		{fd.AfterDateFrom, &f.AfterDateFrom},
		{fd.BeforeDateFrom, &f.BeforeDateFrom},
		{fd.MaxCurrencyFrom, &f.MaxCurrencyFrom},
	}
	for _, b := range bounds {
		if *b.dst, err = buildBound(b.def, now); err != nil {
			return f, err
		}
	}

	if fd.Pattern != "" {
		re, err := regexp.Compile(fd.Pattern)
		if err != nil {
			return f, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
		}
		f.Regex = re
	}

	if len(fd.Transform) > 0 {
		fn, err := sanitizer.Pipeline(fd.Transform...)
		if err != nil {
			return f, err
		}
		f.Transform = transform(fd.Key, f.Type, fn)
	}

	if fd.IncludeIf != nil {
		if f.IncludeIf, err = buildCondition(*fd.IncludeIf); err != nil {
			return f, err
		}
	}

	if len(fd.Errors) > 0 {
		f.Errors = make(map[gdsvalidation.ErrorKey]gdsvalidation.Message, len(fd.Errors))
		for key, text := range fd.Errors {
			f.Errors[gdsvalidation.ErrorKey(key)] = gdsvalidation.Template(text)
		}
	}

	return f, nil
}

// transform applies fn to the answer under key. List answers are transformed
// item by item.
func transform(key string, typ gdsvalidation.FieldType, fn func(string) string) func(gdsvalidation.Payload) any {
	if typ == gdsvalidation.Array {
		return func(p gdsvalidation.Payload) any {
			items := p.Strings(key)
			for i, item := range items {
				items[i] = fn(item)
			}
			return items
		}
	}
	return func(p gdsvalidation.Payload) any {
		if !p.Has(key) {
			return nil
		}
		return fn(p.String(key))
	}
}

func buildBound(def *BoundDef, now func() time.Time) (*gdsvalidation.Bound, error) {
	switch {
	case def == nil:
		return nil, nil
	case def.Field != "":
		return gdsvalidation.FieldRef(def.Field), nil
	case def.Today != nil:
		off := *def.Today
		return gdsvalidation.Computed(func(gdsvalidation.Payload) any {
			return dateparts.Day(now()).AddDate(off.Years, off.Months, off.Days)
		}), nil
	}

	switch v := def.Value.(type) {
	case float64:
		return gdsvalidation.Literal(v), nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil, fmt.Errorf("%w: empty string", ErrInvalidBound)
		}
		if _, ok := sanitizer.ToFloat(sanitizer.StripCurrencySymbol(s)); ok {
			return gdsvalidation.Literal(s), nil
		}
		if _, err := dateparts.Parse(s); err == nil {
			return gdsvalidation.Literal(s), nil
		}
		return gdsvalidation.FieldRef(s), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBound, def.Value)
	}
}

func buildCondition(c ConditionDef) (gdsvalidation.Predicate, error) {
	forms := 0
	for _, set := range []bool{c.Field != "", len(c.All) > 0, len(c.Any) > 0, c.Not != nil} {
		if set {
			forms++
		}
	}
	if forms != 1 {
		return nil, fmt.Errorf("%w: exactly one of field, all, any or not is required", ErrInvalidCondition)
	}

	switch {
	case c.Field != "":
		return leafCondition(c)
	case c.Not != nil:
		inner, err := buildCondition(*c.Not)
		if err != nil {
			return nil, err
		}
		return gdsvalidation.Not(inner), nil
	}

	children := c.All
	if len(c.Any) > 0 {
		children = c.Any
	}
	preds := make([]gdsvalidation.Predicate, 0, len(children))
	for _, child := range children {
		p, err := buildCondition(child)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}
	if len(c.Any) > 0 {
		return gdsvalidation.WhenAny(preds...), nil
	}
	return gdsvalidation.WhenAll(preds...), nil
}

func leafCondition(c ConditionDef) (gdsvalidation.Predicate, error) {
	tests := 0
	var pred gdsvalidation.Predicate
	if len(c.Equals) > 0 {
		tests++
		pred = gdsvalidation.WhenEquals(c.Field, c.Equals...)
	}
	if c.Present {
		tests++
		pred = gdsvalidation.WhenPresent(c.Field)
	}
	if c.Truthy {
		tests++
		pred = gdsvalidation.WhenTrue(c.Field)
	}
	if tests != 1 {
		return nil, fmt.Errorf("%w: field %q needs exactly one of equals, present or truthy", ErrInvalidCondition, c.Field)
	}
	return pred, nil
}
