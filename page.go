package gdsvalidation

import (
	"fmt"
)

// Page is a set of fields validated together as one form submission. Field
// order is the order of the error summary.
type Page struct {
	Key    string
	Title  string
	Fields []Field
}

// Field returns the field with the given key.
func (p Page) Field(key string) (Field, bool) {
	for _, f := range p.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Check reports authoring errors that make the page unusable: empty or
// duplicate field keys.
func (p Page) Check() error {
	seen := make(map[string]bool, len(p.Fields))
	for i, f := range p.Fields {
		if f.Key == "" {
			return fmt.Errorf("%w: page %q field %d", ErrEmptyFieldKey, p.Key, i)
		}
		if seen[f.Key] {
			return fmt.Errorf("%w: page %q field %q", ErrDuplicateFieldKey, p.Key, f.Key)
		}
		seen[f.Key] = true
	}
	return nil
}

// Schema is an ordered list of pages, such as the steps of a wizard.
type Schema struct {
	Pages []Page
}

// Page returns the page with the given key.
func (s Schema) Page(key string) (Page, error) {
	for _, p := range s.Pages {
		if p.Key == key {
			return p, nil
		}
	}
	return Page{}, fmt.Errorf("%w: %q", ErrPageNotFound, key)
}

// Report is the outcome of validating one page.
type Report struct {
	// Summary lists failures in field order.
	Summary []ErrorDescriptor `json:"summary"`
	// Inline indexes failures by field key.
	Inline map[string]ErrorDescriptor `json:"inline"`
	// Text maps field keys to their message.
	Text      map[string]string `json:"text"`
	HasErrors bool              `json:"hasErrors"`
	// Values is the payload after normalisation: currency symbols and
	// separators removed, date parts composed, transforms applied.
	Values Payload `json:"values,omitempty"`
}

func newReport(values Payload) *Report {
	return &Report{
		Summary: []ErrorDescriptor{},
		Inline:  map[string]ErrorDescriptor{},
		Text:    map[string]string{},
		Values:  values,
	}
}

func (r *Report) add(d ErrorDescriptor) {
	r.Summary = append(r.Summary, d)
	r.Inline[d.ID] = d
	r.Text[d.ID] = d.Text
	r.HasErrors = true
}
