package gdsvalidation

import (
	"fmt"

	"github.com/nubz/gds-validation/pkg/dateparts"
	"github.com/nubz/gds-validation/pkg/slug"
)

// ErrorDescriptor is the rendered failure of one field.
type ErrorDescriptor struct {
	// ID is the field key.
	ID   string   `json:"id"`
	Key  ErrorKey `json:"key"`
	Href string   `json:"href"`
	Text string   `json:"text"`
	// Inputs lists the sub-inputs in error: date part names for date fields,
	// otherwise the field key.
	Inputs []string `json:"inputs"`
}

// DateLink tells an error summary which date input to focus and which inputs
// to highlight.
type DateLink struct {
	Anchor dateparts.Part
	Inputs []dateparts.Part
}

// dateFieldKeys are the keys a date field may report once all its parts are
// present. They implicate the whole date.
var dateFieldKeys = map[ErrorKey]bool{
	KeyDate:                   true,
	KeyBetweenMinAndMaxDates:  true,
	KeyAfterFixedDate:         true,
	KeyBeforeFixedDate:        true,
	KeyAfterDate:              true,
	KeyBeforeDate:             true,
	KeyBeforeToday:            true,
	KeyAfterToday:             true,
	KeyExactLength:            true,
	KeyBetweenMinAndMaxLength: true,
	KeyTooLong:                true,
	KeyTooShort:               true,
	KeyPattern:                true,
	KeyNoMatch:                true,
}

// DateErrorLink maps an error reported by a date field to its anchor and
// implicated inputs. Keys a date field cannot produce return
// ErrUnknownDateErrorKey.
func DateErrorLink(key ErrorKey) (DateLink, error) {
	if c, ok := dateparts.FromKey(string(key)); ok {
		missing := c.MissingParts()
		return DateLink{Anchor: missing[0], Inputs: missing}, nil
	}
	if dateFieldKeys[key] {
		return DateLink{Anchor: dateparts.PartDay, Inputs: dateparts.AllParts}, nil
	}
	return DateLink{}, fmt.Errorf("%w: %q", ErrUnknownDateErrorKey, key)
}

// BuildHref returns the "#id" link for an error summary entry.
func BuildHref(f Field, key ErrorKey) (string, error) {
	switch f.Type.Normalize() {
	case Date:
		link, err := DateErrorLink(key)
		if err != nil {
			return "", err
		}
		return "#" + link.Anchor.InputID(f.Key), nil
	case Enum:
		if len(f.ValidValues) > 0 {
			return "#" + f.Key + "-" + slug.Make(f.ValidValues[0]), nil
		}
	}
	return "#" + f.Key, nil
}

// InputsInError lists the inputs implicated by an error.
func InputsInError(f Field, key ErrorKey) ([]string, error) {
	if f.Type.Normalize() != Date {
		return []string{f.Key}, nil
	}

	link, err := DateErrorLink(key)
	if err != nil {
		return nil, err
	}
	inputs := make([]string, len(link.Inputs))
	for i, part := range link.Inputs {
		inputs[i] = string(part)
	}
	return inputs, nil
}
