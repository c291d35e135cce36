package gdsvalidation

import "errors"

var (
	// ErrUnknownDateErrorKey signals a date field reporting an error key that has
	// no anchor mapping. It indicates a broken page definition.
	ErrUnknownDateErrorKey = errors.New("gdsvalidation: unknown date error key")
	ErrDuplicateFieldKey   = errors.New("gdsvalidation: duplicate field key")
	ErrEmptyFieldKey       = errors.New("gdsvalidation: field key is empty")
	ErrPageNotFound        = errors.New("gdsvalidation: page not found")
)
