package schema

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedFormat = errors.New("schema: unsupported definition format")
	ErrInvalidDefinition = errors.New("schema: invalid page definition")
	ErrInvalidPattern    = errors.New("schema: invalid pattern")
	ErrInvalidBound      = errors.New("schema: invalid bound")
	ErrInvalidCondition  = errors.New("schema: invalid condition")
	ErrReadingDefinition = errors.New("schema: failed to read definition")
)

// DefinitionError lists every way a document breaks the definition schema.
type DefinitionError struct {
	Problems []string
}

func (e *DefinitionError) Error() string {
	return ErrInvalidDefinition.Error() + ": " + strings.Join(e.Problems, "; ")
}

func (e *DefinitionError) Unwrap() error {
	return ErrInvalidDefinition
}
