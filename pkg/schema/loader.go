package schema

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	santhosh "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	gdsvalidation "github.com/nubz/gds-validation"
)

//go:embed definition.schema.json
var definitionSchema []byte

const definitionSchemaURL = "definition.schema.json"

// DefinitionSchema returns the JSON Schema that page definition documents
// must satisfy.
func DefinitionSchema() []byte {
	return bytes.Clone(definitionSchema)
}

// Format is the encoding of a definition document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Option configures a Loader.
type Option func(*Loader)

// WithClock sets the source of "today" for relative date bounds.
func WithClock(now func() time.Time) Option {
	return func(l *Loader) {
		if now != nil {
			l.now = now
		}
	}
}

// Loader decodes page definitions, checks them against the definition schema
// and builds engine pages. It is safe for concurrent use.
type Loader struct {
	compiled *santhosh.Schema
	now      func() time.Time
}

// NewLoader compiles the embedded definition schema.
func NewLoader(opts ...Option) (*Loader, error) {
	compiler := santhosh.NewCompiler()
	compiler.Draft = santhosh.Draft7
	if err := compiler.AddResource(definitionSchemaURL, bytes.NewReader(definitionSchema)); err != nil {
		return nil, fmt.Errorf("schema: add definition schema: %w", err)
	}
	compiled, err := compiler.Compile(definitionSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("schema: compile definition schema: %w", err)
	}

	l := &Loader{compiled: compiled, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Decode parses and checks a document without building engine pages.
func (l *Loader) Decode(data []byte, format Format) (Document, error) {
	raw, err := toJSON(data, format)
	if err != nil {
		return Document{}, err
	}

	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	if err := l.compiled.Validate(instance); err != nil {
		var ve *santhosh.ValidationError
		if errors.As(err, &ve) {
			return Document{}, &DefinitionError{Problems: collectProblems(ve)}
		}
		return Document{}, &DefinitionError{Problems: []string{err.Error()}}
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return doc, nil
}

// Parse decodes data and builds the schema it defines.
func (l *Loader) Parse(data []byte, format Format) (gdsvalidation.Schema, error) {
	doc, err := l.Decode(data, format)
	if err != nil {
		return gdsvalidation.Schema{}, err
	}
	return Build(doc, l.now)
}

// Read parses a whole document from r.
func (l *Loader) Read(r io.Reader, format Format) (gdsvalidation.Schema, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return gdsvalidation.Schema{}, errors.Join(ErrReadingDefinition, err)
	}
	return l.Parse(data, format)
}

// LoadFile parses the definition at path, choosing the format from its
// extension.
func (l *Loader) LoadFile(path string) (gdsvalidation.Schema, error) {
	return l.LoadFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// LoadFS parses the definition at name within fsys.
func (l *Loader) LoadFS(fsys fs.FS, name string) (gdsvalidation.Schema, error) {
	format, err := FormatFromPath(name)
	if err != nil {
		return gdsvalidation.Schema{}, err
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return gdsvalidation.Schema{}, errors.Join(ErrReadingDefinition, err)
	}
	schema, err := l.Parse(data, format)
	if err != nil {
		return gdsvalidation.Schema{}, fmt.Errorf("%s: %w", name, err)
	}
	return schema, nil
}

// toJSON normalises a document to JSON so one schema check covers both
// formats.
func toJSON(data []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return data, nil
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
		}
		out, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func collectProblems(ve *santhosh.ValidationError) []string {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		return []string{loc + ": " + ve.Message}
	}
	var problems []string
	for _, cause := range ve.Causes {
		problems = append(problems, collectProblems(cause)...)
	}
	return problems
}

var defaultLoader = sync.OnceValues(func() (*Loader, error) {
	return NewLoader()
})

// Parse decodes data with a shared Loader using the system clock.
func Parse(data []byte, format Format) (gdsvalidation.Schema, error) {
	l, err := defaultLoader()
	if err != nil {
		return gdsvalidation.Schema{}, err
	}
	return l.Parse(data, format)
}

// LoadFile loads path with a shared Loader using the system clock.
func LoadFile(path string) (gdsvalidation.Schema, error) {
	l, err := defaultLoader()
	if err != nil {
		return gdsvalidation.Schema{}, err
	}
	return l.LoadFile(path)
}
