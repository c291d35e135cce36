package i18n

import (
	"context"
	"fmt"
	"strings"
)

// Parser turns the content of one catalogue file into translations keyed by
// language code.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)

	// SupportsFileExtension accepts extensions with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile picks a parser from the file extension.
func NewParserForFile(filename string) (Parser, error) {
	ext := ""
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		ext = filename[idx+1:]
	}

	switch strings.ToLower(ext) {
	case "json":
		return NewJSONParser(), nil
	case "yaml", "yml":
		return NewYAMLParser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, filename)
	}
}

func toLanguageMap(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		messages, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("invalid structure for language %q: expected map, got %T", lang, val)
		}
		result[lang] = messages
	}
	if len(result) == 0 {
		return nil, ErrNoTranslations
	}
	return result, nil
}
