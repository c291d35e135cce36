package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// DefaultLanguage is used when no language is configured or detected.
const DefaultLanguage = "en"

// Translator resolves message keys to templates and renders %{name}
// placeholders. It is safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
	adapter        TranslationAdapter
}

// NewTranslator creates a Translator and loads its catalogue from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		adapter:       adapter,
	}

	for _, option := range options {
		option(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload replaces the catalogue with a fresh load from the adapter.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}

	for lang, messages := range translations {
		if lang == "" {
			return ErrEmptyLanguageCode
		}
		if messages == nil {
			return fmt.Errorf("nil translations map for language: %s", lang)
		}
	}
	if len(translations) == 0 {
		t.logger.WarnContext(ctx, "No translations provided")
	}

	t.mu.Lock()
	t.translations = translations
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "Translations loaded", "languages", t.SupportedLanguages())
	return nil
}

// DefaultLanguage returns the configured fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// SupportedLanguages returns the language codes with translations, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// HasTranslation reports whether lang itself defines key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.template(lang, key)
	return ok
}

// Lookup returns the raw template for key, trying lang and then the default
// language.
func (t *Translator) Lookup(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tmpl, ok := t.template(lang, key); ok {
		return tmpl, true
	}
	if lang != t.defaultLang {
		if tmpl, ok := t.template(t.defaultLang, key); ok {
			return tmpl, true
		}
	}
	return "", false
}

// T translates key, substituting key-value argument pairs into "%{name}"
// placeholders.
//
//	// With translation "required": "Enter %{name}"
//	msg := translator.T("en", "required", "name", "your email address")
//	// Returns: "Enter your email address"
//
// Missing translations return the key itself when fallback to key is enabled,
// otherwise an empty string.
func (t *Translator) T(lang, key string, args ...string) string {
	return t.Render(lang, key, pairsToParams(args))
}

// Render is T with parameters supplied as a map.
func (t *Translator) Render(lang, key string, params map[string]string) string {
	tmpl, ok := t.Lookup(lang, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("Translation not found", "lang", lang, "key", key)
		}
		if t.fallbackToKey {
			return Interpolate(key, params)
		}
		return ""
	}
	return Interpolate(tmpl, params)
}

func (t *Translator) template(lang, key string) (string, bool) {
	messages, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	val, ok := lookupPath(messages, key)
	if !ok {
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

// lookupPath traverses nested maps using dot-separated keys, so
// "date.dayRequired" reads m["date"]["dayRequired"]. A flat key containing dots
// is tried first.
func lookupPath(m map[string]any, key string) (any, bool) {
	if val, ok := m[key]; ok {
		return val, true
	}

	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			converted := make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					converted[ks] = v
				}
			}
			current = converted
		default:
			return nil, false
		}
	}
	return nil, false
}

func pairsToParams(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Interpolate replaces "%{name}" placeholders with values from params.
// Unknown placeholders are left as they are.
func Interpolate(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
