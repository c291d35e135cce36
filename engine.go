package gdsvalidation

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nubz/gds-validation/pkg/i18n"
	"github.com/nubz/gds-validation/pkg/logger"
)

//go:embed messages/*.yaml
var builtinMessages embed.FS

// BuiltinMessages returns the catalogue adapter for the default English
// messages, for stacking under service specific overrides.
func BuiltinMessages() i18n.TranslationAdapter {
	return i18n.NewFSAdapter(i18n.NewYAMLParser(), builtinMessages, "messages")
}

// Engine validates pages. It holds no per-call state and is safe for
// concurrent use.
type Engine struct {
	translator *i18n.Translator
	lang       string
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithTranslator replaces the built-in message catalogue.
func WithTranslator(t *i18n.Translator) Option {
	return func(e *Engine) {
		if t != nil {
			e.translator = t
		}
	}
}

// WithLanguage sets the message language used when the context carries none.
func WithLanguage(lang string) Option {
	return func(e *Engine) {
		if lang != "" {
			e.lang = lang
		}
	}
}

// WithLogger sets the logger for debug output. The default discards it.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.logger = log
		}
	}
}

// WithClock sets the source of "today" for beforeToday and afterToday.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// New creates an Engine. Without WithTranslator the embedded English catalogue
// is loaded.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		lang:   i18n.DefaultLanguage,
		logger: logger.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.translator == nil {
		t, err := i18n.NewTranslator(context.Background(), BuiltinMessages(),
			i18n.WithDefaultLanguage(i18n.DefaultLanguage),
			i18n.WithLogger(e.logger),
		)
		if err != nil {
			return nil, fmt.Errorf("gdsvalidation: load built-in messages: %w", err)
		}
		e.translator = t
	}
	return e, nil
}

// Validate checks every included field of page against payload. The payload is
// not modified; its normalised copy is returned in Report.Values. The error is
// non-nil only for broken page definitions.
func (e *Engine) Validate(ctx context.Context, payload Payload, page Page) (*Report, error) {
	if err := page.Check(); err != nil {
		return nil, err
	}

	values := payload.Clone()
	report := newReport(values)
	lang := e.language(ctx)
	today := e.now()

	for _, f := range page.Fields {
		d, err := e.validateField(ctx, values, f, lang, today)
		if err != nil {
			return nil, err
		}
		if d != nil {
			report.add(*d)
		}
	}

	if report.HasErrors {
		e.logger.DebugContext(ctx, "page has errors",
			logger.Page(page.Key),
			slog.Int("errors", len(report.Summary)),
		)
	}
	return report, nil
}

// IsPageValid reports whether page has no errors for payload.
func (e *Engine) IsPageValid(ctx context.Context, payload Payload, page Page) (bool, error) {
	report, err := e.Validate(ctx, payload, page)
	if err != nil {
		return false, err
	}
	return !report.HasErrors, nil
}

// IsSchemaValid reports whether every page of schema is valid for payload.
// Each page sees the caller's payload, not another page's normalised values.
func (e *Engine) IsSchemaValid(ctx context.Context, payload Payload, schema Schema) (bool, error) {
	for _, page := range schema.Pages {
		ok, err := e.IsPageValid(ctx, payload, page)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// ValidateField checks a single field. It returns nil when the field is valid
// or excluded by IncludeIf.
func (e *Engine) ValidateField(ctx context.Context, payload Payload, f Field) (*ErrorDescriptor, error) {
	if f.Key == "" {
		return nil, ErrEmptyFieldKey
	}
	return e.validateField(ctx, payload.Clone(), f, e.language(ctx), e.now())
}

// IsValidField reports whether a single field is valid.
func (e *Engine) IsValidField(ctx context.Context, payload Payload, f Field) (bool, error) {
	d, err := e.ValidateField(ctx, payload, f)
	return d == nil && err == nil, err
}

// ErrorMessage renders the message for key, preferring the field's own
// override.
func (e *Engine) ErrorMessage(key ErrorKey, rf ResolvedField) string {
	return e.message(e.lang, key, rf)
}

// Translator returns the message catalogue, for language negotiation by
// callers.
func (e *Engine) Translator() *i18n.Translator {
	return e.translator
}

func (e *Engine) message(lang string, key ErrorKey, rf ResolvedField) string {
	if custom, ok := rf.Errors[key]; ok {
		return custom.render(rf)
	}
	return e.translator.Render(lang, string(key), messageParams(rf))
}

func (e *Engine) validateField(ctx context.Context, values Payload, f Field, lang string, today time.Time) (*ErrorDescriptor, error) {
	if !f.included(values) {
		return nil, nil
	}

	rf := Resolve(values, f)
	a := coerce(values, f.Key, f, rf.Type)

	key, failed := check(rf, a, today)
	if !failed {
		return nil, nil
	}

	href, err := BuildHref(rf.Field, key)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", f.Key, err)
	}
	inputs, err := InputsInError(rf.Field, key)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", f.Key, err)
	}

	e.logger.DebugContext(ctx, "field failed validation",
		logger.Field(f.Key),
		logger.ErrorKey(string(key)),
		logger.Language(lang),
	)

	return &ErrorDescriptor{
		ID:     f.Key,
		Key:    key,
		Href:   href,
		Text:   e.message(lang, key, rf),
		Inputs: inputs,
	}, nil
}

func (e *Engine) language(ctx context.Context) string {
	if lang, ok := i18n.LocaleFromContext(ctx); ok {
		return lang
	}
	return e.lang
}

var defaultEngine = sync.OnceValue(func() *Engine {
	e, err := New()
	if err != nil {
		panic(err)
	}
	return e
})

// Default returns the shared engine used by the package level functions.
func Default() *Engine {
	return defaultEngine()
}

// Validate validates page with the default engine.
func Validate(ctx context.Context, payload Payload, page Page) (*Report, error) {
	return Default().Validate(ctx, payload, page)
}

// IsPageValid checks page with the default engine.
func IsPageValid(ctx context.Context, payload Payload, page Page) (bool, error) {
	return Default().IsPageValid(ctx, payload, page)
}

// ErrorMessage renders a message with the default engine.
func ErrorMessage(key ErrorKey, rf ResolvedField) string {
	return Default().ErrorMessage(key, rf)
}
