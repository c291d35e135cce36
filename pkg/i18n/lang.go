package i18n

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// MatchLanguage picks the best supported language for an Accept-Language
// header, returning defaultLang when nothing matches.
func MatchLanguage(header string, supported []string, defaultLang string) string {
	if header == "" || len(supported) == 0 {
		return defaultLang
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return defaultLang
	}

	tags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, lang := range supported {
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, lang)
	}
	if len(tags) == 0 {
		return defaultLang
	}

	_, index, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return defaultLang
	}
	return names[index]
}

type localeContextKey struct{}

// SetLocale stores the request language in ctx.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// LocaleFromContext reports the language stored in ctx, if any.
func LocaleFromContext(ctx context.Context) (string, bool) {
	locale, ok := ctx.Value(localeContextKey{}).(string)
	return locale, ok && locale != ""
}

// GetLocale returns the language stored in ctx, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	if locale == "" {
		return DefaultLanguage
	}
	return locale
}

// Middleware stores the request language in the context. An explicit "lang"
// query parameter wins over the Accept-Language header when it names a
// supported language.
func Middleware(t *Translator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			supported := t.SupportedLanguages()
			lang := ""

			if q := strings.ToLower(r.URL.Query().Get("lang")); q != "" {
				for _, s := range supported {
					if strings.EqualFold(s, q) {
						lang = s
						break
					}
				}
			}
			if lang == "" {
				lang = MatchLanguage(r.Header.Get("Accept-Language"), supported, t.DefaultLanguage())
			}

			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
