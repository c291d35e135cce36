package i18n_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nubz/gds-validation/pkg/i18n"
)

func TestMatchLanguage(t *testing.T) {
	supported := []string{"en", "cy"}

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{"empty header", "", "en"},
		{"exact", "cy", "cy"},
		{"regional variant", "en-GB,en;q=0.9", "en"},
		{"quality ordering", "cy;q=0.8,en;q=0.9", "en"},
		{"welsh preferred", "cy-GB,en;q=0.5", "cy"},
		{"unsupported", "fr-FR", "en"},
		{"malformed", ";;;", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, i18n.MatchLanguage(tt.header, supported, "en"))
		})
	}
}

func TestLocaleContext(t *testing.T) {
	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(context.Background()))
	assert.Equal(t, "cy", i18n.GetLocale(i18n.SetLocale(context.Background(), "cy")))
}

func TestMiddleware(t *testing.T) {
	tr := newTestTranslator(t)

	var got string
	handler := i18n.Middleware(tr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = i18n.GetLocale(r.Context())
	}))

	t.Run("query parameter wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=CY", nil)
		req.Header.Set("Accept-Language", "en")
		handler.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "cy", got)
	})

	t.Run("unsupported query parameter is ignored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=de", nil)
		req.Header.Set("Accept-Language", "cy")
		handler.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "cy", got)
	})

	t.Run("defaults", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
		require.NotEmpty(t, got)
		assert.Equal(t, "en", got)
	})
}
