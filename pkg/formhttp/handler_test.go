package formhttp_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gdsvalidation "github.com/nubz/gds-validation"
	"github.com/nubz/gds-validation/pkg/formhttp"
	"github.com/nubz/gds-validation/pkg/i18n"
	"github.com/nubz/gds-validation/pkg/requestid"
)

var contactSchema = gdsvalidation.Schema{Pages: []gdsvalidation.Page{
	{
		Key:   "contact",
		Title: "How should we contact you?",
		Fields: []gdsvalidation.Field{
			{Key: "name", Type: gdsvalidation.NonEmptyString, Name: "your name"},
			{Key: "method", Type: gdsvalidation.Enum, Name: "how to contact you", ValidValues: []string{"email", "post"}},
			{Key: "email", Type: gdsvalidation.NonEmptyString, Name: "your email address",
				IncludeIf: gdsvalidation.WhenEquals("method", "email")},
		},
	},
}}

type envelope struct {
	Data  json.RawMessage       `json:"data"`
	Meta  map[string]any        `json:"meta"`
	Error *formhttp.ErrorDetail `json:"error"`
}

func newRouter(t *testing.T, opts ...formhttp.Option) http.Handler {
	t.Helper()
	tr, err := i18n.NewTranslator(context.Background(), i18n.NewLayeredAdapter(
		gdsvalidation.BuiltinMessages(),
		&i18n.MapAdapter{Data: map[string]map[string]any{
			"cy": {"required": "Rhowch %{name}"},
		}},
	))
	require.NoError(t, err)
	e, err := gdsvalidation.New(gdsvalidation.WithTranslator(tr))
	require.NoError(t, err)
	return formhttp.New(e, contactSchema, opts...).Router()
}

func submit(t *testing.T, h http.Handler, target string, form url.Values) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.RemoteAddr = "192.0.2.10:5000"
	return serve(t, h, req)
}

func serve(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func report(t *testing.T, env envelope) gdsvalidation.Report {
	t.Helper()
	var r gdsvalidation.Report
	require.NoError(t, json.Unmarshal(env.Data, &r))
	return r
}

func TestValidateEndpoint(t *testing.T) {
	h := newRouter(t)

	t.Run("valid submission", func(t *testing.T) {
		rec, env := submit(t, h, "/pages/contact/validate", url.Values{
			"name":   {"Ann"},
			"method": {"post"},
		})
		require.Equal(t, http.StatusOK, rec.Code)
		r := report(t, env)
		assert.False(t, r.HasErrors)
		assert.Empty(t, r.Summary)
		assert.Equal(t, rec.Header().Get(requestid.Header), env.Meta["requestId"])
		assert.Equal(t, "en", env.Meta["lang"])
	})

	t.Run("errors in field order", func(t *testing.T) {
		rec, env := submit(t, h, "/pages/contact/validate", url.Values{"method": {"email"}})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		r := report(t, env)
		require.True(t, r.HasErrors)
		require.Len(t, r.Summary, 2)
		assert.Equal(t, "name", r.Summary[0].ID)
		assert.Equal(t, "Enter your name", r.Summary[0].Text)
		assert.Equal(t, "#name", r.Summary[0].Href)
		assert.Equal(t, "email", r.Summary[1].ID)
		assert.Equal(t, "Enter your email address", r.Text["email"])
	})

	t.Run("language from query", func(t *testing.T) {
		_, env := submit(t, h, "/pages/contact/validate?lang=cy", url.Values{"method": {"post"}})
		r := report(t, env)
		assert.Equal(t, "Rhowch your name", r.Text["name"])
		assert.Equal(t, "cy", env.Meta["lang"])
	})

	t.Run("language from header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/pages/contact/validate", strings.NewReader(`{"method":"post"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept-Language", "cy-GB, en;q=0.5")
		req.Header.Set(requestid.Header, "req-42")
		rec, env := serve(t, h, req)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "Rhowch your name", report(t, env).Text["name"])
		assert.Equal(t, "req-42", env.Meta["requestId"])
	})

	t.Run("unknown page", func(t *testing.T) {
		rec, env := submit(t, h, "/pages/missing/validate", url.Values{})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "page_not_found", env.Error.Code)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/pages/contact/validate", strings.NewReader("name=Ann"))
		req.Header.Set("Content-Type", "text/plain")
		rec, env := serve(t, h, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
		assert.Equal(t, "unsupported_media_type", env.Error.Code)
	})

	t.Run("body too large", func(t *testing.T) {
		small := newRouter(t, formhttp.WithMaxBodyBytes(16))
		rec, env := submit(t, small, "/pages/contact/validate", url.Values{"name": {strings.Repeat("a", 64)}})
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, "request_entity_too_large", env.Error.Code)
	})
}

func TestPagesEndpoint(t *testing.T) {
	h := newRouter(t)

	t.Run("list", func(t *testing.T) {
		rec, env := serve(t, h, httptest.NewRequest(http.MethodGet, "/pages", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var pages []formhttp.PageSummary
		require.NoError(t, json.Unmarshal(env.Data, &pages))
		require.Len(t, pages, 1)
		assert.Equal(t, "contact", pages[0].Key)
		require.Len(t, pages[0].Fields, 3)
		assert.Equal(t, []string{"email", "post"}, pages[0].Fields[1].ValidValues)
	})

	t.Run("one page", func(t *testing.T) {
		rec, env := serve(t, h, httptest.NewRequest(http.MethodGet, "/pages/contact", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var page formhttp.PageSummary
		require.NoError(t, json.Unmarshal(env.Data, &page))
		assert.Equal(t, "How should we contact you?", page.Title)
		assert.Equal(t, "nonEmptyString", page.Fields[0].Type)
	})

	t.Run("missing page", func(t *testing.T) {
		rec, _ := serve(t, h, httptest.NewRequest(http.MethodGet, "/pages/nope", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestProbes(t *testing.T) {
	h := newRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "READY", rec.Body.String())

	e, err := gdsvalidation.New()
	require.NoError(t, err)
	empty := formhttp.New(e, gdsvalidation.Schema{}).Router()
	rec = httptest.NewRecorder()
	empty.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRateLimit(t *testing.T) {
	h := newRouter(t, formhttp.WithRateLimit(1, time.Minute))
	form := url.Values{"name": {"Ann"}, "method": {"post"}}

	rec, _ := submit(t, h, "/pages/contact/validate", form)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = submit(t, h, "/pages/contact/validate", form)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec, _ = serve(t, h, httptest.NewRequest(http.MethodGet, "/pages", nil))
	assert.Equal(t, http.StatusOK, rec.Code, "only validation is limited")
}

func TestCORS(t *testing.T) {
	h := newRouter(t, formhttp.WithCORS("https://forms.example"))

	req := httptest.NewRequest(http.MethodOptions, "/pages/contact/validate", nil)
	req.Header.Set("Origin", "https://forms.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "https://forms.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/pages", nil)
	req.Header.Set("Origin", "https://elsewhere.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
