package formhttp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	gdsvalidation "github.com/nubz/gds-validation"
	"github.com/nubz/gds-validation/pkg/config"
	"github.com/nubz/gds-validation/pkg/httpserver"
	"github.com/nubz/gds-validation/pkg/i18n"
	"github.com/nubz/gds-validation/pkg/logger"
	"github.com/nubz/gds-validation/pkg/requestid"
)

// Handler serves the pages of one schema over HTTP.
type Handler struct {
	engine     *gdsvalidation.Engine
	schema     gdsvalidation.Schema
	log        *slog.Logger
	maxBytes   int64
	origins    []string
	rateLimit  int
	rateWindow time.Duration
}

// Option configures a Handler.
type Option func(*Handler)

func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// WithMaxBodyBytes caps the size of a submission.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBytes = n
		}
	}
}

// WithCORS allows browsers on origins to call the API.
func WithCORS(origins ...string) Option {
	return func(h *Handler) {
		h.origins = append(h.origins, origins...)
	}
}

// WithRateLimit allows n validation requests per client IP in each window.
func WithRateLimit(n int, window time.Duration) Option {
	return func(h *Handler) {
		if n > 0 && window > 0 {
			h.rateLimit, h.rateWindow = n, window
		}
	}
}

// WithService applies the body limit, CORS origins and rate limit of s.
func WithService(s config.Service) Option {
	return func(h *Handler) {
		WithMaxBodyBytes(s.MaxBodyBytes)(h)
		WithCORS(s.CORSOrigins...)(h)
		WithRateLimit(s.RateLimit, s.RateWindow)(h)
	}
}

// New creates a Handler for schema.
func New(engine *gdsvalidation.Engine, schema gdsvalidation.Schema, opts ...Option) *Handler {
	h := &Handler{
		engine:   engine,
		schema:   schema,
		log:      logger.Discard(),
		maxBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Router mounts the API:
//
//	GET  /healthz                 liveness
//	GET  /readyz                  readiness
//	GET  /pages                   page and field summaries
//	GET  /pages/{page}            one page summary
//	POST /pages/{page}/validate   validate a submission
//
// Message language is negotiated from the lang query parameter or the
// Accept-Language header.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(requestid.Middleware())
	r.Use(accessLog(h.log))
	if len(h.origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Accept-Language", "Content-Type", requestid.Header},
			ExposedHeaders: []string{requestid.Header},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", httpserver.HealthCheckHandler(h.log))
	r.Get("/readyz", httpserver.HealthCheckHandler(h.log, h.schemaLoaded))

	r.Route("/pages", func(pr chi.Router) {
		pr.Use(i18n.Middleware(h.engine.Translator()))
		pr.Get("/", h.listPages)
		pr.Get("/{page}", h.getPage)

		var limit []func(http.Handler) http.Handler
		if h.rateLimit > 0 {
			limit = append(limit, httprate.LimitByIP(h.rateLimit, h.rateWindow))
		}
		pr.With(limit...).Post("/{page}/validate", h.validate)
	})

	return r
}

func (h *Handler) schemaLoaded(context.Context) error {
	if len(h.schema.Pages) == 0 {
		return errors.New("no pages loaded")
	}
	return nil
}

// PageSummary describes a page without its rules.
type PageSummary struct {
	Key    string         `json:"key"`
	Title  string         `json:"title,omitempty"`
	Fields []FieldSummary `json:"fields"`
}

type FieldSummary struct {
	Key         string   `json:"key"`
	Type        string   `json:"type"`
	Name        string   `json:"name,omitempty"`
	ValidValues []string `json:"validValues,omitempty"`
}

func summarise(p gdsvalidation.Page) PageSummary {
	s := PageSummary{Key: p.Key, Title: p.Title, Fields: make([]FieldSummary, 0, len(p.Fields))}
	for _, f := range p.Fields {
		s.Fields = append(s.Fields, FieldSummary{
			Key:         f.Key,
			Type:        string(f.Type.Normalize()),
			Name:        f.Name,
			ValidValues: f.ValidValues,
		})
	}
	return s
}

func (h *Handler) listPages(w http.ResponseWriter, r *http.Request) {
	pages := make([]PageSummary, 0, len(h.schema.Pages))
	for _, p := range h.schema.Pages {
		pages = append(pages, summarise(p))
	}
	writeJSON(w, http.StatusOK, Envelope{Data: pages, Meta: meta(r.Context())})
}

func (h *Handler) getPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.schema.Page(chi.URLParam(r, "page"))
	if err != nil {
		writeError(w, err, meta(r.Context()))
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Data: summarise(page), Meta: meta(r.Context())})
}

// validate answers 200 when the submission is valid and 422 with the report
// when it is not.
func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	m := meta(ctx)

	page, err := h.schema.Page(chi.URLParam(r, "page"))
	if err != nil {
		writeError(w, err, m)
		return
	}

	payload, err := Bind(w, r, h.maxBytes)
	if err != nil {
		h.log.WarnContext(ctx, "submission rejected", logger.Page(page.Key), logger.Error(err))
		writeError(w, err, m)
		return
	}

	report, err := h.engine.Validate(ctx, payload, page)
	if err != nil {
		h.log.ErrorContext(ctx, "page definition is broken", logger.Page(page.Key), logger.Error(err))
		writeError(w, err, m)
		return
	}

	status := http.StatusOK
	if report.HasErrors {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, Envelope{Data: report, Meta: m})
}

func meta(ctx context.Context) map[string]any {
	m := map[string]any{"lang": i18n.GetLocale(ctx)}
	if id := requestid.FromContext(ctx); id != "" {
		m["requestId"] = id
	}
	return m
}
