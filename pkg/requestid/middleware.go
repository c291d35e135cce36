package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// Header is the default header carrying the request id in both directions.
const Header = "X-Request-ID"

const maxIDLength = 128

var validID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Option configures Middleware.
type Option func(*settings)

type settings struct {
	header   string
	generate func() string
}

// WithHeader reads and writes the id under name instead of X-Request-ID.
func WithHeader(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.header = name
		}
	}
}

// WithGenerator replaces the UUIDv4 generator.
func WithGenerator(fn func() string) Option {
	return func(s *settings) {
		if fn != nil {
			s.generate = fn
		}
	}
}

// Middleware tags each request with an id. A well formed id sent by the
// client is reused; otherwise a new one is generated. The id is stored in the
// request context and echoed in the response header.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	s := settings{header: Header, generate: uuid.NewString}
	for _, opt := range opts {
		opt(&s)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(s.header)
			if !Valid(id) {
				id = s.generate()
			}
			w.Header().Set(s.header, id)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}

// Valid reports whether id is acceptable as a client supplied request id.
func Valid(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	return validID.MatchString(id)
}
