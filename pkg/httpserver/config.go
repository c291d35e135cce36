package httpserver

import "github.com/nubz/gds-validation/pkg/config"

// FromService creates a Server using the address and timeouts of s. opts are
// applied last.
func FromService(s config.Service, opts ...Option) *Server {
	return New(append([]Option{
		WithAddr(s.HTTPAddr),
		WithReadTimeout(s.ReadTimeout),
		WithWriteTimeout(s.WriteTimeout),
		WithShutdownTimeout(s.ShutdownTimeout),
	}, opts...)...)
}
