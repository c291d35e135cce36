package config

import (
	"errors"
	"fmt"
	"time"
)

// EnvPrefix is prepended to every variable read by LoadService.
const EnvPrefix = "GDS_"

// Service holds the settings shared by the gdsvalidate commands.
type Service struct {
	// Env selects logging defaults: development, staging or production.
	Env      string `env:"ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// Lang is the message language used when a request does not ask for one.
	Lang string `env:"LANG" envDefault:"en"`
	// Messages is an optional directory of YAML or JSON catalogues layered
	// over the built-in English messages.
	Messages string `env:"MESSAGES"`
	// Schema is the page definition file to serve or check against.
	Schema string `env:"SCHEMA"`

	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	// MaxBodyBytes caps the size of a submitted form.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	// CORSOrigins lists origins allowed to call the API from a browser.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
	// RateLimit is the number of validation requests allowed per client IP
	// in each RateWindow. Zero disables limiting.
	RateLimit  int           `env:"RATE_LIMIT" envDefault:"0"`
	RateWindow time.Duration `env:"RATE_WINDOW" envDefault:"1m"`
}

// LoadService reads Service from GDS_* variables.
func LoadService(opts ...Option) (Service, error) {
	var s Service
	if err := Load(&s, append([]Option{WithPrefix(EnvPrefix)}, opts...)...); err != nil {
		return Service{}, err
	}
	return s, s.Validate()
}

// Validate checks values the env tags cannot express.
func (s Service) Validate() error {
	var errs []error
	switch s.Env {
	case "development", "staging", "production", "prod", "stage":
	default:
		errs = append(errs, fmt.Errorf("unknown environment %q", s.Env))
	}
	if s.Lang == "" {
		errs = append(errs, errors.New("language must not be empty"))
	}
	if s.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("max body size must be positive"))
	}
	if s.RateLimit < 0 {
		errs = append(errs, errors.New("rate limit must not be negative"))
	}
	if s.RateLimit > 0 && s.RateWindow <= 0 {
		errs = append(errs, errors.New("rate window must be positive"))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidService}, errs...)...)
	}
	return nil
}
