package httpserver

import (
	"context"
	"log/slog"
	"net"
	"time"
)

// Option configures a Server. Zero or negative durations and empty addresses
// are ignored so values can be passed straight from configuration.
type Option func(*options)

type options struct {
	addr            string
	listener        net.Listener
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	logger          *slog.Logger
	onShutdown      []func(context.Context)
}

func defaultOptions() options {
	return options{
		addr:            ":8080",
		readTimeout:     10 * time.Second,
		writeTimeout:    10 * time.Second,
		idleTimeout:     60 * time.Second,
		shutdownTimeout: 10 * time.Second,
	}
}

func WithAddr(addr string) Option {
	return func(o *options) {
		if addr != "" {
			o.addr = addr
		}
	}
}

// WithListener serves on l instead of listening on the configured address.
func WithListener(l net.Listener) Option {
	return func(o *options) { o.listener = l }
}

func WithReadTimeout(d time.Duration) Option {
	return func(o *options) { setDuration(&o.readTimeout, d) }
}

func WithWriteTimeout(d time.Duration) Option {
	return func(o *options) { setDuration(&o.writeTimeout, d) }
}

func WithIdleTimeout(d time.Duration) Option {
	return func(o *options) { setDuration(&o.idleTimeout, d) }
}

// WithShutdownTimeout bounds how long in-flight requests may take to finish
// once shutdown starts.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *options) { setDuration(&o.shutdownTimeout, d) }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// OnShutdown registers fn to run after the server has stopped accepting
// requests. Functions run in registration order.
func OnShutdown(fn func(context.Context)) Option {
	return func(o *options) {
		if fn != nil {
			o.onShutdown = append(o.onShutdown, fn)
		}
	}
}

func setDuration(dst *time.Duration, d time.Duration) {
	if d > 0 {
		*dst = d
	}
}
