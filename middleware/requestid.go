// Package middleware provides optional chain stages for dispatch routers:
// request IDs, access logging, and panic recovery.
package middleware

import (
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/douglasgreyling/dispatch"
)

// RequestIDKey is the request store key under which the request ID is kept.
const RequestIDKey = "request_id"

// defaultIDHeader is the header carrying the request ID on both sides.
const defaultIDHeader = "X-Request-ID"

// RequestIDOption configures the RequestID middleware.
type RequestIDOption func(*requestIDConfig)

type requestIDConfig struct {
	header        string
	generator     func() string
	allowClientID bool
}

// WithIDHeader overrides the header name used for the request ID.
func WithIDHeader(name string) RequestIDOption {
	return func(cfg *requestIDConfig) {
		cfg.header = name
	}
}

// WithGenerator overrides the request ID generator.
func WithGenerator(generator func() string) RequestIDOption {
	return func(cfg *requestIDConfig) {
		cfg.generator = generator
	}
}

// WithULID generates ULIDs instead of UUIDs. ULIDs sort by creation time,
// which keeps correlated log lines adjacent.
func WithULID() RequestIDOption {
	return func(cfg *requestIDConfig) {
		cfg.generator = func() string {
			return ulid.Make().String()
		}
	}
}

// WithAllowClientID controls whether an ID supplied by the client in the
// request header is trusted and propagated. Enabled by default.
func WithAllowClientID(allow bool) RequestIDOption {
	return func(cfg *requestIDConfig) {
		cfg.allowClientID = allow
	}
}

// RequestID returns a stage that tags every request with a unique ID. The
// ID is taken from the request header when present and allowed, generated
// otherwise, stored on the request for later stages, and echoed on the
// response header.
func RequestID(opts ...RequestIDOption) dispatch.HandlerFunc {
	cfg := &requestIDConfig{
		header:        defaultIDHeader,
		generator:     uuid.NewString,
		allowClientID: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(req *dispatch.Request, next dispatch.Next) *dispatch.Response {
		id := ""
		if cfg.allowClientID {
			id = req.HeaderValue(cfg.header)
		}
		if id == "" {
			id = cfg.generator()
		}
		req.Set(RequestIDKey, id)

		res := next()
		res.SetHeader(cfg.header, id)
		return res
	}
}
