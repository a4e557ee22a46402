package middleware

import (
	"log/slog"
	"time"

	"github.com/douglasgreyling/dispatch"
)

// AccessLogOption configures the AccessLog middleware.
type AccessLogOption func(*accessLogConfig)

type accessLogConfig struct {
	excludePaths map[string]bool
}

// WithExcludePaths skips logging for the given request paths, typically
// health checks and probes.
func WithExcludePaths(paths ...string) AccessLogOption {
	return func(cfg *accessLogConfig) {
		for _, p := range paths {
			cfg.excludePaths[p] = true
		}
	}
}

// AccessLog returns a stage that logs one structured line per dispatched
// request: method, path, response status, and duration. The timer starts
// before the rest of the chain runs, so the duration covers every inner
// stage. A nil logger falls back to slog.Default.
func AccessLog(logger *slog.Logger, opts ...AccessLogOption) dispatch.HandlerFunc {
	cfg := &accessLogConfig{
		excludePaths: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return func(req *dispatch.Request, next dispatch.Next) *dispatch.Response {
		if cfg.excludePaths[req.Path] {
			return next()
		}

		start := time.Now()
		res := next()

		attrs := []any{
			slog.String("method", req.Method),
			slog.String("path", req.Path),
			slog.Int("status", res.Status),
			slog.Duration("duration", time.Since(start)),
		}
		if id := req.GetString(RequestIDKey); id != "" {
			attrs = append(attrs, slog.String("request_id", id))
		}
		logger.Info("request", attrs...)

		return res
	}
}
