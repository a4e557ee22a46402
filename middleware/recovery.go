package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/douglasgreyling/dispatch"
)

// RecoveryOption configures the Recovery middleware.
type RecoveryOption func(*recoveryConfig)

type recoveryConfig struct {
	logger  *slog.Logger
	handler func(req *dispatch.Request, err any) *dispatch.Response
}

// WithRecoveryLogger overrides the logger used for panic reports.
func WithRecoveryLogger(logger *slog.Logger) RecoveryOption {
	return func(cfg *recoveryConfig) {
		cfg.logger = logger
	}
}

// WithRecoveryHandler overrides the response produced for a recovered panic.
func WithRecoveryHandler(handler func(req *dispatch.Request, err any) *dispatch.Response) RecoveryOption {
	return func(cfg *recoveryConfig) {
		cfg.handler = handler
	}
}

// Recovery returns a stage that converts panics from inner stages into a
// 500 response instead of letting them reach the transport. The panic value
// and stack are logged. The dispatcher itself never intercepts panics, so
// this stage must sit earlier in the chain than anything it should guard.
func Recovery(opts ...RecoveryOption) dispatch.HandlerFunc {
	cfg := &recoveryConfig{
		logger: slog.Default(),
		handler: func(_ *dispatch.Request, _ any) *dispatch.Response {
			return dispatch.Text(http.StatusInternalServerError, "internal server error")
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(req *dispatch.Request, next dispatch.Next) (res *dispatch.Response) {
		defer func() {
			if err := recover(); err != nil {
				cfg.logger.Error("panic recovered",
					slog.String("method", req.Method),
					slog.String("path", req.Path),
					slog.Any("error", err),
					slog.String("stack", string(debug.Stack())),
				)
				res = cfg.handler(req, err)
			}
		}()
		return next()
	}
}
