// Package logger provides structured logging for tokgen.
package logger

import "context"

type contextKey string

const (
	loggerKey    contextKey = "tokgen.logger"
	requestIDKey contextKey = "tokgen.request_id"
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext extracts the logger from context.
// Returns the default logger if none is set.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Default()
}

// FromContextOr extracts the logger from context, returning fallback if
// none is set.
func FromContextOr(ctx context.Context, fallback Logger) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return fallback
}

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request ID from context.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// L returns the context logger enriched with the request ID, if any.
func L(ctx context.Context) Logger {
	l := FromContext(ctx)
	if reqID := RequestIDFromContext(ctx); reqID != "" {
		l = l.With("request_id", reqID)
	}
	return l
}
