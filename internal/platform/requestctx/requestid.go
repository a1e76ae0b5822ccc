// Package requestctx carries request-scoped identifiers through contexts.
package requestctx

import "context"

// requestIDContextKey is the context key for the correlation id.
type requestIDContextKey struct{}

// WithRequestID stores a correlation id in context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, requestIDContextKey{}, requestID)
}

// RequestIDFromContext returns the correlation id stored in context, or "-"
// when there is none.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return "-"
	}
	if value, _ := ctx.Value(requestIDContextKey{}).(string); value != "" {
		return value
	}
	return "-"
}
