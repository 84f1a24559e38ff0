package lotto

import "context"

// traceKey scopes the request id so analysis log lines (lotto_recommend,
// lotto_scope_adjusted) can be joined to the HTTP response's X-Request-ID.
type traceKey struct{}

// WithTraceID attaches the request id that the service adds to its log lines.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceKey{}, id)
}

// TraceIDFromContext returns the request id, or "" outside an HTTP request.
func TraceIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(traceKey{}).(string)
	return id
}
