package logger

import "context"

type contextKey int

const requestIDKey contextKey = iota

// WithRequestID stores the request id in the context so that lower layers,
// the SQL logger included, can tag their entries with it.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID returns the request id stored in the context, or "".
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
