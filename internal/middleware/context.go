package middleware

import (
	"context"
)

// context keys are unexported to avoid collisions
type ctxKey string

const (
	ctxKeyIsHTMX    ctxKey = "is_htmx"
	ctxKeyIsBoosted ctxKey = "is_boosted"
	ctxKeyTraceID   ctxKey = "trace_id"
)

// WithHTMX marks request as HTMX
func WithHTMX(ctx context.Context, is bool) context.Context {
	return context.WithValue(ctx, ctxKeyIsHTMX, is)
}

// IsHTMX returns whether this is an htmx request
func IsHTMX(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKeyIsHTMX).(bool)
	return v
}

// WithBoosted marks request as an hx-boost navigation.
func WithBoosted(ctx context.Context, is bool) context.Context {
	return context.WithValue(ctx, ctxKeyIsBoosted, is)
}

// IsBoosted reports whether the request came from a boosted link or form.
func IsBoosted(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKeyIsBoosted).(bool)
	return v
}

func withTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyTraceID, id)
}

// TraceID returns the server span's trace id, if Trace ran.
func TraceID(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyTraceID).(string)
	return v
}
