package utils

import (
	"context"

	"github.com/labstack/echo/v4"
)

const RequestIDHeader = echo.HeaderXRequestID

type requestIDKey struct{}

// ContextWithRequestID attaches the request id to ctx so lower layers (gorm logger) can log it.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
