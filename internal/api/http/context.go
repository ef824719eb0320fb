package http

import (
	"context"
	"errors"

	"drivesync-backend/internal/security"
)

type contextKey string

const (
	claimsContextKey    contextKey = "user-claims"
	requestIDContextKey contextKey = "request-id"
)

var ErrNoClaims = errors.New("no authenticated user in context")

// ClaimsFromContext extracts the authenticated user's claims, as set by
// the Authenticate middleware.
func ClaimsFromContext(ctx context.Context) (*security.UserClaims, error) {
	claims, ok := ctx.Value(claimsContextKey).(*security.UserClaims)
	if !ok || claims == nil {
		return nil, ErrNoClaims
	}
	return claims, nil
}

// RequestIDFromContext returns the request id set by the RequestID
// middleware, or "" when absent.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}
