package auth

import "context"

type contextKey int

const (
	claimsKey contextKey = iota
)

// Claims returns the session claims from context, or nil if the request was
// not authenticated.
func Claims(ctx context.Context) *SessionClaims {
	claims, _ := ctx.Value(claimsKey).(*SessionClaims)
	return claims
}

// SessionID returns the session ID (subject) from context, or empty string.
func SessionID(ctx context.Context) string {
	claims := Claims(ctx)
	if claims == nil {
		return ""
	}
	return claims.Subject
}

// WithClaims returns a new context with the given claims attached.
func WithClaims(ctx context.Context, claims *SessionClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}
