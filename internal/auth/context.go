package auth

import (
	"context"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
)

type contextKey string

const claimsKey = contextKey("claims")

// WithClaims stores verified token claims in ctx.
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

// ClaimsFromContext returns the claims stored by WithClaims.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*Claims)
	return c, ok && c != nil
}

// RoleFromContext returns the role of the logged-in user, or "" when there is none.
func RoleFromContext(ctx context.Context) models.Role {
	if c, ok := ClaimsFromContext(ctx); ok {
		return c.Role
	}
	return ""
}
