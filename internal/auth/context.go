package auth

import (
	"github.com/labstack/echo/v4"
)

// ContextKey is the echo context key under which the auth gate stores
// the verified token claims.
const ContextKey = "user"

// FromContext returns the claims the auth gate attached to the
// request, or nil for unauthenticated requests.
func FromContext(c echo.Context) *Claims {
	claims, ok := c.Get(ContextKey).(*Claims)
	if !ok {
		return nil
	}
	return claims
}
