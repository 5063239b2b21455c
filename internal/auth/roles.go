package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"medimeal/internal/model"
)

// ContextKey is where the JWT middleware stores the decoded *Claims on the
// request context.
const ContextKey = "user"

// ClaimsFromContext returns the authenticated identity attached by the JWT
// middleware, or nil when the request is unauthenticated.
func ClaimsFromContext(c echo.Context) *Claims {
	claims, _ := c.Get(ContextKey).(*Claims)
	return claims
}

// RequireRoles returns middleware enforcing that the authenticated role is
// in the route's allow-list. It is a pure predicate over the token claims:
// no repository call happens before it passes.
func RequireRoles(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFromContext(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}
			if _, ok := allowed[claims.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
			}
			return next(c)
		}
	}
}
