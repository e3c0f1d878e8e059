package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/elitebooker/elitebooker-backend/internal/domain"
	"github.com/elitebooker/elitebooker-backend/pkg/response"
)

// ContextKeyPrincipal is the gin context key holding the resolved Principal
const ContextKeyPrincipal = "principal"

// TokenValidator verifies a session token and resolves it to a Principal
type TokenValidator interface {
	Validate(tokenString string) (*domain.Principal, error)
}

// SessionConfig holds configuration for the session middleware
type SessionConfig struct {
	Validator TokenValidator
	// CookieName is the session cookie checked before the Authorization header
	CookieName string
}

// SessionRequired resolves the caller's Principal from the session cookie,
// falling back to a Bearer token for API clients. Requests without a valid
// session never reach the handler.
func SessionRequired(config *SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c, config.CookieName)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized(""))
			return
		}

		principal, err := config.Validator.Validate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("Session is invalid or expired"))
			return
		}

		c.Set(ContextKeyPrincipal, principal)
		c.Next()
	}
}

// extractToken reads the session token from the cookie or the
// Authorization header
func extractToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	const bearerPrefix = "Bearer "
	if strings.HasPrefix(authHeader, bearerPrefix) {
		return authHeader[len(bearerPrefix):]
	}
	return ""
}

// RequireRole gates a route group to principals whose role satisfies the
// minimum. super_admin passes every gate.
func RequireRole(min domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := CurrentPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized(""))
			return
		}

		if !principal.Role.AtLeast(min) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Forbidden(""))
			return
		}

		c.Next()
	}
}

// RequireTenant gates a route group to principals bound to a salon.
// super_admin accounts have no tenant of their own and are rejected here;
// platform-wide routes live under their own group.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := CurrentPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized(""))
			return
		}

		if principal.TenantID == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Forbidden("Route requires a salon-bound account"))
			return
		}

		c.Next()
	}
}

// CurrentPrincipal extracts the resolved Principal from gin context
func CurrentPrincipal(c *gin.Context) (*domain.Principal, bool) {
	value, exists := c.Get(ContextKeyPrincipal)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*domain.Principal)
	return principal, ok
}
