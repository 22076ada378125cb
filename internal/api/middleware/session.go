package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/govipola/storefront/internal/session"
)

const sessionContextKey = "storefront_session"

// SessionMiddleware attaches the caller's session to the request context.
// The token comes from X-Session-Token or a bearer Authorization header.
func SessionMiddleware(registry *session.Registry, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Session-Token")
		if token == "" {
			if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing session token"})
			return
		}

		sess, err := registry.Attach(token)
		if err != nil {
			logger.Warn("session attach rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// RequireRole gates a route group to one role. Cart and checkout are enabled
// only for the user role; that policy lives here, not in the aggregates.
func RequireRole(role session.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := GetSessionFromContext(c)
		if !ok || sess.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// GetSessionFromContext fetches the session placed by SessionMiddleware
func GetSessionFromContext(c *gin.Context) (*session.Session, bool) {
	val, ok := c.Get(sessionContextKey)
	if !ok {
		return nil, false
	}
	sess, ok := val.(*session.Session)
	return sess, ok
}
