package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/loginkeeper/internal/common"
	"github.com/dmitrijs2005/loginkeeper/internal/server/auth"
)

// ContextClaimsKey is the request-context key under which RequireSession
// stores the validated session claims for downstream handlers.
const ContextClaimsKey = "auth.claims"

// RequireSession extracts the session token from the session cookie and
// validates it. A missing cookie is 401; a present but invalid or expired
// token is 403. On success the claims are attached to the request context
// and the request proceeds.
func (s *Server) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(common.SessionCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "authentication required",
			})
			return
		}

		claims, err := s.issuer.Parse(token)
		if err != nil {
			// Distinguish the cause in logs only; the client sees one answer.
			if errors.Is(err, common.ErrTokenExpired) {
				s.logger.Info(c.Request.Context(), "rejected expired session token")
			} else {
				s.logger.Warn(c.Request.Context(), "rejected invalid session token")
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "invalid or expired session",
			})
			return
		}

		c.Set(ContextClaimsKey, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the session claims stored by RequireSession.
func ClaimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ContextClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
