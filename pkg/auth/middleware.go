package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"forestwatch.app/sos-dashboard-service/pkg/common"
	"forestwatch.app/sos-dashboard-service/pkg/models"
)

const (
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "

	ContextClaimsKey = "auth_claims"
)

// RequireAuth validates the bearer token and stores the claims on the
// request context.
func RequireAuth(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(AuthHeaderKey)
		if !strings.HasPrefix(header, BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or malformed authorization header"})
			return
		}

		claims, err := svc.ValidateToken(strings.TrimPrefix(header, BearerPrefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(ContextClaimsKey, claims)
		c.Next()
	}
}

// RequireAdmin gates the dashboard behind the administrator role. Non-admin
// sessions get the access-denied payload with a logout affordance instead
// of the dashboard.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing session"})
			return
		}
		if claims.Role != models.RoleAdmin {
			common.GetLoggerWith(common.LoggerNameAuth).Warn("Dashboard access denied",
				zap.String("user_id", claims.UserID), zap.String("role", string(claims.Role)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":  "You need admin privileges to access the dashboard.",
				"role":   claims.Role,
				"logout": "/auth/logout",
			})
			return
		}
		c.Next()
	}
}

func ClaimsFrom(c *gin.Context) (*Claims, bool) {
	value, exists := c.Get(ContextClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*Claims)
	return claims, ok
}
