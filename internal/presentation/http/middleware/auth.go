package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/luckyspin/spinwheel-go/internal/application/services"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/security"
)

const adminClaimsKey = "adminClaims"

// AdminAuthMiddleware rejects requests that do not carry a valid admin
// bearer token. Validated claims are stored on the gin context for handlers.
func AdminAuthMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		claims := authService.VerifyToken(token)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(adminClaimsKey, claims)
		c.Next()
	}
}

// GetAdminClaims retrieves the validated admin claims stored by
// AdminAuthMiddleware.
func GetAdminClaims(c *gin.Context) (*security.AdminClaims, bool) {
	value, exists := c.Get(adminClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*security.AdminClaims)
	return claims, ok
}

// extractBearerToken pulls the token from the Authorization header, falling
// back to the token query parameter for clients that cannot set headers
// (the dashboard websocket).
func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return c.Query("token")
}
