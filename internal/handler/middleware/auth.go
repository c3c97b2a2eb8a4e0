package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/TOOL2U/LandWise/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards the admin dashboard routes. There is one role; a
// valid token with role "admin" is the whole story.
type AuthMiddleware struct {
	jwtService *jwt.Service
}

const (
	ctxAdminEmailKey = "admin_email"
	ctxAdminRoleKey  = "admin_role"
)

func NewAuthMiddleware(jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			slog.Warn("token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		if claims.Role != jwt.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Set(ctxAdminEmailKey, claims.Email)
		c.Set(ctxAdminRoleKey, claims.Role)
		c.Set("jwt_claims", map[string]any{
			"email": claims.Email,
			"role":  claims.Role,
		})
		c.Next()
	}
}

func GetAdminEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ctxAdminEmailKey)
	if !exists {
		return "", false
	}

	e, ok := email.(string)
	return e, ok
}
