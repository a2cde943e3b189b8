package middleware

import (
	"Scoops/models"
	"Scoops/pkg/context"
	"Scoops/pkg/jwt"
	"Scoops/pkg/response"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Auth verifies the bearer access token and stores the caller identity in the gin context.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			response.Abort(c, http.StatusUnauthorized, "malformed Authorization header")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeAccess, parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxLogin, claims.Login)
		c.Set(context.CtxRole, claims.Role)

		c.Next()
	}
}

// RequireRole must run after Auth.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.Role(context.GetRole(c))
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		response.Abort(c, http.StatusForbidden, "access denied")
	}
}
