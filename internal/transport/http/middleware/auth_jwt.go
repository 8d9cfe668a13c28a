package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"go-journal-api/internal/core/auth"
	resp "go-journal-api/internal/transport/http/response"
)

// AuthJWT 缺失/签名不对/过期的 token 一律 401，不进任何 handler
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.AbortFail(c, resp.CodeUnauthorized, "missing token")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.AbortFail(c, resp.CodeUnauthorized, "invalid token")
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			resp.AbortFail(c, resp.CodeForbidden, "forbidden")
			return
		}
		c.Set("claims", claims)
		c.Set("userId", claims.UID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}
