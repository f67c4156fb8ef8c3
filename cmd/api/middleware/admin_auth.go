package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gaon-interior/cmd/api/auth"
	"gaon-interior/internal/logger"
)

// AdminAuthMiddleware 는 요청 헤더의 JWT를 검증하고, role이 'admin'인지 확인한다.
// 이 서비스의 쓰기 API 는 전부 관리자 단일 역할 뒤에 있다.
func AdminAuthMiddleware(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		subject, role, err := jwtManager.Parse(token)
		if err != nil {
			logger.Log.Warnf("token parse error: %v", err)
			auth.AbortWithUnauthorized(c, err)
			return
		}

		if role != auth.RoleAdmin {
			logger.Log.Warnf("access denied: subject %s has role %s, want admin", subject, role)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden_insufficient_permissions"})
			return
		}

		c.Set("subject", subject)
		c.Set("role", role)

		c.Next()
	}
}
