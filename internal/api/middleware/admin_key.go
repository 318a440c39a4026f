package middleware

import (
	"Joblink/internal/api/config"
	"Joblink/internal/pkg/response"
	"crypto/subtle"

	"github.com/gin-gonic/gin"
)

// AdminKeyMiddleware 校验管理端静态密钥。
// 管理端与用户 JWT 属于不同信任域，互不通用。
func AdminKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Admin-Key")
		expected := config.Cfg.Admin.APIKey

		if expected == "" || subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
			response.Fail(c, response.Unauthorized, "管理密钥无效")
			c.Abort()
			return
		}

		c.Next()
	}
}
