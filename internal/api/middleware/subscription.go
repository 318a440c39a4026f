package middleware

import (
	"Joblink/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireSubscription 要求持有有效订阅，挂在内推提交等付费能力上
func RequireSubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("subscription") {
			response.Fail(c, response.Forbidden, "需要有效订阅")
			c.Abort()
			return
		}

		c.Next()
	}
}
