package middleware

import (
	"ForumFlare/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// GuardError 守卫拒绝请求时的业务码与提示
type GuardError struct {
	Code    int
	Message string
}

// Guard 单个访问检查，返回 nil 表示放行
type Guard func(c *gin.Context) *GuardError

// Chain 依次执行守卫，任一拒绝即中断
func Chain(guards ...Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, guard := range guards {
			if gErr := guard(c); gErr != nil {
				response.Abort(c, gErr.Code, gErr.Message)
				return
			}
		}
		c.Next()
	}
}
