package handler

import (
	"ForumFlare/internal/pkg/response"
	"ForumFlare/internal/service"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON 绑定请求体，格式错误统一按参数错误处理
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			err = fmt.Errorf("%w: %v", service.ErrParamInvalid, err)
		}
		response.Error(c, err)
		return false
	}
	return true
}
