package response

import (
	"ForumFlare/internal/api/dto"
	"ForumFlare/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = 200
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

// Success 成功返回封装
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.Response{
		Code:    Ok,
		Message: "success",
		Data:    data,
	})
}

// Fail 失败返回封装，HTTP 状态码与业务码一致
func Fail(c *gin.Context, businessCode int, message string) {
	FailWithData(c, businessCode, message, nil)
}

// FailWithData 失败但仍携带数据，如重复注册时的 insertedId: null
func FailWithData(c *gin.Context, businessCode int, message string, data interface{}) {
	c.JSON(businessCode, dto.Response{
		Code:    businessCode,
		Message: message,
		Data:    data,
	})
}

// Abort 中断后续处理链
func Abort(c *gin.Context, businessCode int, message string) {
	Fail(c, businessCode, message)
	c.Abort()
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, BadRequest, service.ErrParamInvalid.Error())
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, BadRequest, "malformed json")
		return
	}

	for target, code := range service.ErrorMap {
		if errors.Is(err, target) {
			Fail(c, code, target.Error())
			return
		}
	}

	log.ErrorContext(c.Request.Context(), "Unhandled error", "path", c.FullPath(), "err", err)
	Fail(c, InternalServerError, service.UnExpectedError.Error())
}
