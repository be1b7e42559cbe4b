package middleware

import (
	"ForumFlare/internal/pkg/consts"
	"ForumFlare/internal/pkg/response"
	"ForumFlare/internal/service"
	"context"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// AdminOnly 当前用户必须是管理员，需放在 Authenticated 之后
func AdminOnly(checker AdminChecker) Guard {
	return func(c *gin.Context) *GuardError {
		email := c.GetString(consts.CtxEmail)
		if email == "" {
			return &GuardError{Code: response.Unauthorized, Message: service.ErrTokenMissing.Error()}
		}

		isAdmin, err := checker.IsAdmin(c.Request.Context(), email)
		if err != nil {
			log.ErrorContext(c.Request.Context(), "check admin role error", "email", email, "err", err)
			return &GuardError{Code: response.InternalServerError, Message: service.UnExpectedError.Error()}
		}
		if !isAdmin {
			return &GuardError{Code: response.Forbidden, Message: "forbidden: admin role required"}
		}
		return nil
	}
}

// SelfOnly 路径参数必须是当前用户的 email
func SelfOnly(param string) Guard {
	return func(c *gin.Context) *GuardError {
		email := c.GetString(consts.CtxEmail)
		if email == "" || email != c.Param(param) {
			return &GuardError{Code: response.Forbidden, Message: "forbidden: access to other users denied"}
		}
		return nil
	}
}
