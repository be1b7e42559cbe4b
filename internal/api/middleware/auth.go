package middleware

import (
	"ForumFlare/internal/pkg/consts"
	"ForumFlare/internal/pkg/response"
	"ForumFlare/internal/pkg/security"
	"ForumFlare/internal/service"
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/gin-gonic/gin"
)

type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*security.UserClaims, error)
}

// BearerToken 从 Authorization 头取出令牌
func BearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return token, token != ""
}

// Authenticated 验证 JWT 并将用户身份注入 Context
func Authenticated(verifier TokenVerifier) Guard {
	return func(c *gin.Context) *GuardError {
		token, ok := BearerToken(c)
		if !ok {
			return &GuardError{Code: response.Unauthorized, Message: service.ErrTokenMissing.Error()}
		}

		ctx := c.Request.Context()
		claims, err := verifier.VerifyToken(ctx, token)
		if err != nil {
			if errors.Is(err, service.ErrTokenInvalid) {
				return &GuardError{Code: response.Unauthorized, Message: service.ErrTokenInvalid.Error()}
			}
			log.ErrorContext(ctx, "verify token error", "err", err)
			return &GuardError{Code: response.InternalServerError, Message: service.UnExpectedError.Error()}
		}

		c.Set(consts.CtxEmail, claims.Email)
		c.Request = c.Request.WithContext(context.WithValue(ctx, consts.EmailCtxKey, claims.Email))
		return nil
	}
}
