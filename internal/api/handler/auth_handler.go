package handler

import (
	"ForumFlare/internal/api/dto"
	"ForumFlare/internal/api/middleware"
	"ForumFlare/internal/pkg/response"
	"ForumFlare/internal/pkg/util"
	"ForumFlare/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{
		authSvc: authSvc,
	}
}

// IssueToken POST /jwt
func (s *AuthHandler) IssueToken(c *gin.Context) {
	var req dto.TokenRequestDTO
	if !bindJSON(c, &req) {
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	token, err := s.authSvc.IssueToken(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.TokenDTO{Token: token})
}

// Logout POST /logout
func (s *AuthHandler) Logout(c *gin.Context) {
	token, ok := middleware.BearerToken(c)
	if !ok {
		response.Error(c, service.ErrTokenMissing)
		return
	}
	if err := s.authSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
