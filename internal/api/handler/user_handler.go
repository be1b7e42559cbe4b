package handler

import (
	"ForumFlare/internal/api/dto"
	"ForumFlare/internal/pkg/response"
	"ForumFlare/internal/service"
	"errors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

func (s *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := s.userSvc.GetAllUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}

// Register 已注册时返回 409，data 为 {insertedId: null}
func (s *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserDTO
	if !bindJSON(c, &req) {
		return
	}

	id, err := s.userSvc.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserExist) {
			response.FailWithData(c, response.Conflict, err.Error(), dto.InsertResultDTO{})
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, dto.InsertResultDTO{InsertedID: &id})
}

func (s *UserHandler) GetUserByEmail(c *gin.Context) {
	user, err := s.userSvc.GetUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) PromoteBadge(c *gin.Context) {
	user, err := s.userSvc.PromoteBadge(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) GetUserWithPosts(c *gin.Context) {
	user, err := s.userSvc.GetUserWithPosts(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) SetAdmin(c *gin.Context) {
	res, err := s.userSvc.SetAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *UserHandler) CheckAdmin(c *gin.Context) {
	isAdmin, err := s.userSvc.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.AdminStatusDTO{Admin: isAdmin})
}
