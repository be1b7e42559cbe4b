package handler

import (
	"ForumFlare/internal/api/dto"
	"ForumFlare/internal/pkg/consts"
	"ForumFlare/internal/pkg/response"
	"ForumFlare/internal/service"
	"fmt"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

func (s *PostHandler) GetPosts(c *gin.Context) {
	var query dto.PostQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, fmt.Errorf("%w: %v", service.ErrParamInvalid, err))
		return
	}

	posts, err := s.postSvc.GetPosts(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	post, err := s.postSvc.GetPostByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostDTO
	if !bindJSON(c, &req) {
		return
	}

	id, err := s.postSvc.CreatePost(c.Request.Context(), c.GetString(consts.CtxEmail), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.InsertResultDTO{InsertedID: &id})
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	res, err := s.postSvc.DeletePost(c.Request.Context(), c.GetString(consts.CtxEmail), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *PostHandler) Upvote(c *gin.Context) {
	post, err := s.postSvc.Upvote(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) Downvote(c *gin.Context) {
	post, err := s.postSvc.Downvote(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}
