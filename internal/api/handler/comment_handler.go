package handler

import (
	"ForumFlare/internal/api/dto"
	"ForumFlare/internal/pkg/consts"
	"ForumFlare/internal/pkg/response"
	"ForumFlare/internal/pkg/util"
	"ForumFlare/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
	}
}

func (s *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentDTO
	if !bindJSON(c, &req) {
		return
	}

	id, err := s.commentSvc.CreateComment(c.Request.Context(), c.GetString(consts.CtxEmail), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.InsertResultDTO{InsertedID: &id})
}

// GetCommentsByPost GET /comment/:id
func (s *CommentHandler) GetCommentsByPost(c *gin.Context) {
	comments, err := s.commentSvc.GetCommentsByPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

// GetModerationQueue GET /comment
func (s *CommentHandler) GetModerationQueue(c *gin.Context) {
	comments, err := s.commentSvc.GetModerationQueue(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

func (s *CommentHandler) AttachFeedback(c *gin.Context) {
	var req dto.FeedbackDTO
	if !bindJSON(c, &req) {
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	res, err := s.commentSvc.AttachFeedback(c.Request.Context(), c.Param("id"), req.Feedback)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *CommentHandler) AttachAction(c *gin.Context) {
	var req dto.ActionDTO
	if !bindJSON(c, &req) {
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	res, err := s.commentSvc.AttachAction(c.Request.Context(), c.Param("id"), req.Action)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
