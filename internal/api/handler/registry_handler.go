package handler

import (
	"ForumFlare/internal/api/dto"
	"ForumFlare/internal/pkg/consts"
	"ForumFlare/internal/pkg/response"
	"ForumFlare/internal/service"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagSvc service.TagService
}

func NewTagHandler(tagSvc service.TagService) *TagHandler {
	return &TagHandler{tagSvc: tagSvc}
}

func (s *TagHandler) GetTags(c *gin.Context) {
	tags, err := s.tagSvc.GetTags(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tags)
}

type AnnouncementHandler struct {
	announcementSvc service.AnnouncementService
}

func NewAnnouncementHandler(announcementSvc service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementSvc: announcementSvc}
}

func (s *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	var req dto.CreateAnnouncementDTO
	if !bindJSON(c, &req) {
		return
	}

	id, err := s.announcementSvc.CreateAnnouncement(c.Request.Context(), c.GetString(consts.CtxEmail), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.InsertResultDTO{InsertedID: &id})
}

func (s *AnnouncementHandler) GetAnnouncements(c *gin.Context) {
	list, err := s.announcementSvc.GetAnnouncements(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *AnnouncementHandler) GetAnnouncementCount(c *gin.Context) {
	count, err := s.announcementSvc.GetAnnouncementCount(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.CountDTO{Count: count})
}
