package handler

import (
	"ForumFlare/internal/pkg/response"
	"ForumFlare/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	statsSvc service.AdminStatsService
}

func NewAdminHandler(statsSvc service.AdminStatsService) *AdminHandler {
	return &AdminHandler{statsSvc: statsSvc}
}

func (s *AdminHandler) GetStats(c *gin.Context) {
	stats, err := s.statsSvc.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}
