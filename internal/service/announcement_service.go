package service

import (
	"ForumFlare/internal/api/dto"
	"ForumFlare/internal/model"
	"ForumFlare/internal/pkg/util"
	"ForumFlare/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type AnnouncementService interface {
	CreateAnnouncement(ctx context.Context, email string, req *dto.CreateAnnouncementDTO) (string, error)
	GetAnnouncements(ctx context.Context) ([]*model.Announcement, error)
	GetAnnouncementCount(ctx context.Context) (int64, error)
}

type announcementServiceImpl struct {
	announcementRepo repository.AnnouncementRepo
}

func NewAnnouncementService(announcementRepo repository.AnnouncementRepo) AnnouncementService {
	return &announcementServiceImpl{announcementRepo: announcementRepo}
}

func (s *announcementServiceImpl) CreateAnnouncement(ctx context.Context, email string, req *dto.CreateAnnouncementDTO) (string, error) {
	if err := util.ValidateDTO(req); err != nil {
		return "", err
	}

	a := &model.Announcement{}
	if err := copier.Copy(a, req); err != nil {
		return "", err
	}
	a.Email = email
	a.CreatedAt = time.Now()

	id, err := s.announcementRepo.CreateAnnouncement(ctx, a)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (s *announcementServiceImpl) GetAnnouncements(ctx context.Context) ([]*model.Announcement, error) {
	return s.announcementRepo.GetAnnouncements(ctx)
}

func (s *announcementServiceImpl) GetAnnouncementCount(ctx context.Context) (int64, error) {
	return s.announcementRepo.Count(ctx)
}
