package service

import (
	"ForumFlare/internal/model"
	"ForumFlare/internal/repository"
	"context"
	"strings"
)

type TagService interface {
	GetTags(ctx context.Context, search string) ([]*model.Tag, error)
}

type tagServiceImpl struct {
	tagRepo repository.TagRepo
}

func NewTagService(tagRepo repository.TagRepo) TagService {
	return &tagServiceImpl{tagRepo: tagRepo}
}

func (s *tagServiceImpl) GetTags(ctx context.Context, search string) ([]*model.Tag, error) {
	return s.tagRepo.GetTags(ctx, strings.TrimSpace(search))
}
