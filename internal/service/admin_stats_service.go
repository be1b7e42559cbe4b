package service

import (
	"ForumFlare/internal/model"
	"ForumFlare/internal/pkg/consts"
	"ForumFlare/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

type AdminStatsService interface {
	GetStats(ctx context.Context) (*model.AdminStats, error)
	RefreshStats(ctx context.Context) (*model.AdminStats, error)
}

type adminStatsServiceImpl struct {
	userRepo         repository.UserRepo
	postRepo         repository.PostRepo
	commentRepo      repository.CommentRepo
	announcementRepo repository.AnnouncementRepo
	tagRepo          repository.TagRepo
	store            KVStore
	cacheTTL         time.Duration
}

func NewAdminStatsService(
	userRepo repository.UserRepo,
	postRepo repository.PostRepo,
	commentRepo repository.CommentRepo,
	announcementRepo repository.AnnouncementRepo,
	tagRepo repository.TagRepo,
	store KVStore,
	cacheTTL time.Duration,
) AdminStatsService {
	return &adminStatsServiceImpl{
		userRepo:         userRepo,
		postRepo:         postRepo,
		commentRepo:      commentRepo,
		announcementRepo: announcementRepo,
		tagRepo:          tagRepo,
		store:            store,
		cacheTTL:         cacheTTL,
	}
}

// GetStats 优先读缓存，缓存缺失或损坏时实时统计
func (s *adminStatsServiceImpl) GetStats(ctx context.Context) (*model.AdminStats, error) {
	cached, err := s.store.GetValue(ctx, consts.AdminStatsKey)
	if err != nil {
		log.WarnContext(ctx, "read stats cache error", "err", err)
	}
	if cached != "" {
		stats := &model.AdminStats{}
		if err = json.Unmarshal([]byte(cached), stats); err == nil {
			return stats, nil
		}
		log.WarnContext(ctx, "stats cache corrupted", "err", err)
	}
	return s.RefreshStats(ctx)
}

// RefreshStats 并发统计各集合并写入缓存
func (s *adminStatsServiceImpl) RefreshStats(ctx context.Context) (*model.AdminStats, error) {
	stats := &model.AdminStats{}
	g, gCtx := errgroup.WithContext(ctx)

	counters := []struct {
		dst   *int64
		count func(context.Context) (int64, error)
	}{
		{&stats.Users, s.userRepo.Count},
		{&stats.Posts, s.postRepo.Count},
		{&stats.Comments, s.commentRepo.Count},
		{&stats.Announcements, s.announcementRepo.Count},
		{&stats.Tags, s.tagRepo.Count},
	}
	for _, c := range counters {
		g.Go(func() error {
			n, err := c.count(gCtx)
			*c.dst = n
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	stats.GeneratedAt = time.Now().UTC()

	data, err := json.Marshal(stats)
	if err == nil {
		err = s.store.SetWithExpiration(ctx, consts.AdminStatsKey, string(data), s.cacheTTL)
	}
	if err != nil {
		log.WarnContext(ctx, "write stats cache error", "err", err)
	}
	return stats, nil
}
