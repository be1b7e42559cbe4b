package service

import (
	"ForumFlare/internal/api/dto"
	"ForumFlare/internal/model"
	"ForumFlare/internal/pkg/util"
	"ForumFlare/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"
)

type PostService interface {
	GetPosts(ctx context.Context, query *dto.PostQueryDTO) (*dto.PostListDTO, error)
	GetPostByID(ctx context.Context, id string) (*model.Post, error)
	CreatePost(ctx context.Context, email string, req *dto.CreatePostDTO) (string, error)
	DeletePost(ctx context.Context, email string, id string) (*dto.DeleteResultDTO, error)
	Upvote(ctx context.Context, id string) (*model.Post, error)
	Downvote(ctx context.Context, id string) (*model.Post, error)
}

type postServiceImpl struct {
	postRepo repository.PostRepo
	userRepo repository.UserRepo
}

func NewPostService(postRepo repository.PostRepo, userRepo repository.UserRepo) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// GetPosts 同一过滤条件下的最新/最热两组分页结果与帖子总数，三次读取并发执行
func (s *postServiceImpl) GetPosts(ctx context.Context, query *dto.PostQueryDTO) (*dto.PostListDTO, error) {
	query.Normalize()
	skip, limit := query.Skip(), int64(query.Limit)

	res := &dto.PostListDTO{}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		posts, err := s.postRepo.GetRecentPosts(gCtx, query.Tag, skip, limit)
		res.RegularPost = posts
		return err
	})
	g.Go(func() error {
		posts, err := s.postRepo.GetPopularPosts(gCtx, query.Tag, skip, limit)
		res.PopularPost = posts
		return err
	})
	g.Go(func() error {
		total, err := s.postRepo.Count(gCtx)
		res.TotalPost = total
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *postServiceImpl) GetPostByID(ctx context.Context, id string) (*model.Post, error) {
	objectID, ok := util.ParseObjectID(id)
	if !ok {
		return nil, ErrPostNotFound
	}
	return s.getPost(ctx, objectID, id)
}

// CreatePost 作者以令牌中的 email 为准，票数从 0 开始
func (s *postServiceImpl) CreatePost(ctx context.Context, email string, req *dto.CreatePostDTO) (string, error) {
	if err := util.ValidateDTO(req); err != nil {
		return "", err
	}

	post := &model.Post{}
	if err := copier.Copy(post, req); err != nil {
		return "", err
	}
	post.Email = email
	post.Tags = util.NormalizeTags(req.Tags)
	post.Upvote = 0
	post.Downvote = 0
	if req.Time != nil && !req.Time.IsZero() {
		post.Time = *req.Time
	} else {
		post.Time = time.Now()
	}

	id, err := s.postRepo.CreatePost(ctx, post)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// DeletePost 仅作者本人或管理员可删除
func (s *postServiceImpl) DeletePost(ctx context.Context, email string, id string) (*dto.DeleteResultDTO, error) {
	objectID, ok := util.ParseObjectID(id)
	if !ok {
		return nil, ErrPostNotFound
	}

	post, err := s.getPost(ctx, objectID, id)
	if err != nil {
		return nil, err
	}

	if post.Email != email {
		user, err := s.userRepo.GetUserByEmail(ctx, email)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		if !user.IsAdmin() {
			return nil, ErrForbidden
		}
	}

	deleted, err := s.postRepo.DeletePost(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if deleted == 0 {
		return nil, ErrPostNotFound
	}

	log.InfoContext(ctx, "post deleted", "post_id", id, "by", email)
	return &dto.DeleteResultDTO{DeletedCount: deleted}, nil
}

func (s *postServiceImpl) Upvote(ctx context.Context, id string) (*model.Post, error) {
	return s.vote(ctx, id, repository.VoteUp)
}

func (s *postServiceImpl) Downvote(ctx context.Context, id string) (*model.Post, error) {
	return s.vote(ctx, id, repository.VoteDown)
}

func (s *postServiceImpl) vote(ctx context.Context, id string, field string) (*model.Post, error) {
	objectID, ok := util.ParseObjectID(id)
	if !ok {
		return nil, ErrPostNotFound
	}

	post, err := s.postRepo.IncrVote(ctx, objectID, field)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *postServiceImpl) getPost(ctx context.Context, objectID primitive.ObjectID, id string) (*model.Post, error) {
	post, err := s.postRepo.GetPostByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		log.ErrorContext(ctx, "get post error", "post_id", id, "err", err)
		return nil, err
	}
	return post, nil
}
