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

	"go.mongodb.org/mongo-driver/mongo"
)

type CommentService interface {
	CreateComment(ctx context.Context, email string, req *dto.CreateCommentDTO) (string, error)
	GetCommentsByPost(ctx context.Context, postID string) ([]*model.Comment, error)
	GetModerationQueue(ctx context.Context) ([]*model.Comment, error)
	AttachFeedback(ctx context.Context, id string, feedback string) (*dto.UpdateResultDTO, error)
	AttachAction(ctx context.Context, id string, action string) (*dto.UpdateResultDTO, error)
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
}

func NewCommentService(commentRepo repository.CommentRepo, postRepo repository.PostRepo) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment 帖子必须存在
func (s *commentServiceImpl) CreateComment(ctx context.Context, email string, req *dto.CreateCommentDTO) (string, error) {
	if err := util.ValidateDTO(req); err != nil {
		return "", err
	}
	postID, ok := util.ParseObjectID(req.PostID)
	if !ok {
		return "", ErrPostNotFound
	}
	if _, err := s.postRepo.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrPostNotFound
		}
		return "", err
	}

	comment := &model.Comment{
		PostID:   req.PostID,
		Email:    email,
		Name:     req.Name,
		Comment:  req.Comment,
		Reported: false,
		Time:     time.Now(),
	}
	id, err := s.commentRepo.CreateComment(ctx, comment)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (s *commentServiceImpl) GetCommentsByPost(ctx context.Context, postID string) ([]*model.Comment, error) {
	return s.commentRepo.GetCommentsByPostID(ctx, postID)
}

// GetModerationQueue 所有收到过反馈的评论
func (s *commentServiceImpl) GetModerationQueue(ctx context.Context) ([]*model.Comment, error) {
	return s.commentRepo.GetCommentsWithFeedback(ctx)
}

// AttachFeedback 写入反馈并标记 reported
func (s *commentServiceImpl) AttachFeedback(ctx context.Context, id string, feedback string) (*dto.UpdateResultDTO, error) {
	objectID, ok := util.ParseObjectID(id)
	if !ok {
		return nil, ErrCommentNotFound
	}
	res, err := s.commentRepo.SetFeedback(ctx, objectID, feedback)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrCommentNotFound
	}
	log.InfoContext(ctx, "comment reported", "comment_id", id)
	return &dto.UpdateResultDTO{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// AttachAction 只写 action，不影响 reported/feedback
func (s *commentServiceImpl) AttachAction(ctx context.Context, id string, action string) (*dto.UpdateResultDTO, error) {
	objectID, ok := util.ParseObjectID(id)
	if !ok {
		return nil, ErrCommentNotFound
	}
	res, err := s.commentRepo.SetAction(ctx, objectID, action)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrCommentNotFound
	}
	log.InfoContext(ctx, "comment moderated", "comment_id", id, "action", action)
	return &dto.UpdateResultDTO{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}
