package service

import (
	"ForumFlare/internal/api/dto"
	"ForumFlare/internal/model"
	"ForumFlare/internal/pkg/util"
	"ForumFlare/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserService interface {
	Register(ctx context.Context, dto *dto.RegisterUserDTO) (string, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetAllUsers(ctx context.Context) ([]*model.User, error)
	PromoteBadge(ctx context.Context, email string) (*model.User, error)
	SetAdmin(ctx context.Context, id string) (*dto.UpdateResultDTO, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	GetUserWithPosts(ctx context.Context, email string) (*model.UserWithPosts, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

// Register 按 email 幂等注册，已存在返回 ErrUserExist
func (s *userServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterUserDTO) (string, error) {
	regDTO.Email = strings.TrimSpace(regDTO.Email)
	if err := util.ValidateDTO(regDTO); err != nil {
		return "", err
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, regDTO.Email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}
	if existing != nil {
		return "", ErrUserExist
	}

	user := &model.User{}
	if err = copier.Copy(user, regDTO); err != nil {
		return "", err
	}
	user.Role = model.RoleMember
	user.Badge = model.BadgeBronze
	user.CreatedAt = time.Now()

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		// 并发注册由唯一索引兜底
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrUserExist
		}
		return "", err
	}
	return id.Hex(), nil
}

func (s *userServiceImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.GetAllUsers(ctx)
}

// PromoteBadge bronze -> gold，已是 gold 时原样返回
func (s *userServiceImpl) PromoteBadge(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepo.PromoteBadge(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	log.InfoContext(ctx, "user badge checked", "email", email, "badge", user.Badge)
	return user, nil
}

// SetAdmin 授予管理员，无降级接口
func (s *userServiceImpl) SetAdmin(ctx context.Context, id string) (*dto.UpdateResultDTO, error) {
	objectID, ok := util.ParseObjectID(id)
	if !ok {
		return nil, ErrUserNotFound
	}

	res, err := s.userRepo.SetRole(ctx, objectID, model.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrUserNotFound
	}

	log.InfoContext(ctx, "user granted admin", "user_id", id)
	return &dto.UpdateResultDTO{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// IsAdmin 用户不存在时返回 false
func (s *userServiceImpl) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin(), nil
}

func (s *userServiceImpl) GetUserWithPosts(ctx context.Context, email string) (*model.UserWithPosts, error) {
	res, err := s.userRepo.GetUserWithPosts(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if res.UserPost == nil {
		res.UserPost = make([]*model.Post, 0)
	}
	return res, nil
}
