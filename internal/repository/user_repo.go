package repository

import (
	"ForumFlare/internal/model"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *model.User) (primitive.ObjectID, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetAllUsers(ctx context.Context) ([]*model.User, error)
	PromoteBadge(ctx context.Context, email string) (*model.User, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role string) (*UpdateResult, error)
	GetUserWithPosts(ctx context.Context, email string) (*model.UserWithPosts, error)
	Count(ctx context.Context) (int64, error)
}

type userRepoImpl struct {
	col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) UserRepo {
	return &userRepoImpl{
		col: db.Collection(UserCollection),
	}
}

// CreateUser 插入用户，email 唯一索引冲突时返回 mongo 的 duplicate key 错误
func (s *userRepoImpl) CreateUser(ctx context.Context, user *model.User) (primitive.ObjectID, error) {
	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	user.ID = id
	return id, nil
}

func (s *userRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userRepoImpl) GetAllUsers(ctx context.Context) ([]*model.User, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	users := make([]*model.User, 0)
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// PromoteBadge 以 badge == bronze 为条件原子地升级为 gold，返回更新后的文档
// 条件不满足（已是 gold）时读回当前文档
func (s *userRepoImpl) PromoteBadge(ctx context.Context, email string) (*model.User, error) {
	filter := bson.M{"email": email, "badge": model.BadgeBronze}
	update := bson.M{"$set": bson.M{"badge": model.BadgeGold}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user model.User
	err := s.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user)
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	return s.GetUserByEmail(ctx, email)
}

func (s *userRepoImpl) SetRole(ctx context.Context, id primitive.ObjectID, role string) (*UpdateResult, error) {
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return nil, err
	}
	return &UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// GetUserWithPosts 按 email 关联 posts 集合
func (s *userRepoImpl) GetUserWithPosts(ctx context.Context, email string) (*model.UserWithPosts, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"email": email}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         PostCollection,
			"localField":   "email",
			"foreignField": "email",
			"as":           "userPost",
		}}},
		{{Key: "$limit", Value: 1}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var result []*model.UserWithPosts
	if err = cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return result[0], nil
}

func (s *userRepoImpl) Count(ctx context.Context) (int64, error) {
	return s.col.EstimatedDocumentCount(ctx)
}
