package repository

import (
	"ForumFlare/internal/model"
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	VoteUp   = "upvote"
	VoteDown = "downvote"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) (primitive.ObjectID, error)
	GetPostByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error)
	DeletePost(ctx context.Context, id primitive.ObjectID) (int64, error)
	GetRecentPosts(ctx context.Context, tag string, skip, limit int64) ([]*model.Post, error)
	GetPopularPosts(ctx context.Context, tag string, skip, limit int64) ([]*model.Post, error)
	IncrVote(ctx context.Context, id primitive.ObjectID, field string) (*model.Post, error)
	Count(ctx context.Context) (int64, error)
}

type postRepoImpl struct {
	col *mongo.Collection
}

func NewPostRepo(db *mongo.Database) PostRepo {
	return &postRepoImpl{
		col: db.Collection(PostCollection),
	}
}

// TagFilter tag 为空时匹配全部，否则按字面子串忽略大小写匹配 tags 数组
func TagFilter(tag string) bson.M {
	if tag == "" {
		return bson.M{}
	}
	return bson.M{"tags": bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(tag), Options: "i"}}}
}

// PopularPipeline 按 upvote - downvote 降序，_id 降序保证分页稳定
func PopularPipeline(tag string, skip, limit int64) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: TagFilter(tag)}},
		{{Key: "$addFields", Value: bson.M{
			"voteDifference": bson.M{"$subtract": bson.A{"$upvote", "$downvote"}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "voteDifference", Value: -1},
			{Key: "_id", Value: -1},
		}}},
		{{Key: "$skip", Value: skip}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$project", Value: bson.M{"voteDifference": 0}}},
	}
}

func (s *postRepoImpl) CreatePost(ctx context.Context, post *model.Post) (primitive.ObjectID, error) {
	res, err := s.col.InsertOne(ctx, post)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	post.ID = id
	return id, nil
}

func (s *postRepoImpl) GetPostByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	var post model.Post
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *postRepoImpl) DeletePost(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// GetRecentPosts 按发布时间倒序分页
func (s *postRepoImpl) GetRecentPosts(ctx context.Context, tag string, skip, limit int64) ([]*model.Post, error) {
	findOptions := options.Find().
		SetSort(bson.D{
			{Key: "time", Value: -1},
			{Key: "_id", Value: -1},
		}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := s.col.Find(ctx, TagFilter(tag), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	posts := make([]*model.Post, 0)
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPopularPosts 按热度倒序分页
func (s *postRepoImpl) GetPopularPosts(ctx context.Context, tag string, skip, limit int64) ([]*model.Post, error) {
	cursor, err := s.col.Aggregate(ctx, PopularPipeline(tag, skip, limit))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	posts := make([]*model.Post, 0)
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// IncrVote 原子自增 field，返回自增后的帖子
func (s *postRepoImpl) IncrVote(ctx context.Context, id primitive.ObjectID, field string) (*model.Post, error) {
	update := bson.M{"$inc": bson.M{field: 1}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post model.Post
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Count 全量估算，不受 tag 过滤影响
func (s *postRepoImpl) Count(ctx context.Context) (int64, error) {
	return s.col.EstimatedDocumentCount(ctx)
}
