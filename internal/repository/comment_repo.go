package repository

import (
	"ForumFlare/internal/model"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) (primitive.ObjectID, error)
	GetCommentsByPostID(ctx context.Context, postID string) ([]*model.Comment, error)
	GetCommentsWithFeedback(ctx context.Context) ([]*model.Comment, error)
	SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (*UpdateResult, error)
	SetAction(ctx context.Context, id primitive.ObjectID, action string) (*UpdateResult, error)
	Count(ctx context.Context) (int64, error)
}

type commentRepoImpl struct {
	col *mongo.Collection
}

func NewCommentRepo(db *mongo.Database) CommentRepo {
	return &commentRepoImpl{
		col: db.Collection(CommentCollection),
	}
}

func (s *commentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) (primitive.ObjectID, error) {
	res, err := s.col.InsertOne(ctx, comment)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	comment.ID = id
	return id, nil
}

func (s *commentRepoImpl) GetCommentsByPostID(ctx context.Context, postID string) ([]*model.Comment, error) {
	return s.find(ctx, bson.M{"postId": postID})
}

// GetCommentsWithFeedback 审核队列：所有已附带 feedback 的评论
func (s *commentRepoImpl) GetCommentsWithFeedback(ctx context.Context) ([]*model.Comment, error) {
	return s.find(ctx, bson.M{"feedback": bson.M{"$exists": true}})
}

// SetFeedback 写入反馈并无条件标记为已举报
func (s *commentRepoImpl) SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (*UpdateResult, error) {
	return s.update(ctx, id, bson.M{"feedback": feedback, "reported": true})
}

func (s *commentRepoImpl) SetAction(ctx context.Context, id primitive.ObjectID, action string) (*UpdateResult, error) {
	return s.update(ctx, id, bson.M{"action": action})
}

func (s *commentRepoImpl) Count(ctx context.Context) (int64, error) {
	return s.col.EstimatedDocumentCount(ctx)
}

func (s *commentRepoImpl) find(ctx context.Context, filter bson.M) ([]*model.Comment, error) {
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	comments := make([]*model.Comment, 0)
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *commentRepoImpl) update(ctx context.Context, id primitive.ObjectID, set bson.M) (*UpdateResult, error) {
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	return &UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}
