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

type TagRepo interface {
	GetTags(ctx context.Context, search string) ([]*model.Tag, error)
	Count(ctx context.Context) (int64, error)
}

type tagRepoImpl struct {
	col *mongo.Collection
}

func NewTagRepo(db *mongo.Database) TagRepo {
	return &tagRepoImpl{
		col: db.Collection(TagCollection),
	}
}

// GetTags search 非空时按名称子串过滤
func (s *tagRepoImpl) GetTags(ctx context.Context, search string) ([]*model.Tag, error) {
	filter := bson.M{}
	if search != "" {
		filter["name"] = bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}}
	}

	cursor, err := s.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	tags := make([]*model.Tag, 0)
	if err = cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *tagRepoImpl) Count(ctx context.Context) (int64, error) {
	return s.col.EstimatedDocumentCount(ctx)
}
