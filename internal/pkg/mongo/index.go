package mongo

import (
	"ForumFlare/internal/repository"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes 创建业务依赖的索引，重复执行是幂等的
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		repository.UserCollection: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_email"),
			},
		},
		repository.PostCollection: {
			{Keys: bson.D{{Key: "time", Value: -1}, {Key: "_id", Value: -1}}},
			{Keys: bson.D{{Key: "email", Value: 1}}},
		},
		repository.CommentCollection: {
			{Keys: bson.D{{Key: "postId", Value: 1}}},
		},
	}

	for col, models := range indexes {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", col, err)
		}
	}
	return nil
}
