package repository

import (
	"ForumFlare/internal/model"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AnnouncementRepo interface {
	CreateAnnouncement(ctx context.Context, a *model.Announcement) (primitive.ObjectID, error)
	GetAnnouncements(ctx context.Context) ([]*model.Announcement, error)
	Count(ctx context.Context) (int64, error)
}

type announcementRepoImpl struct {
	col *mongo.Collection
}

func NewAnnouncementRepo(db *mongo.Database) AnnouncementRepo {
	return &announcementRepoImpl{
		col: db.Collection(AnnouncementCollection),
	}
}

func (s *announcementRepoImpl) CreateAnnouncement(ctx context.Context, a *model.Announcement) (primitive.ObjectID, error) {
	res, err := s.col.InsertOne(ctx, a)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	a.ID = id
	return id, nil
}

// GetAnnouncements 最新的在前
func (s *announcementRepoImpl) GetAnnouncements(ctx context.Context) ([]*model.Announcement, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	})
	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	list := make([]*model.Announcement, 0)
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *announcementRepoImpl) Count(ctx context.Context) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{})
}
