package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Announcement 公告，只增不改
type Announcement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	AuthorName  string             `bson:"authorName" json:"authorName"`
	AuthorImage string             `bson:"authorImage,omitempty" json:"authorImage,omitempty"`
	Email       string             `bson:"email" json:"email"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
