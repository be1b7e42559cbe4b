package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment 评论，feedback 首次写入时 reported 置为 true
type Comment struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PostID   string             `bson:"postId" json:"postId"`
	Email    string             `bson:"email" json:"email"`
	Name     string             `bson:"name" json:"name"`
	Comment  string             `bson:"comment" json:"comment"`
	Feedback *string            `bson:"feedback,omitempty" json:"feedback,omitempty"`
	Action   *string            `bson:"action,omitempty" json:"action,omitempty"`
	Reported bool               `bson:"reported" json:"reported"`
	Time     time.Time          `bson:"time" json:"time"`
}
