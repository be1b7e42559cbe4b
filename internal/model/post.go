package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post 帖子，upvote/downvote 只通过 $inc 自增
type Post struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	AuthorName  string             `bson:"authorName" json:"authorName"`
	AuthorImage string             `bson:"authorImage,omitempty" json:"authorImage,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Tags        []string           `bson:"tags" json:"tags"`
	Upvote      int64              `bson:"upvote" json:"upvote"`
	Downvote    int64              `bson:"downvote" json:"downvote"`
	Time        time.Time          `bson:"time" json:"time"`
}

// Popularity 热度 = 赞成票 - 反对票
func (p *Post) Popularity() int64 {
	return p.Upvote - p.Downvote
}
